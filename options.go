package binparse

import "reflect"

// Options carries the settings common to every field declaration (§4.1).
type Options struct {
	// Assert, if non-nil, is either a value compared against the decoded
	// value with reflect.DeepEqual, or a func(Object, interface{}) bool
	// called with the object built so far and the decoded value. A
	// false/unequal result raises AssertError.
	Assert interface{}

	// Formatter, if non-nil, replaces the decoded value with its result
	// before the value is stored. It runs after Assert — assert always
	// sees the raw decoded value, formatter sees and replaces it.
	Formatter func(obj Object, val interface{}) interface{}
}

func (o Options) applyAssertAndFormat(field string, obj Object, val interface{}) (interface{}, error) {
	if o.Assert != nil {
		if err := checkAssert(field, o.Assert, obj, val); err != nil {
			return nil, err
		}
	}
	if o.Formatter != nil {
		val = o.Formatter(obj, val)
	}
	return val, nil
}

func checkAssert(field string, assert interface{}, obj Object, val interface{}) error {
	if fn, ok := assert.(func(Object, interface{}) bool); ok {
		if !fn(obj, val) {
			return AssertError(field, val)
		}
		return nil
	}
	if !reflect.DeepEqual(assert, val) {
		return AssertError(field, val)
	}
	return nil
}

// resolveLength resolves a Length option against obj, per §4.1's table.
// A nil length is an OptionResolutionError: callers that allow an absent
// length (e.g. Array's other termination modes) must check for nil before
// calling this.
func resolveLength(field string, length interface{}, obj Object) (int, error) {
	switch l := length.(type) {
	case int:
		return l, nil
	case string:
		v, ok := obj[l]
		if !ok {
			return 0, OptionResolutionError(field, "length:"+l)
		}
		n, ok := toInt(v)
		if !ok {
			return 0, OptionResolutionError(field, "length:"+l)
		}
		return n, nil
	case func(Object) int:
		return l(obj), nil
	default:
		return 0, OptionResolutionError(field, "length")
	}
}

// toInt converts any of the numeric types our primitive decoders produce
// into an int, for use as a resolved Length.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
