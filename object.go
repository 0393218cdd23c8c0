package binparse

// Object is the decoded output of a parse: a mapping from field name to
// decoded value (§3 "Output object"). Nested fields store a sub-Object;
// arrays store either an ordered []interface{} or, with the array's Key
// option, a map from a chosen inner field's value to its element.
type Object map[string]interface{}

// Constructor produces a fresh, empty Object for one parse. parent is the
// object currently being built by an enclosing Nest/Choice/Array step, or
// nil at the top level. A constructor may read parent for context but
// must not mutate it — the same contract the teacher's nested Encodables
// place on anything handed a pointer into the parent's memory.
type Constructor func(parent Object) Object

func defaultConstructor(Object) Object {
	return make(Object)
}
