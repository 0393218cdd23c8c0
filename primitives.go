package binparse

import "math"

func float32FromBits(bits uint32) float32 { return math.Float32frombits(bits) }
func float64FromBits(bits uint64) float64 { return math.Float64frombits(bits) }

// PrimitiveType is an entry in the primitive type table (§6 "Primitive
// type table"): a fixed byte width plus a decode function. The engine
// treats entries opaquely — it never inspects how Decode works, only how
// many bytes to hand it.
type PrimitiveType struct {
	Width  int
	Decode func(buf []byte, offset int) interface{}
}

// DefaultPrimitives is the built-in table this package registers one
// method per entry for, grounded on encodable/integer.go's per-width
// NewUint8/NewUint16/... constructors — minus the unsafe.Pointer plumbing,
// since values here are written into a map rather than a struct field.
var DefaultPrimitives = map[string]PrimitiveType{
	"uint8":   {1, decodeUint8},
	"int8":    {1, decodeInt8},
	"uint16be": {2, decodeUint16BE},
	"uint16le": {2, decodeUint16LE},
	"int16be":  {2, decodeInt16BE},
	"int16le":  {2, decodeInt16LE},
	"uint32be": {4, decodeUint32BE},
	"uint32le": {4, decodeUint32LE},
	"int32be":  {4, decodeInt32BE},
	"int32le":  {4, decodeInt32LE},
	"uint64be": {8, decodeUint64BE},
	"uint64le": {8, decodeUint64LE},
	"int64be":  {8, decodeInt64BE},
	"int64le":  {8, decodeInt64LE},
	"float32be": {4, decodeFloat32BE},
	"float32le": {4, decodeFloat32LE},
	"float64be": {8, decodeFloat64BE},
	"float64le": {8, decodeFloat64LE},
}

func decodeUint8(buf []byte, off int) interface{} { return buf[off] }
func decodeInt8(buf []byte, off int) interface{}  { return int8(buf[off]) }

func decodeUint16BE(buf []byte, off int) interface{} {
	return uint16(buf[off])<<8 | uint16(buf[off+1])
}
func decodeUint16LE(buf []byte, off int) interface{} {
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}
func decodeInt16BE(buf []byte, off int) interface{} { return int16(decodeUint16BE(buf, off).(uint16)) }
func decodeInt16LE(buf []byte, off int) interface{} { return int16(decodeUint16LE(buf, off).(uint16)) }

func decodeUint32BE(buf []byte, off int) interface{} {
	return uint32(buf[off])<<24 | uint32(buf[off+1])<<16 | uint32(buf[off+2])<<8 | uint32(buf[off+3])
}
func decodeUint32LE(buf []byte, off int) interface{} {
	return uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
}
func decodeInt32BE(buf []byte, off int) interface{} { return int32(decodeUint32BE(buf, off).(uint32)) }
func decodeInt32LE(buf []byte, off int) interface{} { return int32(decodeUint32LE(buf, off).(uint32)) }

func decodeUint64BE(buf []byte, off int) interface{} {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(buf[off+i])
	}
	return v
}
func decodeUint64LE(buf []byte, off int) interface{} {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(buf[off+i])
	}
	return v
}
func decodeInt64BE(buf []byte, off int) interface{} { return int64(decodeUint64BE(buf, off).(uint64)) }
func decodeInt64LE(buf []byte, off int) interface{} { return int64(decodeUint64LE(buf, off).(uint64)) }

func decodeFloat32BE(buf []byte, off int) interface{} {
	bits := decodeUint32BE(buf, off).(uint32)
	return float32FromBits(bits)
}
func decodeFloat32LE(buf []byte, off int) interface{} {
	bits := decodeUint32LE(buf, off).(uint32)
	return float32FromBits(bits)
}
func decodeFloat64BE(buf []byte, off int) interface{} {
	bits := decodeUint64BE(buf, off).(uint64)
	return float64FromBits(bits)
}
func decodeFloat64LE(buf []byte, off int) interface{} {
	bits := decodeUint64LE(buf, off).(uint64)
	return float64FromBits(bits)
}
