package logfacade

import (
	"bytes"
	"math"
)

// TypeTag identifies the kind of one marshalled argument. Every tag fits into
// four bits so that up to PackedArgLimit tags pack into one uint64.
type TypeTag uint8

const (
	TagNone TypeTag = iota
	TagNamedArg
	TagInt
	TagUint
	TagLongLong
	TagULongLong
	TagBool
	TagChar
	TagDouble
	TagLongDouble
	TagCString
	TagString
	TagWString
	TagPointer
	TagCustom
)

var tagNames = [...]string{
	"none", "named", "int", "uint", "longlong", "ulonglong", "bool", "char",
	"double", "longdouble", "cstring", "string", "wstring", "pointer", "custom",
}

func (t TypeTag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "invalid"
}

// Value is the untyped payload of one argument. Which field is meaningful is
// decided by the accompanying TypeTag: integers, booleans, chars, pointers and
// the bit pattern of floating point values live in Bits; narrow and byte
// strings in Str; wide strings in Wide.
type Value struct {
	Bits uint64
	Str  string
	Wide []uint16
}

// Arg is the unpacked argument record: a value together with its tag.
type Arg struct {
	Value
	Type TypeTag
}

// VarArgs accumulates a heterogeneous argument list for one formatted log
// call. It is not safe for concurrent use; reuse it sequentially by calling
// Clear between calls.
type VarArgs struct {
	types  []TypeTag
	values []Value
}

// NewVarArgs returns an empty buffer with room for a handful of arguments.
func NewVarArgs() *VarArgs {
	return NewVarArgsSize(defaultVarArgsCapacity)
}

// NewVarArgsSize returns an empty buffer with the given initial capacity.
func NewVarArgsSize(capacity int) *VarArgs {
	if capacity < 0 {
		capacity = 0
	}
	return &VarArgs{
		types:  make([]TypeTag, 0, capacity),
		values: make([]Value, 0, capacity),
	}
}

func (a *VarArgs) push(t TypeTag, v Value) *VarArgs {
	a.types = append(a.types, t)
	a.values = append(a.values, v)
	return a
}

func (a *VarArgs) AddInt8(v int8) *VarArgs   { return a.AddInt32(int32(v)) }
func (a *VarArgs) AddInt16(v int16) *VarArgs { return a.AddInt32(int32(v)) }

func (a *VarArgs) AddInt32(v int32) *VarArgs {
	return a.push(TagInt, Value{Bits: uint64(int64(v))})
}

// AddInt appends a Go int; it is stored as a 64-bit value.
func (a *VarArgs) AddInt(v int) *VarArgs { return a.AddInt64(int64(v)) }

func (a *VarArgs) AddInt64(v int64) *VarArgs {
	return a.push(TagLongLong, Value{Bits: uint64(v)})
}

func (a *VarArgs) AddUint8(v uint8) *VarArgs   { return a.AddUint32(uint32(v)) }
func (a *VarArgs) AddUint16(v uint16) *VarArgs { return a.AddUint32(uint32(v)) }

func (a *VarArgs) AddUint32(v uint32) *VarArgs {
	return a.push(TagUint, Value{Bits: uint64(v)})
}

func (a *VarArgs) AddUint64(v uint64) *VarArgs {
	return a.push(TagULongLong, Value{Bits: v})
}

func (a *VarArgs) AddBool(v bool) *VarArgs {
	var b uint64
	if v {
		b = 1
	}
	return a.push(TagBool, Value{Bits: b})
}

func (a *VarArgs) AddChar(v byte) *VarArgs {
	return a.push(TagChar, Value{Bits: uint64(v)})
}

func (a *VarArgs) AddDouble(v float64) *VarArgs {
	return a.push(TagDouble, Value{Bits: math.Float64bits(v)})
}

// AddLongDouble appends an extended precision value. Go has no long double,
// so the value is carried as float64 under its own tag.
func (a *VarArgs) AddLongDouble(v float64) *VarArgs {
	return a.push(TagLongDouble, Value{Bits: math.Float64bits(v)})
}

func (a *VarArgs) AddPointer(p uintptr) *VarArgs {
	return a.push(TagPointer, Value{Bits: uint64(p)})
}

// AddString appends a narrow string of explicit length.
func (a *VarArgs) AddString(s string) *VarArgs {
	return a.push(TagCString, Value{Str: s})
}

// AddCString appends a narrow string whose length ends at the first NUL byte,
// or at len(p) when there is none. A nil slice is stored with length 0.
func (a *VarArgs) AddCString(p []byte) *VarArgs {
	return a.push(TagCString, Value{Str: string(cutNul(p))})
}

// AddUString appends a byte string of explicit length.
func (a *VarArgs) AddUString(p []byte) *VarArgs {
	return a.push(TagString, Value{Str: string(p)})
}

// AddUStringZ appends a NUL terminated byte string.
func (a *VarArgs) AddUStringZ(p []byte) *VarArgs {
	return a.push(TagString, Value{Str: string(cutNul(p))})
}

// AddWString appends a UTF-16 wide string of explicit length.
func (a *VarArgs) AddWString(p []uint16) *VarArgs {
	return a.push(TagWString, Value{Wide: cloneWide(p)})
}

// AddWStringZ appends a NUL terminated UTF-16 wide string.
func (a *VarArgs) AddWStringZ(p []uint16) *VarArgs {
	n := len(p)
	for i, c := range p {
		if c == 0 {
			n = i
			break
		}
	}
	return a.push(TagWString, Value{Wide: cloneWide(p[:n])})
}

// AddArg appends a prepared record as is.
func (a *VarArgs) AddArg(arg Arg) *VarArgs {
	return a.push(arg.Type, arg.Value)
}

// Len returns the number of arguments added since creation or the last Clear.
func (a *VarArgs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.types)
}

// Clear resets the logical size to zero and keeps the backing storage.
func (a *VarArgs) Clear() {
	if a == nil {
		return
	}
	clear(a.values)
	a.types = a.types[:0]
	a.values = a.values[:0]
}

// Types exposes the tag array, parallel to Values.
func (a *VarArgs) Types() []TypeTag {
	if a == nil {
		return nil
	}
	return a.types
}

// Values exposes the value array, parallel to Types.
func (a *VarArgs) Values() []Value {
	if a == nil {
		return nil
	}
	return a.values
}

// Interfaces converts the arguments to Go values, for printf-style calls.
func (a *VarArgs) Interfaces() []any {
	return newArgList(a).Interfaces()
}

// CompressedType packs the tags of the first min(Len, PackedArgLimit)
// arguments into four bit fields, first argument in the lowest bits. The
// descriptor is only a complete description when Len() < PackedArgLimit.
func (a *VarArgs) CompressedType() uint64 {
	if a == nil {
		return 0
	}
	return compressTypes(a.types)
}

func compressTypes(types []TypeTag) uint64 {
	n := min(len(types), PackedArgLimit)
	var desc uint64
	for i := 0; i < n; i++ {
		desc |= (uint64(types[i]) & tagMask) << (uint(i) * tagBits)
	}
	return desc
}

// typeAt decodes one tag from a packed descriptor.
func typeAt(desc uint64, i int) TypeTag {
	return TypeTag((desc >> (uint(i) * tagBits)) & tagMask)
}

func cutNul(p []byte) []byte {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return p[:i]
	}
	return p
}

func cloneWide(p []uint16) []uint16 {
	if len(p) == 0 {
		return nil
	}
	out := make([]uint16, len(p))
	copy(out, p)
	return out
}
