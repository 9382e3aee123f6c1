package logfacade

import (
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// ArgList is what the engine receives for a formatted call. Short lists are
// packed: a tag descriptor plus the caller's value array, with no copy. Lists
// of PackedArgLimit or more arguments are unpacked into Arg records.
type ArgList struct {
	desc   uint64
	values []Value
	args   []Arg
}

// newArgList selects the representation for the buffer's current contents.
func newArgList(a *VarArgs) ArgList {
	if a.Len() == 0 {
		return ArgList{}
	}
	if a.Len() < PackedArgLimit {
		return ArgList{desc: a.CompressedType(), values: a.Values()}
	}
	return ArgList{args: unpackArgs(a.Values(), a.Types())}
}

// unpackArgs merges the parallel arrays into one record slice. This is the
// only allocation on the overflow path.
func unpackArgs(values []Value, types []TypeTag) []Arg {
	n := min(len(values), len(types))
	if n == 0 {
		return nil
	}
	out := make([]Arg, n)
	for i := 0; i < n; i++ {
		out[i] = Arg{Value: values[i], Type: types[i]}
	}
	return out
}

// Packed reports whether the list uses the descriptor form.
func (l ArgList) Packed() bool {
	return l.args == nil
}

// Len returns the number of arguments.
func (l ArgList) Len() int {
	if l.args != nil {
		return len(l.args)
	}
	return len(l.values)
}

// At returns argument i, or a TagNone record when i is out of range.
func (l ArgList) At(i int) Arg {
	if i < 0 || i >= l.Len() {
		return Arg{}
	}
	if l.args != nil {
		return l.args[i]
	}
	return Arg{Value: l.values[i], Type: typeAt(l.desc, i)}
}

// Interfaces converts the list to Go values for the printf path.
func (l ArgList) Interfaces() []any {
	out := make([]any, l.Len())
	for i := range out {
		out[i] = l.At(i).Interface()
	}
	return out
}

// Interface returns the natural Go value of the record.
func (a Arg) Interface() any {
	switch a.Type {
	case TagInt:
		return int32(int64(a.Bits))
	case TagUint:
		return uint32(a.Bits)
	case TagLongLong:
		return int64(a.Bits)
	case TagULongLong:
		return a.Bits
	case TagBool:
		return a.Bits != 0
	case TagChar:
		return byte(a.Bits)
	case TagDouble, TagLongDouble:
		return math.Float64frombits(a.Bits)
	case TagCString, TagString:
		return a.Str
	case TagWString:
		return string(utf16.Decode(a.Wide))
	case TagPointer:
		return uintptr(a.Bits)
	}
	return nil
}

// appendArg renders a record the way the default "{}" replacement field does.
func appendArg(dst []byte, a Arg) []byte {
	switch a.Type {
	case TagInt, TagLongLong:
		return strconv.AppendInt(dst, int64(a.Bits), 10)
	case TagUint, TagULongLong:
		return strconv.AppendUint(dst, a.Bits, 10)
	case TagBool:
		return strconv.AppendBool(dst, a.Bits != 0)
	case TagChar:
		return append(dst, byte(a.Bits))
	case TagDouble, TagLongDouble:
		return strconv.AppendFloat(dst, math.Float64frombits(a.Bits), 'g', -1, 64)
	case TagCString, TagString:
		return append(dst, a.Str...)
	case TagWString:
		for _, r := range utf16.Decode(a.Wide) {
			dst = utf8.AppendRune(dst, r)
		}
		return dst
	case TagPointer:
		dst = append(dst, "0x"...)
		return strconv.AppendUint(dst, a.Bits, 16)
	}
	return dst
}
