package logfacade

import "strconv"

// formatArgs renders a "{}" style format string. Supported replacement fields
// are "{}" (next argument) and "{N}" (argument N); anything after a ':' inside
// the braces is accepted and ignored. "{{" and "}}" are literal braces. A field
// without a matching argument is copied verbatim.
func formatArgs(dst []byte, format string, args ArgList) []byte {
	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				dst = append(dst, '{')
				i++
				continue
			}
			end := indexByteFrom(format, '}', i+1)
			if end < 0 {
				return append(dst, format[i:]...)
			}
			field := format[i+1 : end]
			if colon := indexByteFrom(field, ':', 0); colon >= 0 {
				field = field[:colon]
			}
			idx := next
			if field != emptyString {
				n, err := strconv.Atoi(field)
				if err != nil || n < 0 {
					dst = append(dst, format[i:end+1]...)
					i = end
					continue
				}
				idx = n
			} else {
				next++
			}
			if idx < args.Len() {
				dst = appendArg(dst, args.At(idx))
			} else {
				dst = append(dst, format[i:end+1]...)
			}
			i = end
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				i++
			}
			dst = append(dst, '}')
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

func indexByteFrom(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
