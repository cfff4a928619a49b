package packed

import (
	"fmt"
	"strings"
)

// String renders the elements in order, e.g. "[true, false, true]".
// The output is a debugging aid, not a stable format.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	it := v.Iter()
	for i := 0; ; i++ {
		value, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", value)
	}
	sb.WriteString("]")
	return sb.String()
}

// FormatByte renders b as eight '0'/'1' characters, least-significant bit
// first unless msbFirst is set.
func FormatByte(b byte, msbFirst bool) string {
	var sb strings.Builder
	sb.Grow(8)
	for bit := 0; bit < 8; bit++ {
		pos := uint(bit)
		if msbFirst {
			pos = uint(7 - bit)
		}
		if b&(1<<pos) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
