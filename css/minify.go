package css

import (
	"strings"
	"unicode"
)

// Minify removes comments and whitespace which carries no meaning.
//
// It does not parse CSS. It only tracks if it is inside of a declaration
// (after ':' and before ';') where whitespace separates value parts and has to
// be kept - there every run of whitespace becomes a single space. Outside of
// declarations whitespace is dropped completely. Braces always end
// declaration. Strings and at-rules are not understood.
func Minify(in string) string {
	var (
		out    strings.Builder
		src    = []rune(in)
		inDecl bool
		space  bool // last emitted rune is collapsed whitespace
	)
	out.Grow(len(in))

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			// skip to the closing "*/", search starts at the opening '*'
			i++
			for i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/') {
				i++
			}
			i++ // at '/' of terminator or past the end
			continue
		case unicode.IsSpace(c):
			if inDecl && !space {
				out.WriteByte(' ')
				space = true
			}
			continue
		case c == ':':
			inDecl = true
		case c == ';', c == '{', c == '}':
			inDecl = false
		}
		out.WriteRune(c)
		space = false
	}
	return out.String()
}
