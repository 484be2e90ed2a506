package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a single compiled class rule.
type Rule struct {
	Class string // class name as found in markup
	Body  string // declaration body without braces
}

// Selector returns flat class selector for the rule.
func (r Rule) Selector() string {
	return "." + r.Class
}

func (r Rule) String() string {
	return fmt.Sprintf("%s { %s }\n", r.Selector(), r.Body)
}

// Resolver turns utility class names into rules. Zero value is ready to use.
type Resolver struct {
	// Important appends "!important" to every computed declaration. Bodies
	// taken from exact-match table are always used verbatim.
	Important bool
}

// Resolve is a shortcut for Resolver{}.Resolve.
func Resolve(class string) (Rule, bool) {
	return Resolver{}.Resolve(class)
}

// Resolve decomposes class name and returns its rule. Second return value is
// false when class does not describe anything known, such classes are simply
// skipped by the compiler.
func (r Resolver) Resolve(class string) (Rule, bool) {
	parts := strings.Split(class, "-")
	negative := strings.HasPrefix(class, "-")

	// part never fails, missing parts are empty
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	name := parts[0]
	if negative && len(parts) > 1 {
		name = parts[1]
	}

	var body string
	switch name {
	case "text":
		if size, ok := parseCount(part(1)); ok {
			body = r.declare("font-size", strconv.FormatUint(size, 10)+"px")
		} else if decl, ok := lookupStyle(class); ok {
			body = decl
		} else {
			return Rule{}, false
		}
	case "font":
		if weight, ok := parseCount(part(1)); ok {
			body = r.declare("font-weight", strconv.FormatUint(weight, 10))
		} else if decl, ok := lookupStyle(class); ok {
			body = decl
		} else {
			return Rule{}, false
		}
	case "fg", "color":
		body = r.declare("color", "#"+part(1))
	case "bg":
		body = r.declare("background-color", "#"+part(1))
	default:
		props, ok := lookupSpacing(name)
		if !ok {
			return Rule{}, false
		}
		// negative marker travels with the value, name is a single dash
		// separated part and never carries a sign of its own
		value := part(1)
		if negative {
			value = ""
			if len(parts) > 2 {
				value = "-" + parts[2]
			}
		}
		decls := make([]string, 0, len(props))
		for _, p := range props {
			decls = append(decls, r.declare(p, value+"px"))
		}
		body = strings.Join(decls, "; ")
	}
	return Rule{Class: class, Body: body}, true
}

func (r Resolver) declare(property, value string) string {
	if r.Important {
		return property + ": " + value + " !important"
	}
	return property + ": " + value
}

// parseCount accepts only plain decimal digits: no sign, no fraction, no unit.
func parseCount(s string) (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}
