package css

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Rule tables are kept as flat "name value" text so they are easy to edit
// and review. They are parsed once, during package initialization, and never
// modified afterwards.

//go:embed rules/styles.txt
var stylesData string

//go:embed rules/spacing.txt
var spacingData string

//go:embed rules/reset.css
var resetData string

// StyleEntry maps a complete class name to a literal declaration body.
type StyleEntry struct {
	Class string
	Body  string
}

// SpacingEntry maps a short class prefix to the properties sharing its value.
type SpacingEntry struct {
	Prefix     string
	Properties []string
}

var (
	styles  = mustLoadStyles(stylesData)
	spacing = mustLoadSpacing(spacingData)
)

// ResetStylesheet returns the fixed reset block which could be prepended to
// generated rules.
func ResetStylesheet() string {
	return resetData
}

// StyleEntries returns a copy of exact-match table in its defined order.
func StyleEntries() []StyleEntry {
	return slices.Clone(styles)
}

// SpacingEntries returns a copy of parametric table in its defined order.
func SpacingEntries() []SpacingEntry {
	out := make([]SpacingEntry, 0, len(spacing))
	for _, e := range spacing {
		out = append(out, SpacingEntry{Prefix: e.Prefix, Properties: slices.Clone(e.Properties)})
	}
	return out
}

func lookupStyle(class string) (string, bool) {
	if i := slices.IndexFunc(styles, func(e StyleEntry) bool { return e.Class == class }); i >= 0 {
		return styles[i].Body, true
	}
	return "", false
}

func lookupSpacing(prefix string) ([]string, bool) {
	if i := slices.IndexFunc(spacing, func(e SpacingEntry) bool { return e.Prefix == prefix }); i >= 0 {
		return spacing[i].Properties, true
	}
	return nil, false
}

// parseTable reads "name value" lines. Empty lines and lines starting with
// '#' are ignored, anything after "/*" on a line is a comment.
func parseTable(data string) ([][2]string, error) {
	var (
		pairs [][2]string
		seen  = make(map[string]int)
	)
	for n, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		if before, _, found := strings.Cut(line, "/*"); found {
			line = strings.TrimSpace(before)
		}
		pos := strings.IndexFunc(line, unicode.IsSpace)
		if pos < 0 {
			return nil, fmt.Errorf("line %d: no value for %q", n+1, line)
		}
		name, value := line[:pos], strings.TrimSpace(line[pos:])
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("line %d: duplicate name %q (first defined on line %d)", n+1, name, prev)
		}
		seen[name] = n + 1
		pairs = append(pairs, [2]string{name, value})
	}
	return pairs, nil
}

func mustLoadStyles(data string) []StyleEntry {
	pairs, err := parseTable(data)
	if err != nil {
		panic(fmt.Sprintf("bad embedded styles table: %v", err))
	}
	entries := make([]StyleEntry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, StyleEntry{Class: p[0], Body: p[1]})
	}
	return entries
}

func mustLoadSpacing(data string) []SpacingEntry {
	pairs, err := parseTable(data)
	if err != nil {
		panic(fmt.Sprintf("bad embedded spacing table: %v", err))
	}
	entries := make([]SpacingEntry, 0, len(pairs))
	for _, p := range pairs {
		if strings.Contains(p[0], "-") {
			// prefix is matched against a single dash separated part
			panic(fmt.Sprintf("bad embedded spacing table: prefix %q contains '-'", p[0]))
		}
		entries = append(entries, SpacingEntry{Prefix: p[0], Properties: strings.Fields(p[1])})
	}
	return entries
}
