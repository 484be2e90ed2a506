package css

import (
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// Options control what compiler produces.
type Options struct {
	Reset     bool // prepend reset block
	Important bool // see Resolver.Important
}

// Stylesheet is a result of single compilation.
type Stylesheet struct {
	Reset   bool
	Rules   []Rule
	Dropped []string // classes which did not resolve, in compilation order
}

// String returns stylesheet text (not minified).
func (s *Stylesheet) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes stylesheet text to w.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if s.Reset {
		n, err := io.WriteString(w, resetData)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, r := range s.Rules {
		n, err := io.WriteString(w, r.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Compiler builds stylesheets from sets of class names.
type Compiler struct {
	log  *zap.Logger
	opts Options
}

// NewCompiler creates a new stylesheet compiler.
func NewCompiler(log *zap.Logger, opts Options) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("css"), opts: opts}
}

// Compile resolves every class in the set in sorted order. Since set has no
// duplicates every selector in result is unique.
func (c *Compiler) Compile(classes ClassSet) *Stylesheet {
	res := Resolver{Important: c.opts.Important}
	sheet := &Stylesheet{Reset: c.opts.Reset}

	for _, class := range classes.Sorted() {
		if rule, ok := res.Resolve(class); ok {
			sheet.Rules = append(sheet.Rules, rule)
			continue
		}
		sheet.Dropped = append(sheet.Dropped, class)
	}

	if ce := c.log.Check(zap.DebugLevel, "Stylesheet compiled"); ce != nil {
		dropped := make([]string, len(sheet.Dropped))
		copy(dropped, sheet.Dropped)
		sort.Sort(natural.StringSlice(dropped))
		ce.Write(zap.Int("classes", classes.Len()), zap.Int("rules", len(sheet.Rules)),
			zap.Bool("reset", sheet.Reset), zap.Strings("dropped", dropped))
	}
	return sheet
}

// Compile is a convenience wrapper returning stylesheet text for names.
func Compile(names []string, reset bool) string {
	return NewCompiler(nil, Options{Reset: reset}).Compile(NewClassSet(names...)).String()
}
