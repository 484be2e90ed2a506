package css_test

import (
	"testing"

	"mkcss/css"
)

func TestCheck(t *testing.T) {
	names := []string{"mt-4", "-mt-4", "mx-2", "text-20", "text-sm", "fg-ff0000", "font-mono", "inset-0", "unknown-x"}
	raw := css.Compile(names, false)

	sum, err := css.Check([]byte(raw))
	if err != nil {
		t.Fatalf("Check(raw) error = %v", err)
	}
	if sum.Rulesets != 8 {
		t.Errorf("raw rulesets = %d, want 8", sum.Rulesets)
	}
	// inset expands to four declarations
	if sum.Declarations != 12 {
		t.Errorf("raw declarations = %d, want 12", sum.Declarations)
	}

	minSum, err := css.Check([]byte(css.Minify(raw)))
	if err != nil {
		t.Fatalf("Check(minified) error = %v", err)
	}
	if minSum != sum {
		t.Errorf("minified summary %+v differs from raw %+v", minSum, sum)
	}
}

func TestCheck_Reset(t *testing.T) {
	sum, err := css.Check([]byte(css.ResetStylesheet()))
	if err != nil {
		t.Fatalf("Check(reset) error = %v", err)
	}
	if sum.Rulesets != 8 {
		t.Errorf("reset rulesets = %d, want 8", sum.Rulesets)
	}

	minSum, err := css.Check([]byte(css.Minify(css.ResetStylesheet())))
	if err != nil {
		t.Fatalf("Check(minified reset) error = %v", err)
	}
	if minSum != sum {
		t.Errorf("minified reset summary %+v differs from %+v", minSum, sum)
	}
}

func TestCheck_Empty(t *testing.T) {
	sum, err := css.Check(nil)
	if err != nil {
		t.Fatalf("Check(nil) error = %v", err)
	}
	if sum != (css.Summary{}) {
		t.Errorf("Check(nil) = %+v", sum)
	}
}
