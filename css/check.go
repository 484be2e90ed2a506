package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Summary describes what CSS lexer found in the stylesheet.
type Summary struct {
	Rulesets     int
	Declarations int
	AtRules      int
}

// Check runs generated text through real CSS parser to make sure it is still
// a well formed stylesheet.
func Check(data []byte) (Summary, error) {
	var sum Summary

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return sum, fmt.Errorf("malformed stylesheet: %w", err)
			}
			return sum, nil
		case css.BeginRulesetGrammar:
			sum.Rulesets++
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			sum.Declarations++
		case css.AtRuleGrammar, css.BeginAtRuleGrammar:
			sum.AtRules++
		}
	}
}
