package css_test

import (
	"testing"

	"mkcss/css"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comment", "a:1;/* c */b:2;", "a:1;b:2;"},
		{"declaration spacing", ".a {  color : red ;  }", ".a{color: red ;}"},
		{"collapse inside", "a:  \t\n 1   2;", "a: 1 2;"},
		{"strip outside", "\n\n.a\t{\n}\n\n.b { }\n", ".a{}.b{}"},
		{"rules", ".mt-4 { margin-top: 4px }\n.mx-2 { margin-left: 2px; margin-right: 2px }\n",
			".mt-4{margin-top: 4px }.mx-2{margin-left: 2px;margin-right: 2px }"},
		{"comment inside value", "a: 1 /* x */ 2;", "a: 1 2;"},
		{"unterminated comment", "a:1;/* never ends", "a:1;"},
		{"comment starts at opener star", "/*/a", "a"},
		{"empty comment", "a/**/b", "ab"},
		{"star and slash alone", "a:1*2/3;", "a:1*2/3;"},
		{"selector colon", "a:hover { color: red }", "a:hover {color: red }"},
		{"empty", "", ""},
		{"unicode", ".é { content: ü }", ".é{content: ü }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := css.Minify(tt.in); got != tt.want {
				t.Errorf("Minify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinify_Idempotent(t *testing.T) {
	inputs := []string{
		css.Compile([]string{"mt-4", "-mt-4", "mx-2", "text-20", "text-sm", "fg-ff0000", "font-sans", "text-ellipsis"}, true),
		"a:1;/* c */b:2;",
		".a {  color : red ;  }",
		"a: 1 /* x */ 2;",
	}
	for _, in := range inputs {
		once := css.Minify(in)
		if twice := css.Minify(once); twice != once {
			t.Errorf("Minify is not idempotent:\n%q\n%q", once, twice)
		}
	}
}
