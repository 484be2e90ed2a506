package build

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"mkcss/misc"
)

// Values is a struct that holds variables we make available for banner
// template expansion.
type Values struct {
	Name    string
	Version string
	GitHash string
	Source  string // base name of input document
	Rules   int    // number of generated rules
}

func bannerValues(src string, rules int) Values {
	return Values{
		Name:    misc.GetAppName(),
		Version: misc.GetVersion(),
		GitHash: misc.GetGitHash(),
		Source:  filepath.Base(src),
		Rules:   rules,
	}
}

func renderBanner(field string, values Values) (string, error) {
	if len(field) == 0 {
		return "", nil
	}
	tmpl, err := template.New("banner").Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse banner template: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand banner template: %w", err)
	}
	return buf.String(), nil
}
