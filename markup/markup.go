// Package markup extracts everything compiler needs from HTML documents.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"

	"mkcss/css"
)

// ErrNoMarker is returned when document does not say where stylesheet goes.
var ErrNoMarker = errors.New("output marker element not found")

var classSelector = cascadia.MustCompile("[class]")

// Document is parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads HTML document from r. When enc is nil document encoding is
// detected from BOM and meta elements, defaulting to UTF-8.
func Parse(r io.Reader, enc encoding.Encoding) (*Document, error) {
	var (
		in  io.Reader
		err error
	)
	if enc != nil {
		in = enc.NewDecoder().Reader(r)
	} else if in, err = charset.NewReader(r, ""); err != nil {
		return nil, fmt.Errorf("unable to detect document encoding: %w", err)
	}

	root, err := html.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Classes collects all class names used by any element of the document.
func (d *Document) Classes() css.ClassSet {
	set := make(css.ClassSet)
	for _, n := range classSelector.MatchAll(d.root) {
		for _, a := range n.Attr {
			if a.Namespace == "" && a.Key == "class" {
				set.Add(strings.Fields(a.Val)...)
			}
		}
	}
	return set
}

// OutputRef returns href of the first link element carrying marker
// attribute, for example <link mkcss href="css/site.css">. ErrNoMarker is
// returned when there is no such element.
func (d *Document) OutputRef(marker string) (string, error) {
	sel, err := cascadia.Compile("link[" + marker + "]")
	if err != nil {
		return "", fmt.Errorf("bad marker attribute name %q: %w", marker, err)
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return "", ErrNoMarker
	}
	for _, a := range n.Attr {
		if a.Key == "href" && len(strings.TrimSpace(a.Val)) > 0 {
			return strings.TrimSpace(a.Val), nil
		}
	}
	return "", fmt.Errorf("marker element <link %s> has no href", marker)
}
