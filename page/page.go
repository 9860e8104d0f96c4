// Package page derives extraction artifacts from a rendered HTML document.
// It is a convenience for callers that hold one markup string instead of a
// live browser session; fetching and rendering stay the caller's concern.
package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/leadprobe/leadprobe/extract"
)

// Parse builds the artifacts for one rendered page: the raw markup, the text
// of elements matching the hidden-contact selector signatures, and the page
// metadata pairs.
func Parse(markup string) (*extract.Artifacts, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse markup")
	}

	doc := goquery.NewDocumentFromNode(root)
	a := &extract.Artifacts{Markup: markup}

	for _, sel := range extract.Selectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				a.Hidden = append(a.Hidden, extract.Element{Selector: sel, Text: text})
			}
		})
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content, ok := s.Attr("content")
		if !ok || content == "" {
			return
		}

		key, _ := s.Attr("name")
		if key == "" {
			key, _ = s.Attr("property")
		}
		if key == "" {
			key, _ = s.Attr("http-equiv")
		}

		a.Meta = append(a.Meta, extract.MetaTag{Key: key, Value: content})
	})

	return a, nil
}
