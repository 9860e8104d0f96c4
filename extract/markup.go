package extract

import (
	"github.com/leadprobe/leadprobe/contact"
	"github.com/leadprobe/leadprobe/pattern"
	"github.com/leadprobe/leadprobe/validate"
)

// Markup scans the raw page markup with the full per-kind pattern lists.
// Raw matches from all patterns are pooled, validated, and deduplicated
// before they leave the extractor.
type Markup struct{}

func (Markup) Name() string { return "markup" }

func (Markup) Extract(a *Artifacts) contact.Bundle {
	if a.Markup == "" {
		return contact.Bundle{}
	}

	var b contact.Bundle
	b.Emails = scan(a.Markup, pattern.Emails, validate.Email)
	b.Phones = scan(a.Markup, pattern.Phones, validate.Phone)
	b.Websites = scan(a.Markup, pattern.Websites, validate.Website)

	return contact.Merge(b)
}

func scan(text string, patterns []pattern.Pattern, accept func(string) bool) []string {
	var out []string
	for _, p := range patterns {
		for _, m := range p.FindAll(text) {
			if accept(m) {
				out = append(out, m)
			}
		}
	}

	return out
}
