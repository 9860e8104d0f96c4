package extract

import (
	"github.com/leadprobe/leadprobe/contact"
	"github.com/leadprobe/leadprobe/pattern"
)

// Selectors are the signatures of elements that commonly carry hidden
// contact details: inline hiding styles, hidden/contact class names, and
// data-* contact attributes.
var Selectors = []string{
	`[style*="display:none"]`,
	`[style*="visibility:hidden"]`,
	`.hidden`,
	`.contact-hidden`,
	`[data-contact]`,
	`[data-email]`,
	`[data-phone]`,
}

// Hidden mines the text of CSS-hidden elements with the bare email and phone
// patterns. Hidden blocks are contact metadata, not link containers, so no
// website patterns are applied.
type Hidden struct{}

func (Hidden) Name() string { return "hidden" }

func (Hidden) Extract(a *Artifacts) contact.Bundle {
	var b contact.Bundle
	for _, el := range a.Hidden {
		b.Emails = append(b.Emails, pattern.EmailBare.FindAll(el.Text)...)
		b.Phones = append(b.Phones, pattern.PhoneIntl.FindAll(el.Text)...)
	}

	return contact.Merge(b)
}
