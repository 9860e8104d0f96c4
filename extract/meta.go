package extract

import (
	"github.com/leadprobe/leadprobe/contact"
	"github.com/leadprobe/leadprobe/pattern"
)

// Meta scans page metadata values with the bare email pattern. Emails are
// the only contact kind plausibly embedded in metadata.
type Meta struct{}

func (Meta) Name() string { return "meta" }

func (Meta) Extract(a *Artifacts) contact.Bundle {
	var b contact.Bundle
	for _, tag := range a.Meta {
		b.Emails = append(b.Emails, pattern.EmailBare.FindAll(tag.Value)...)
	}

	return contact.Merge(b)
}
