// Package extract implements the contact-mining strategies over rendered
// page artifacts and the pipeline that runs them.
package extract

import "github.com/leadprobe/leadprobe/contact"

// Element is the text content of one likely-hidden DOM element, paired with
// the selector signature that matched it.
type Element struct {
	Selector string
	Text     string
}

// MetaTag is one page metadata key/value pair.
type MetaTag struct {
	Key   string
	Value string
}

// Artifacts are the rendered-page inputs supplied by the browser
// collaborator. Every field is optional; an absent artifact simply yields no
// candidates from the strategy that consumes it. The core treats artifacts
// as read-only.
type Artifacts struct {
	// Markup is the full page markup, including comments and scripts.
	Markup string
	// Hidden holds the text of elements matching the hidden-contact
	// selector signatures.
	Hidden []Element
	// Meta holds the page metadata pairs.
	Meta []MetaTag
	// Network holds intercepted network payloads. Reserved.
	Network []string
	// Images holds image references for OCR. Reserved.
	Images []string
}

// Extractor is one contact-mining strategy. Extract never fails: malformed
// or missing input yields an empty bundle, so one strategy cannot abort the
// others.
type Extractor interface {
	Name() string
	Extract(a *Artifacts) contact.Bundle
}

// Default returns the full strategy set. The set of mining techniques is
// closed and known at build time; this is a fixed list, not a registry.
func Default() []Extractor {
	return []Extractor{Markup{}, Hidden{}, Meta{}, Network{}, Image{}}
}
