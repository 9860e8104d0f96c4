package extract

import "github.com/leadprobe/leadprobe/contact"

// Network is an extension point for contact fields leaked in intercepted
// API responses. It currently contributes nothing.
type Network struct{}

func (Network) Name() string { return "network" }

func (Network) Extract(*Artifacts) contact.Bundle { return contact.Bundle{} }

// Image is an extension point for OCR-derived text from contact images. It
// currently contributes nothing.
type Image struct{}

func (Image) Name() string { return "image" }

func (Image) Extract(*Artifacts) contact.Bundle { return contact.Bundle{} }
