// Package pattern holds the named regular expressions used to mine contact
// candidates from rendered pages. Every pattern is applied case-insensitively.
package pattern

import (
	"regexp"
	"strings"
)

// Pattern is a single named expression for one contact form.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

func compile(name, expr string) Pattern {
	return Pattern{Name: name, re: regexp.MustCompile(`(?i)` + expr)}
}

// FindAll returns every match of the pattern in text, trimmed. Patterns that
// wrap the value in a link or attribute capture the bare value; for those the
// capture group is returned instead of the whole match.
func (p Pattern) FindAll(text string) []string {
	matches := p.re.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		v := m[0]
		if len(m) > 1 && m[1] != "" {
			v = m[1]
		}
		out = append(out, strings.TrimSpace(v))
	}

	return out
}

var (
	// EmailBare matches a plain address anywhere in text.
	EmailBare = compile("email-bare", `\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
	// EmailMailto matches a mailto: link and captures the address.
	EmailMailto = compile("email-mailto", `mailto:([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`)
	// EmailAttr matches an email: "value" attribute and captures the address.
	EmailAttr = compile("email-attr", `email["']?\s*:\s*["']?([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`)

	// PhoneIntl matches general phone forms with optional international prefix.
	PhoneIntl = compile("phone-intl", `\+?\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`)
	// PhoneTel matches a tel: link and captures the number.
	PhoneTel = compile("phone-tel", `tel:(\+?\d[\d\s\-()]+)`)
	// PhoneAttr matches a phone: "value" attribute and captures the number.
	PhoneAttr = compile("phone-attr", `phone["']?\s*:\s*["']?(\+?\d[\d\s\-()]+)`)
	// PhonePlain matches the plain NNN-NNN-NNNN form.
	PhonePlain = compile("phone-plain", `\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)

	// WebsiteHTTP matches http(s):// URLs.
	WebsiteHTTP = compile("website-http", `https?://(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*)?`)
	// WebsiteWWW matches bare www. hosts.
	WebsiteWWW = compile("website-www", `www\.(?:[-\w.])+(?:[:\d]+)?(?:/(?:[\w/_.])*)?`)
)

// Pattern lists applied to raw page markup, per contact kind.
var (
	Emails   = []Pattern{EmailBare, EmailMailto, EmailAttr}
	Phones   = []Pattern{PhoneIntl, PhoneTel, PhoneAttr, PhonePlain}
	Websites = []Pattern{WebsiteHTTP, WebsiteWWW}
)
