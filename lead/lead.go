// Package lead mines contact details out of an existing lead record: its
// direct contact fields plus regex scans of its free-text fields.
package lead

import (
	"regexp"
	"strings"

	"github.com/leadprobe/leadprobe/contact"
	"github.com/leadprobe/leadprobe/pattern"
)

// Free-text record fields worth scanning for contact details.
var textFields = []string{"notes", "bio", "description"}

var phoneParen = regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`)

// Emails pools the record's direct email field with addresses found in its
// free-text fields, deduplicated.
func Emails(rec contact.Record) []string {
	var out []string
	out = append(out, values(rec, "email")...)
	for _, f := range textFields {
		for _, text := range values(rec, f) {
			out = append(out, pattern.EmailBare.FindAll(text)...)
		}
	}

	return contact.Dedupe(out)
}

// Phones pools the record's direct phone field with numbers found in its
// free-text and address fields, deduplicated.
func Phones(rec contact.Record) []string {
	var out []string
	out = append(out, values(rec, "phone")...)
	for _, f := range []string{"notes", "bio", "description", "address"} {
		for _, text := range values(rec, f) {
			out = append(out, pattern.PhonePlain.FindAll(text)...)
			out = append(out, pattern.PhoneIntl.FindAll(text)...)
			out = append(out, phoneParen.FindAllString(text, -1)...)
		}
	}

	return contact.Dedupe(out)
}

// Websites pools the record's website-like fields with URLs found in its
// free-text fields, deduplicated.
func Websites(rec contact.Record) []string {
	var out []string
	for _, f := range []string{"website", "url", "homepage"} {
		out = append(out, values(rec, f)...)
	}
	for _, f := range textFields {
		for _, text := range values(rec, f) {
			out = append(out, pattern.WebsiteHTTP.FindAll(text)...)
		}
	}

	return contact.Dedupe(out)
}

var socialPatterns = map[string]*regexp.Regexp{
	"instagram": regexp.MustCompile(`instagram\.com/([^\s/]+)`),
	"twitter":   regexp.MustCompile(`(?:twitter|x)\.com/([^\s/]+)`),
	"facebook":  regexp.MustCompile(`facebook\.com/([^\s/]+)`),
	"linkedin":  regexp.MustCompile(`linkedin\.com/(?:in|company)/([^\s/]+)`),
	"youtube":   regexp.MustCompile(`youtube\.com/(?:user|c|channel)/([^\s/]+)`),
	"tiktok":    regexp.MustCompile(`tiktok\.com/@([^\s/]+)`),
}

// Socials extracts social media handles from profile text, keyed by
// platform. Platforms with no handle in the text are absent from the result.
func Socials(text string) map[string]string {
	text = strings.ToLower(text)

	out := make(map[string]string)
	for platform, re := range socialPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			out[platform] = m[1]
		}
	}

	return out
}

func values(rec contact.Record, field string) []string {
	switch v := rec[field].(type) {
	case contact.Scalar:
		return []string{string(v)}
	case contact.List:
		return v
	}

	return nil
}
