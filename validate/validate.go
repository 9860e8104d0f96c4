// Package validate holds the per-kind acceptance predicates that separate
// real contact details from the noise that pattern matching drags out of
// business-directory markup: asset filenames, CSS measurements, analytics
// timestamps and placeholder example data. Each predicate is pure and total
// over string input; rejection is a normal outcome, not an error.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leadprobe/leadprobe/contact"
)

var (
	emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	assetName  = regexp.MustCompile(`^\d|@2x|@3x|logo|icon|image|img|photo|pic|asset`)
	digitRun   = regexp.MustCompile(`\d{8,}`)
	nonPhone   = regexp.MustCompile(`[^\d+\-().\s]`)
	nonDigit   = regexp.MustCompile(`[^\d]`)
)

// assetExts are file-extension substrings that mark a match as an asset
// filename rather than an address.
var assetExts = []string{".png", ".jpg", ".jpeg", ".gif", ".css", ".js", ".ico", ".svg", ".webp"}

// placeholderDomains never belong to a real business.
var placeholderDomains = map[string]struct{}{
	"example.com": {},
	"test.com":    {},
	"sample.com":  {},
	"domain.com":  {},
	"email.com":   {},
}

// Unix second timestamps for the years 2000-2050. Ten-digit numbers in this
// range are analytics noise, not phone numbers.
const (
	timestampMin = 946684800
	timestampMax = 2524608000
)

// Email reports whether s is plausibly a real address. The mailto:/attribute
// wrapper must already be stripped by the extractor's capture group.
func Email(s string) bool {
	if len(s) < 5 || len(s) > 100 {
		return false
	}

	if !emailShape.MatchString(s) {
		return false
	}

	lower := strings.ToLower(s)

	// Asset filenames: icon@2x.png and friends match the email shape.
	for _, ext := range assetExts {
		if strings.Contains(lower, ext) {
			return false
		}
	}
	if assetName.MatchString(lower) {
		return false
	}

	if strings.ContainsAny(s, " <>{}[]|\\^") {
		return false
	}

	// IDs and timestamps masquerading as local parts.
	local, domain, _ := strings.Cut(s, "@")
	if len(local) >= 10 && allDigits(local) {
		return false
	}
	if digitRun.MatchString(s) {
		return false
	}

	if _, ok := placeholderDomains[strings.ToLower(domain)]; ok {
		return false
	}

	return true
}

// Phone reports whether s is plausibly a real phone number.
func Phone(s string) bool {
	if s == "" {
		return false
	}

	// CSS measurements survive the phone patterns; they carry both a dot
	// and a space once other characters are stripped.
	cleaned := nonPhone.ReplaceAllString(s, "")
	if strings.Contains(cleaned, ".") && strings.Contains(cleaned, " ") {
		return false
	}

	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}

	// Unix millisecond timestamps.
	if len(digits) == 13 && digits[0] == '1' {
		return false
	}

	// Unix second timestamps. A parse failure means "not a timestamp".
	if len(digits) == 10 && (digits[0] == '1' || digits[0] == '2') {
		if ts, err := strconv.ParseInt(digits, 10, 64); err == nil && ts >= timestampMin && ts <= timestampMax {
			return false
		}
	}

	if len(digits) > 3 && repeatedDigit(digits) {
		return false
	}

	// Sequential runs like ...123456... are placeholder noise, but only
	// long digit strings are rejected for them.
	if len(digits) >= 8 && hasAscendingRun(digits) {
		return false
	}

	// Long digit strings with no formatting at all are suspicious.
	if len(s) == len(digits) && len(digits) > 10 {
		return false
	}

	// A leading zero without an explicit country code is malformed.
	if !strings.HasPrefix(s, "+") && digits[0] == '0' && len(digits) > 7 {
		return false
	}

	return true
}

// Website reports whether s carries a recognized URL prefix.
func Website(s string) bool {
	for _, prefix := range []string{"http://", "https://", "www."} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

// For returns the acceptance predicate for the given contact kind.
func For(kind contact.Kind) func(string) bool {
	switch kind {
	case contact.KindEmail:
		return Email
	case contact.KindPhone:
		return Phone
	case contact.KindWebsite:
		return Website
	}

	return func(string) bool { return false }
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return len(s) > 0
}

func repeatedDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}

	return true
}

func hasAscendingRun(digits string) bool {
	for i := 0; i+2 < len(digits); i++ {
		if digits[i+1] == digits[i]+1 && digits[i+2] == digits[i+1]+1 {
			return true
		}
	}

	return false
}
