package validate

import (
	"strings"
	"testing"

	"github.com/leadprobe/leadprobe/contact"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{
			name:     "business address",
			email:    "sales@acme-widgets.co",
			expected: true,
		},
		{
			name:     "dotted local part",
			email:    "john.doe@acme.io",
			expected: true,
		},
		{
			name:     "subdomain of placeholder is fine",
			email:    "user@sub.domain.com",
			expected: true,
		},
		{
			name:     "placeholder domain",
			email:    "user@example.com",
			expected: false,
		},
		{
			name:     "test domain",
			email:    "info@test.com",
			expected: false,
		},
		{
			name:     "retina asset filename",
			email:    "icon@2x.png",
			expected: false,
		},
		{
			name:     "asset starting with digit",
			email:    "2x@2x.png",
			expected: false,
		},
		{
			name:     "logo local part",
			email:    "logo@acme.com",
			expected: false,
		},
		{
			name:     "photo substring",
			email:    "photo@studio.com",
			expected: false,
		},
		{
			name:     "numeric id local part",
			email:    "1234567890123@foo.com",
			expected: false,
		},
		{
			name:     "long digit run in domain",
			email:    "user@x12345678y.com",
			expected: false,
		},
		{
			name:     "single letter tld",
			email:    "a@b.c",
			expected: false,
		},
		{
			name:     "too short",
			email:    "a@b",
			expected: false,
		},
		{
			name:     "too long",
			email:    strings.Repeat("a", 95) + "@x.com",
			expected: false,
		},
		{
			name:     "contains space",
			email:    "user name@acme.com",
			expected: false,
		},
		{
			name:     "markup characters",
			email:    "user{0}@acme.com",
			expected: false,
		},
		{
			name:     "empty",
			email:    "",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Email(test.email); got != test.expected {
				t.Errorf("unexpected result for %q: %v", test.email, got)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{
			name:     "formatted international",
			phone:    "+1-415-555-0100",
			expected: true,
		},
		{
			name:     "parenthesized area code",
			phone:    "(415) 555-0147",
			expected: true,
		},
		{
			name:     "dotted separators",
			phone:    "415.555.0100",
			expected: true,
		},
		{
			name:     "ten plain digits without timestamp shape",
			phone:    "5559297140",
			expected: true,
		},
		{
			name:     "eleven plain digits",
			phone:    "55592971402",
			expected: false,
		},
		{
			name:     "uk number with country code",
			phone:    "+442079460958",
			expected: true,
		},
		{
			name:     "uk number missing country code",
			phone:    "020 7946 0958",
			expected: false,
		},
		{
			name:     "unix second timestamp",
			phone:    "1609459200",
			expected: false,
		},
		{
			name:     "timestamp range upper bound",
			phone:    "2524608000",
			expected: false,
		},
		{
			name:     "just above timestamp range",
			phone:    "2524608001",
			expected: true,
		},
		{
			name:     "timestamp value at nine digits",
			phone:    "946684800",
			expected: true,
		},
		{
			name:     "unix millisecond timestamp",
			phone:    "1693526400000",
			expected: false,
		},
		{
			name:     "single repeated digit",
			phone:    "0000000000",
			expected: false,
		},
		{
			name:     "ascending run at seven digits",
			phone:    "1234567",
			expected: true,
		},
		{
			name:     "ascending run at eight digits",
			phone:    "12345678",
			expected: false,
		},
		{
			name:     "ascending run in formatted number",
			phone:    "555-123-4567",
			expected: false,
		},
		{
			name:     "css measurement",
			phone:    "10.5 20.3 30",
			expected: false,
		},
		{
			name:     "too few digits",
			phone:    "123456",
			expected: false,
		},
		{
			name:     "too many digits",
			phone:    "1234567890123456",
			expected: false,
		},
		{
			name:     "empty",
			phone:    "",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Phone(test.phone); got != test.expected {
				t.Errorf("unexpected result for %q: %v", test.phone, got)
			}
		})
	}
}

func TestWebsite(t *testing.T) {
	tests := []struct {
		name     string
		website  string
		expected bool
	}{
		{
			name:     "https",
			website:  "https://acme.com",
			expected: true,
		},
		{
			name:     "http",
			website:  "http://acme.io/about",
			expected: true,
		},
		{
			name:     "bare www host",
			website:  "www.example.org/contact",
			expected: true,
		},
		{
			name:     "no recognized prefix",
			website:  "contact-us",
			expected: false,
		},
		{
			name:     "unsupported scheme",
			website:  "ftp://acme.com",
			expected: false,
		},
		{
			name:     "empty",
			website:  "",
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Website(test.website); got != test.expected {
				t.Errorf("unexpected result for %q: %v", test.website, got)
			}
		})
	}
}

func TestFor(t *testing.T) {
	if !For(contact.KindEmail)("sales@acme-widgets.co") {
		t.Error("expected email predicate to accept")
	}
	if !For(contact.KindPhone)("+1-415-555-0100") {
		t.Error("expected phone predicate to accept")
	}
	if !For(contact.KindWebsite)("www.acme.com") {
		t.Error("expected website predicate to accept")
	}
	if For(contact.Kind("bogus"))("anything") {
		t.Error("expected unknown kind to reject")
	}
}
