// Package contact defines the contact bundle produced by extraction, the
// merge step that joins candidate sets, and the business record enrichment.
package contact

import "sort"

// Kind enumerates the contact kinds the engine extracts.
type Kind string

const (
	KindEmail   Kind = "email"
	KindPhone   Kind = "phone"
	KindWebsite Kind = "website"
)

// Bundle holds the contact candidates mined from one page. Each field is a
// set: after any merge step it contains no duplicate values (byte-for-byte,
// case-sensitive).
type Bundle struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	Websites []string `json:"websites"`
}

// Empty reports whether the bundle holds no candidates of any kind.
func (b Bundle) Empty() bool {
	return len(b.Emails) == 0 && len(b.Phones) == 0 && len(b.Websites) == 0
}

// Merge pools any number of candidate bundles into one deduplicated bundle.
// The result is sorted per kind, so input order does not affect it: merge is
// commutative, associative and idempotent. Zero-value bundles contribute
// nothing.
func Merge(bundles ...Bundle) Bundle {
	var out Bundle
	for _, b := range bundles {
		out.Emails = append(out.Emails, b.Emails...)
		out.Phones = append(out.Phones, b.Phones...)
		out.Websites = append(out.Websites, b.Websites...)
	}

	out.Emails = Dedupe(out.Emails)
	out.Phones = Dedupe(out.Phones)
	out.Websites = Dedupe(out.Websites)

	return out
}

// Dedupe returns the distinct values in sorted order, or nil for no values.
func Dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
