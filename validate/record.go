package validate

import "github.com/leadprobe/leadprobe/contact"

// Record filters the email and phone fields of a business record through the
// acceptance predicates, handling both scalar and collection shapes. An
// invalid scalar becomes an empty collection. The caller's record is not
// mutated.
func Record(rec contact.Record) contact.Record {
	out := make(contact.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}

	filterField(out, "email", Email)
	filterField(out, "phone", Phone)

	return out
}

func filterField(rec contact.Record, field string, accept func(string) bool) {
	switch v := rec[field].(type) {
	case contact.Scalar:
		if !accept(string(v)) {
			rec[field] = contact.List{}
		}
	case contact.List:
		kept := make(contact.List, 0, len(v))
		for _, s := range v {
			if accept(s) {
				kept = append(kept, s)
			}
		}
		rec[field] = kept
	}
}
