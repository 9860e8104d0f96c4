package contact

import "encoding/json"

// Value is a business record field holding either a single string or a
// collection. Modeling the two shapes explicitly keeps the scalar-to-
// collection promotion in Enrich a single case match.
type Value interface {
	isValue()
}

// Scalar is a single-string field value.
type Scalar string

// List is a collection field value.
type List []string

func (Scalar) isValue() {}
func (List) isValue()   {}

// Record is a caller-owned business record, mapping field names to values.
// Enrichment operates on a copy and never mutates the caller's record.
type Record map[string]Value

// Enrich folds the bundle's candidates into a shallow copy of rec. Per kind,
// a missing field is created, a scalar is promoted to a one-element
// collection, and the candidates are appended and deduplicated. Existing
// values are never removed or overwritten. The email and phone fields are
// singular while websites is plural; that asymmetry is an external contract.
func Enrich(rec Record, b Bundle) Record {
	out := make(Record, len(rec)+3)
	for k, v := range rec {
		out[k] = v
	}

	appendField(out, "email", b.Emails)
	appendField(out, "phone", b.Phones)
	appendField(out, "websites", b.Websites)

	return out
}

func appendField(rec Record, field string, candidates []string) {
	if len(candidates) == 0 {
		return
	}

	var existing List
	switch v := rec[field].(type) {
	case Scalar:
		existing = List{string(v)}
	case List:
		existing = v
	}

	rec[field] = List(Dedupe(append(existing, candidates...)))
}

// MarshalJSON renders scalar fields as strings and collections as arrays.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r))
	for k, v := range r {
		switch v := v.(type) {
		case Scalar:
			out[k] = string(v)
		case List:
			out[k] = []string(v)
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads strings as scalar fields and string arrays as
// collections. Fields of any other shape are dropped.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rec := make(Record, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			rec[k] = Scalar(v)
		case []any:
			list := make(List, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					list = append(list, s)
				}
			}
			rec[k] = list
		}
	}

	*r = rec
	return nil
}
