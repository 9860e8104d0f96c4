package validate

import (
	"reflect"
	"testing"

	"github.com/leadprobe/leadprobe/contact"
)

func TestRecord(t *testing.T) {
	rec := contact.Record{
		"name":  contact.Scalar("Acme Widgets"),
		"email": contact.List{"sales@acme-widgets.co", "icon@2x.png"},
		"phone": contact.Scalar("1609459200"),
	}

	filtered := Record(rec)

	if !reflect.DeepEqual(filtered["email"], contact.List{"sales@acme-widgets.co"}) {
		t.Errorf("unexpected emails: %v", filtered["email"])
	}
	if !reflect.DeepEqual(filtered["phone"], contact.List{}) {
		t.Errorf("unexpected phones: %v", filtered["phone"])
	}
	if filtered["name"] != contact.Scalar("Acme Widgets") {
		t.Errorf("unexpected name: %v", filtered["name"])
	}

	// The caller's record is untouched.
	if !reflect.DeepEqual(rec["email"], contact.List{"sales@acme-widgets.co", "icon@2x.png"}) {
		t.Errorf("caller record mutated: %v", rec["email"])
	}
	if rec["phone"] != contact.Scalar("1609459200") {
		t.Errorf("caller record mutated: %v", rec["phone"])
	}
}

func TestRecordKeepsValidScalar(t *testing.T) {
	rec := contact.Record{"phone": contact.Scalar("+1-415-555-0100")}

	filtered := Record(rec)

	if filtered["phone"] != contact.Scalar("+1-415-555-0100") {
		t.Errorf("unexpected phone: %v", filtered["phone"])
	}
}
