package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declared upfront so that DeepEqual can be used for comparison.
	var (
		unauthorizedPayerErr = Field("Payer", ErrUnauthorized, "a")
		emptyPayerErr        = Field("Payer", ErrEmpty, "b")
		amountErr            = Field("Amount", ErrAmount, "must be positive")
		msgErr               = Field("Msg", Append(
			emptyPayerErr,
			Append(amountErr, ErrState),
		), "escrow data invalid")
	)

	cases := map[string]struct {
		err   error
		field string
		want  []error
	}{
		"a single error found by the name": {
			err:   unauthorizedPayerErr,
			field: "Payer",
			want:  []error{unauthorizedPayerErr},
		},
		"two errors found by the name": {
			err:   Append(unauthorizedPayerErr, emptyPayerErr),
			field: "Payer",
			want:  []error{unauthorizedPayerErr, emptyPayerErr},
		},
		"field can contain a multi error": {
			err:   msgErr,
			field: "Msg",
			want:  []error{msgErr},
		},
		"nested match is found": {
			err:   msgErr,
			field: "Amount",
			want:  []error{amountErr},
		},
		"nil error returns nothing": {
			err:   nil,
			field: "Payer",
			want:  nil,
		},
		"error without a field": {
			err:   ErrUnauthorized,
			field: "Payer",
			want:  nil,
		},
		"wrapped multi error": {
			err:   Wrap(Wrap(msgErr, "inner"), "outer"),
			field: "Payer",
			want:  []error{emptyPayerErr},
		},
		"wrapped multi error without a match": {
			err:   Wrap(msgErr, "outer"),
			field: "Arbiter",
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if !reflect.DeepEqual(tc.want, got) {
				t.Logf("want: %#v", tc.want)
				t.Logf(" got: %#v", got)
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestAppendField(t *testing.T) {
	var errs error
	errs = AppendField(errs, "Payer", nil)
	if errs != nil {
		t.Fatalf("nil field error must be ignored, got %v", errs)
	}
	errs = AppendField(errs, "Payer", ErrEmpty)
	errs = AppendField(errs, "Amount", ErrAmount)
	if !ErrEmpty.Is(errs) || !ErrAmount.Is(errs) {
		t.Fatalf("want both errors to be found in %v", errs)
	}
	if n := len(FieldErrors(errs, "Amount")); n != 1 {
		t.Fatalf("want one amount error, got %d", n)
	}
}
