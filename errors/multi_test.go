package errors

import (
	"io"
	"testing"
)

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}

	single := Wrap(ErrNotFound, "escrow")
	if err := Append(nil, single, nil); err != single {
		t.Fatalf("single error must be returned as it is, got %v", err)
	}

	err := Append(Append(ErrEmpty, ErrAmount), io.EOF)
	m, ok := err.(*multiErr)
	if !ok {
		t.Fatalf("want multi error, got %T", err)
	}
	if got := len(m.Unpack()); got != 3 {
		t.Fatalf("want a flat list of 3 errors, got %d", got)
	}
	if code, _ := ABCIInfo(err, false); code != ErrEmpty.code {
		t.Fatalf("want code of the first error, got %d", code)
	}
	if !ErrAmount.Is(err) {
		t.Fatal("want amount error to be found")
	}
	if ErrNotFound.Is(err) {
		t.Fatal("not found error is not part of the group")
	}
}
