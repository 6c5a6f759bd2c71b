package notify

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	if err := (Bell{W: &buf}).Notify(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\a" {
		t.Fatalf("expected BEL, got %q", buf.String())
	}
}

func TestBellReportsWriteError(t *testing.T) {
	if err := (Bell{W: failingWriter{}}).Notify(); err == nil {
		t.Fatal("expected error")
	}
}

func TestBellNilWriterAndSilent(t *testing.T) {
	if err := (Bell{}).Notify(); err != nil {
		t.Fatal(err)
	}
	if err := (Silent{}).Notify(); err != nil {
		t.Fatal(err)
	}
}
