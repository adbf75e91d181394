package game

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func TestCopySummary_WrapsError(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard on this system")
	}
	orig := copyText
	defer func() { copyText = orig }()

	var got string
	copyText = func(s string) error {
		got = s
		return nil
	}
	if err := copySummary("faction 1 kind 0: 1 deployed, 0 remaining\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Fatal("summary not copied")
	}

	copyText = func(string) error { return errors.New("boom") }
	err := copySummary("x")
	if err == nil || err.Error() != "copying deployment summary: boom" {
		t.Fatalf("err=%v", err)
	}
}
