package deploy

import (
	"strings"
	"testing"
)

func TestMenuLog_FilterAndCount(t *testing.T) {
	ml := NewMenuLog()
	ml.Add("cursor", "move", Cell{2, 3}, "right")
	ml.Add("cursor", "move_rejected", Cell{0, 4}, "right")
	ml.Add("populate", "unit_placed", Cell{0, 0}, "faction=1 slot=0")

	if got := len(ml.Filter("cursor", "")); got != 2 {
		t.Fatalf("cursor entries=%d, want 2", got)
	}
	if got := ml.Count("", "unit_placed"); got != 1 {
		t.Fatalf("unit_placed entries=%d, want 1", got)
	}
	if ml.Entries()[2].Seq != 3 {
		t.Fatalf("seq=%d, want 3", ml.Entries()[2].Seq)
	}
}

func TestMenuLog_Format(t *testing.T) {
	ml := NewMenuLog()
	ml.Add("cursor", "move_rejected", Cell{0, 4}, "right")
	line := ml.Entries()[0].String()
	if !strings.HasPrefix(line, "[#001] cursor") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "(0,4) right") {
		t.Fatalf("line %q missing cell and value", line)
	}
	if strings.Count(ml.Format(), "\n") != 1 {
		t.Fatalf("format should emit one line per entry")
	}
}
