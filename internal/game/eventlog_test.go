package game

import (
	"fmt"
	"testing"
)

func TestEventLog_RingKeepsNewest(t *testing.T) {
	el := NewEventLog()
	for i := 0; i < logMaxEntries+5; i++ {
		el.Addf(EventInfo, "event %d", i)
	}
	recent := el.Recent()
	if len(recent) != logMaxEntries {
		t.Fatalf("expected %d entries, got %d", logMaxEntries, len(recent))
	}
	if recent[0].Message != "event 5" {
		t.Fatalf("oldest entry=%q, want event 5", recent[0].Message)
	}
	last := recent[len(recent)-1]
	if last.Message != fmt.Sprintf("event %d", logMaxEntries+4) || last.Seq != logMaxEntries+5 {
		t.Fatalf("newest entry=%+v", last)
	}
}

func TestEventLog_Chronological(t *testing.T) {
	el := NewEventLog()
	el.Add(EventDeploy, "a")
	el.Add(EventReject, "b")
	recent := el.Recent()
	if len(recent) != 2 || recent[0].Message != "a" || recent[1].Kind != EventReject {
		t.Fatalf("unexpected entries %+v", recent)
	}
}
