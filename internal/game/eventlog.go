package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 40
	logLineHeight = 14
)

// EventKind colours an entry's marker.
type EventKind uint8

const (
	EventInfo EventKind = iota
	EventDeploy
	EventReject
)

// EventEntry is a single line in the on-screen log.
type EventEntry struct {
	Seq     int
	Kind    EventKind
	Message string
}

// EventLog is a ring buffer of menu events rendered beside the grid.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
	seq     int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]EventEntry, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (el *EventLog) Add(kind EventKind, msg string) {
	el.seq++
	el.entries[el.head] = EventEntry{Seq: el.seq, Kind: kind, Message: msg}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Addf formats and appends an entry.
func (el *EventLog) Addf(kind EventKind, format string, args ...any) {
	el.Add(kind, fmt.Sprintf(format, args...))
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the log panel at panelX, newest entry at the bottom.
func (el *EventLog) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 16, A: 240}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 80, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "DEPLOYMENT LOG", panelX+8, 2)

	entries := el.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for _, e := range entries {
		var dot color.RGBA
		switch e.Kind {
		case EventDeploy:
			dot = color.RGBA{R: 90, G: 200, B: 90, A: 255}
		case EventReject:
			dot = color.RGBA{R: 200, G: 80, B: 70, A: 255}
		default:
			dot = color.RGBA{R: 120, G: 130, B: 150, A: 255}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3d %s", e.Seq, e.Message), panelX+12, y)
		y += logLineHeight
	}
}
