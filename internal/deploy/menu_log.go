package deploy

import (
	"fmt"
	"strings"
)

// MenuLogEntry is one recorded menu event.
type MenuLogEntry struct {
	Seq      int
	Category string // populate, cursor
	Key      string // specific event within the category
	Cell     Cell
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[#003] cursor   move_rejected  (0,4) right
func (e MenuLogEntry) String() string {
	return fmt.Sprintf("[#%03d] %-8s %-14s (%d,%d) %s",
		e.Seq, e.Category, e.Key, e.Cell.X, e.Cell.Y, e.Value)
}

// MenuLog collects structured events for one menu instance. It is unbounded and
// machine-readable; the interactive shell keeps its own bounded on-screen log.
type MenuLog struct {
	entries []MenuLogEntry
}

// NewMenuLog creates an empty log.
func NewMenuLog() *MenuLog {
	return &MenuLog{}
}

// Add records a new entry.
func (ml *MenuLog) Add(category, key string, c Cell, value string) {
	ml.entries = append(ml.entries, MenuLogEntry{
		Seq:      len(ml.entries) + 1,
		Category: category,
		Key:      key,
		Cell:     c,
		Value:    value,
	})
}

// Entries returns all recorded entries.
func (ml *MenuLog) Entries() []MenuLogEntry {
	return ml.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (ml *MenuLog) Filter(category, key string) []MenuLogEntry {
	var out []MenuLogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns the number of entries matching category and key.
func (ml *MenuLog) Count(category, key string) int {
	return len(ml.Filter(category, key))
}

// Format renders every entry, one per line.
func (ml *MenuLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
