package deploy

// QuotaTable tracks how many more units of each (faction, kind) slot may be deployed.
// It is built once and only read afterwards.
type QuotaTable struct {
	remaining [SlotCount]int
}

// NewQuotaTable subtracts the already-deployed counts from the available counts.
// Both slices must hold at least SlotCount entries.
func NewQuotaTable(available, alreadyDeployed []int) *QuotaTable {
	q := &QuotaTable{}
	for slot := 0; slot < SlotCount; slot++ {
		q.remaining[slot] = available[slot] - alreadyDeployed[slot]
	}
	return q
}

// CanAdd reports whether another unit of this slot may be deployed.
func (q *QuotaTable) CanAdd(factionSlot, unitSlot int) bool {
	return q.remaining[factionSlot*UnitKinds+unitSlot] > 0
}

// Remaining returns the raw counter, which may be negative when more units were deployed than
// the region now holds.
func (q *QuotaTable) Remaining(factionSlot, unitSlot int) int {
	return q.remaining[factionSlot*UnitKinds+unitSlot]
}

// Placeable counts slots with a positive quota.
func (q *QuotaTable) Placeable() int {
	n := 0
	for _, r := range q.remaining {
		if r > 0 {
			n++
		}
	}
	return n
}
