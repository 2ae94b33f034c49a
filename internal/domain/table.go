package domain

// TableStatus represents the point-in-time occupancy of a table
type TableStatus string

const (
	TableStatusFree     TableStatus = "FREE"
	TableStatusOccupied TableStatus = "OCCUPIED"
)

// TableShape is the presentation shape of a table on the floor map
type TableShape string

const (
	ShapeRound TableShape = "round"
	ShapeRect  TableShape = "rect"
)

// Table represents a physical table in the dining room.
// Tables are immutable static configuration, created once at startup.
type Table struct {
	ID          string
	Name        string
	MinCapacity int
	MaxCapacity int

	// IsCombinable marks tables that may be merged pairwise with the
	// tables listed in CombinableWith. The relation is expected to be
	// symmetric in the source data, but the engine never assumes it.
	IsCombinable   bool
	CombinableWith []string

	// Floor map position, presentation only
	X     int
	Y     int
	Shape TableShape
}

// FitsParty returns true if the table alone can seat the party.
// The one-seat slack on MinCapacity avoids seating a small party
// at a table sized for a much larger one.
func (t *Table) FitsParty(partySize int) bool {
	return t.MaxCapacity >= partySize && t.MinCapacity <= partySize+SingleTableSlackSeats
}

// CanCombineWith returns true if id is listed as a legal merge partner
func (t *Table) CanCombineWith(id string) bool {
	if !t.IsCombinable {
		return false
	}
	for _, other := range t.CombinableWith {
		if other == id {
			return true
		}
	}
	return false
}
