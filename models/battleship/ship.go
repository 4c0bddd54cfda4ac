package battleship

import "github.com/google/uuid"

// Lengths of the standard fleet, one ship each.
var FleetLengths = []int{1, 2, 3, 4, 5}

type Ship struct {
	ID     string
	Length int
	hits   int
	sunk   bool
}

func NewShip(length int) *Ship {
	return &Ship{
		ID:     uuid.NewString()[:8],
		Length: length,
	}
}

func NewFleet() []*Ship {
	fleet := make([]*Ship, 0, len(FleetLengths))
	for _, length := range FleetLengths {
		fleet = append(fleet, NewShip(length))
	}
	return fleet
}

// Hit has no upper bound; hits past the length keep counting.
// Gameboard is responsible for not hitting the same cell twice.
func (sh *Ship) Hit() {
	sh.hits++
	if sh.hits >= sh.Length {
		sh.sunk = true
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.sunk
}

func (sh *Ship) Hits() int {
	return sh.hits
}
