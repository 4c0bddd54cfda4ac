package battleship

import "math/rand/v2"

type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied
	CellHit
	CellMiss
)

func (s CellState) String() string {
	switch s {
	case CellOccupied:
		return "occupied"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "empty"
	}
}

func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Cell replaces the old "true or ship reference" sentinel.
// ShipID is set for occupied and hit cells only.
type Cell struct {
	State  CellState `json:"state"`
	ShipID string    `json:"ship_id,omitempty"`
}

func (c Cell) IsEmpty() bool {
	return c.State == CellEmpty
}

// Randomizer is satisfied by *rand.Rand from math/rand/v2.
type Randomizer interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
