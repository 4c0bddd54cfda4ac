package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShip_Hit(t *testing.T) {
	for _, length := range FleetLengths {
		ship := NewShip(length)
		for i := 0; i < length-1; i++ {
			ship.Hit()
			assert.False(t, ship.IsSunk(), "length %d sunk after %d hits", length, i+1)
		}

		ship.Hit()
		assert.True(t, ship.IsSunk())
		assert.Equal(t, length, ship.Hits())
	}
}

func TestShip_HitAfterSunkKeepsCounting(t *testing.T) {
	ship := NewShip(1)
	ship.Hit()
	ship.Hit()

	assert.True(t, ship.IsSunk())
	assert.Equal(t, 2, ship.Hits())
}

func TestNewFleet(t *testing.T) {
	fleet := NewFleet()
	assert.Len(t, fleet, 5)

	ids := make(map[string]struct{})
	for i, ship := range fleet {
		assert.Equal(t, FleetLengths[i], ship.Length)
		ids[ship.ID] = struct{}{}
	}
	assert.Len(t, ids, 5)
}
