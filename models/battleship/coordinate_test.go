package battleship

import (
	"encoding/json"
	"errors"
	"testing"

	cerr "github.com/saeidalz13/naval-combat/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "0, 0", NewCoordinate(0, 0).String())
	assert.Equal(t, "9, 3", NewCoordinate(9, 3).String())
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    Coordinate
		expectedErr error
	}{
		{name: "origin", raw: "0, 0", expected: NewCoordinate(0, 0)},
		{name: "corner", raw: "9, 9", expected: NewCoordinate(9, 9)},
		{name: "no space", raw: "1,2", expectedErr: cerr.ErrInvalidCoordinate},
		{name: "two spaces", raw: "1,  2", expectedErr: cerr.ErrInvalidCoordinate},
		{name: "leading zero", raw: "01, 2", expectedErr: cerr.ErrInvalidCoordinate},
		{name: "negative", raw: "-1, 2", expectedErr: cerr.ErrInvalidCoordinate},
		{name: "out of bounds", raw: "10, 2", expectedErr: cerr.ErrCoordinateOutOfBounds},
		{name: "empty", raw: "", expectedErr: cerr.ErrInvalidCoordinate},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := ParseCoordinate(test.raw)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr), "got: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, c)
			assert.Equal(t, test.raw, c.String())
		})
	}
}

func TestCoordinate_JSONKeys(t *testing.T) {
	cells := map[Coordinate]Cell{
		NewCoordinate(5, 5): {State: CellMiss},
	}

	raw, err := json.Marshal(cells)
	require.NoError(t, err)
	assert.JSONEq(t, `{"5, 5":{"state":"miss"}}`, string(raw))

	var missed []Coordinate
	require.NoError(t, json.Unmarshal([]byte(`["0, 1","7, 2"]`), &missed))
	assert.Equal(t, []Coordinate{NewCoordinate(0, 1), NewCoordinate(7, 2)}, missed)
}

func TestAllCoordinates(t *testing.T) {
	coords := AllCoordinates()
	require.Len(t, coords, BoardSize*BoardSize)

	seen := make(map[Coordinate]struct{}, len(coords))
	for _, c := range coords {
		assert.True(t, c.InBounds())
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, BoardSize*BoardSize)
}
