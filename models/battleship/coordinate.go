package battleship

import (
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/naval-combat/internal/error"
)

const BoardSize = 10

// Separator between row and column in the textual coordinate form.
// The renderer looks cells up by this exact string.
const coordinateSeparator = ", "

type Coordinate struct {
	Row int
	Col int
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// String renders the coordinate as "{row}, {col}".
func (c Coordinate) String() string {
	return strconv.Itoa(c.Row) + coordinateSeparator + strconv.Itoa(c.Col)
}

func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCoordinate accepts only the "{row}, {col}" form with both
// values inside the board.
func ParseCoordinate(raw string) (Coordinate, error) {
	rowStr, colStr, found := strings.Cut(raw, coordinateSeparator)
	if !found {
		return Coordinate{}, cerr.ErrParseCoordinate(raw)
	}

	row, err := parseAxis(rowStr)
	if err != nil {
		return Coordinate{}, cerr.ErrParseCoordinate(raw)
	}
	col, err := parseAxis(colStr)
	if err != nil {
		return Coordinate{}, cerr.ErrParseCoordinate(raw)
	}

	c := NewCoordinate(row, col)
	if !c.InBounds() {
		return Coordinate{}, cerr.ErrXorYOutOfGridBound(row, col)
	}
	return c, nil
}

// no signs, no leading zeros
func parseAxis(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("invalid axis value %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid axis value %q", s)
		}
	}
	return strconv.Atoi(s)
}

// Returns every board coordinate in row-major order.
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coords = append(coords, NewCoordinate(row, col))
		}
	}
	return coords
}

func ParseCoordinates(raw []string) ([]Coordinate, error) {
	coords := make([]Coordinate, 0, len(raw))
	for _, r := range raw {
		c, err := ParseCoordinate(r)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}
