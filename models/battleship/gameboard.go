package battleship

import (
	cerr "github.com/saeidalz13/naval-combat/internal/error"
)

// Upper bound for whole-fleet placement batches. With the standard
// fleet a batch survives often enough that the cap is never reached.
const maxPlacementAttempts = 1000

type AttackResult struct {
	Coordinate Coordinate `json:"coordinate"`
	Outcome    Outcome    `json:"outcome"`
	ShipID     string     `json:"ship_id,omitempty"`
	Sunk       bool       `json:"sunk"`

	// Repeated is true when the cell had already been resolved
	// and the attack changed nothing.
	Repeated bool `json:"repeated"`
}

type Gameboard struct {
	Owner       string
	Coordinates map[Coordinate]Cell
	Missed      []Coordinate
	Ships       []*Ship

	shipsById map[string]*Ship
	rnd       Randomizer
	listeners listeners
}

type BoardOption func(*Gameboard)

func WithRand(rnd Randomizer) BoardOption {
	return func(gb *Gameboard) {
		gb.rnd = rnd
	}
}

func NewGameboard(owner string, opts ...BoardOption) *Gameboard {
	gb := &Gameboard{
		Owner: owner,
		rnd:   globalRand{},
	}
	for _, opt := range opts {
		opt(gb)
	}

	gb.InitializeCoordinates()
	return gb
}

// Resets the board to 100 empty cells with no ships and no misses.
func (gb *Gameboard) InitializeCoordinates() {
	gb.Coordinates = make(map[Coordinate]Cell, BoardSize*BoardSize)
	for _, c := range AllCoordinates() {
		gb.Coordinates[c] = Cell{State: CellEmpty}
	}
	gb.Missed = make([]Coordinate, 0)
	gb.Ships = make([]*Ship, 0, len(FleetLengths))
	gb.shipsById = make(map[string]*Ship, len(FleetLengths))
}

func (gb *Gameboard) Subscribe(l Listener) {
	gb.listeners = append(gb.listeners, l)
}

// PlaceShip validates everything before writing, so a failed
// placement leaves the board untouched.
func (gb *Gameboard) PlaceShip(ship *Ship, coords []Coordinate) error {
	if len(coords) != ship.Length {
		return cerr.ErrLengthMismatch(ship.Length, len(coords))
	}

	seen := make(map[Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if !c.InBounds() {
			return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
		}
		if _, dup := seen[c]; dup || !gb.Coordinates[c].IsEmpty() {
			return cerr.ErrPositionAlreadyTaken(c.String())
		}
		seen[c] = struct{}{}
	}

	gb.Ships = append(gb.Ships, ship)
	gb.shipsById[ship.ID] = ship
	for _, c := range coords {
		gb.Coordinates[c] = Cell{State: CellOccupied, ShipID: ship.ID}
	}
	return nil
}

func (gb *Gameboard) ReceiveAttack(c Coordinate) (AttackResult, error) {
	if !c.InBounds() {
		return AttackResult{}, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}

	result := AttackResult{Coordinate: c}
	cell := gb.Coordinates[c]

	switch cell.State {
	case CellMiss:
		result.Outcome = OutcomeMiss
		result.Repeated = true
		return result, nil

	case CellHit:
		ship, _ := gb.FindShip(cell.ShipID)
		result.Outcome = OutcomeHit
		result.ShipID = cell.ShipID
		result.Sunk = ship.IsSunk()
		result.Repeated = true
		return result, nil

	case CellOccupied:
		ship, _ := gb.FindShip(cell.ShipID)
		wasSunk := ship.IsSunk()
		ship.Hit()
		gb.Coordinates[c] = Cell{State: CellHit, ShipID: ship.ID}

		result.Outcome = OutcomeHit
		result.ShipID = ship.ID
		result.Sunk = ship.IsSunk()

		gb.listeners.emit(Event{Kind: EventAttackResolved, Board: gb.Owner, Coordinate: &c, Outcome: OutcomeHit, ShipID: ship.ID})
		if !wasSunk && ship.IsSunk() {
			gb.listeners.emit(Event{Kind: EventShipSunk, Board: gb.Owner, Coordinate: &c, Outcome: OutcomeHit, ShipID: ship.ID})
		}
		return result, nil

	default:
		gb.Coordinates[c] = Cell{State: CellMiss}
		gb.Missed = append(gb.Missed, c)

		result.Outcome = OutcomeMiss
		gb.listeners.emit(Event{Kind: EventAttackResolved, Board: gb.Owner, Coordinate: &c, Outcome: OutcomeMiss})
		return result, nil
	}
}

// GenerateRandomCoordinates returns n contiguous in-bounds coordinates,
// horizontal or vertical with equal probability.
func (gb *Gameboard) GenerateRandomCoordinates(n int) []Coordinate {
	if n < 1 || n > BoardSize {
		return nil
	}

	coords := make([]Coordinate, 0, n)
	horizontal := gb.rnd.IntN(2) == 0

	if horizontal {
		startingRow := gb.rnd.IntN(BoardSize)
		startingColumn := gb.rnd.IntN(BoardSize - n + 1)
		for i := 0; i < n; i++ {
			coords = append(coords, NewCoordinate(startingRow, startingColumn+i))
		}
		return coords
	}

	startingRow := gb.rnd.IntN(BoardSize - n + 1)
	startingColumn := gb.rnd.IntN(BoardSize)
	for i := 0; i < n; i++ {
		coords = append(coords, NewCoordinate(startingRow+i, startingColumn))
	}
	return coords
}

// PlaceComputerShips draws one candidate per ship and throws the whole
// batch away on any collision, either within the batch or with ships
// already on the board.
func (gb *Gameboard) PlaceComputerShips(ships ...*Ship) error {
	for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
		candidates := make([][]Coordinate, len(ships))
		taken := make(map[Coordinate]struct{}, 15)
		collided := false

	batchLoop:
		for i, ship := range ships {
			candidates[i] = gb.GenerateRandomCoordinates(ship.Length)
			for _, c := range candidates[i] {
				if _, dup := taken[c]; dup || !gb.Coordinates[c].IsEmpty() {
					collided = true
					break batchLoop
				}
				taken[c] = struct{}{}
			}
		}
		if collided {
			continue
		}

		for i, ship := range ships {
			if err := gb.PlaceShip(ship, candidates[i]); err != nil {
				return err
			}
		}
		return nil
	}

	return cerr.ErrPlacementAttempts(maxPlacementAttempts)
}

// GameOver reports whether every ship on the board is sunk. A board
// without ships is not over, unlike the vacuous "all sunk" reading;
// a match never starts before both fleets are placed.
func (gb *Gameboard) GameOver() bool {
	if len(gb.Ships) == 0 {
		return false
	}
	for _, ship := range gb.Ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (gb *Gameboard) OccupiedCount() int {
	count := 0
	for _, cell := range gb.Coordinates {
		if !cell.IsEmpty() && cell.State != CellMiss {
			count++
		}
	}
	return count
}

func (gb *Gameboard) SunkCount() int {
	count := 0
	for _, ship := range gb.Ships {
		if ship.IsSunk() {
			count++
		}
	}
	return count
}

func (gb *Gameboard) FindShip(shipId string) (*Ship, bool) {
	ship, prs := gb.shipsById[shipId]
	return ship, prs
}
