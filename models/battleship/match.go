package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/naval-combat/internal/error"
)

const (
	HumanName    = "human"
	ComputerName = "computer"
)

type MatchState uint8

const (
	StateSetup MatchState = iota
	StateInProgress
	StateGameOver
)

func (s MatchState) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateInProgress:
		return "in_progress"
	default:
		return "game_over"
	}
}

type Side uint8

const (
	SideNone Side = iota
	SideHuman
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SideHuman:
		return HumanName
	case SideComputer:
		return ComputerName
	default:
		return "none"
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TurnResult is one turn exchange. Computer is nil when the human
// attack already ended the match.
type TurnResult struct {
	Human    AttackResult  `json:"human"`
	Computer *AttackResult `json:"computer,omitempty"`
	Winner   Side          `json:"winner"`
}

type Match struct {
	ID       string
	Human    *Player
	Computer *Player

	state     MatchState
	winner    Side
	humanShip map[int]*Ship
	placed    map[int]bool
	listeners listeners
}

type MatchOption func(*matchConfig)

type matchConfig struct {
	rnd Randomizer
}

func WithMatchRand(rnd Randomizer) MatchOption {
	return func(mc *matchConfig) {
		mc.rnd = rnd
	}
}

// NewMatch builds both sides and seeds the computer fleet. The human
// fleet is waiting to be placed.
func NewMatch(opts ...MatchOption) (*Match, error) {
	cfg := matchConfig{rnd: globalRand{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	humanBoard := NewGameboard(HumanName, WithRand(cfg.rnd))
	computerBoard := NewGameboard(ComputerName, WithRand(cfg.rnd))

	if err := computerBoard.PlaceComputerShips(NewFleet()...); err != nil {
		return nil, err
	}

	m := &Match{
		ID:        uuid.NewString()[:6],
		Human:     NewPlayer(HumanName, humanBoard, cfg.rnd),
		Computer:  NewPlayer(ComputerName, computerBoard, cfg.rnd),
		state:     StateSetup,
		humanShip: make(map[int]*Ship, len(FleetLengths)),
		placed:    make(map[int]bool, len(FleetLengths)),
	}
	for _, ship := range NewFleet() {
		m.humanShip[ship.Length] = ship
	}

	humanBoard.Subscribe(m.emit)
	computerBoard.Subscribe(m.emit)
	return m, nil
}

func (m *Match) emit(e Event) {
	m.listeners.emit(e)
}

func (m *Match) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Match) State() MatchState {
	return m.state
}

func (m *Match) Winner() Side {
	return m.winner
}

func (m *Match) PlaceHumanShip(length int, coords []Coordinate) error {
	if m.state != StateSetup {
		return cerr.ErrMatchNotInSetup
	}

	ship, prs := m.humanShip[length]
	if !prs {
		return cerr.ErrFleetShip(length)
	}
	if m.placed[length] {
		return cerr.ErrShipPlaced(length)
	}

	if err := m.Human.Gameboard.PlaceShip(ship, coords); err != nil {
		return err
	}
	m.placed[length] = true

	m.startIfReady()
	return nil
}

// Places whatever part of the human fleet is still in the dock.
func (m *Match) PlaceHumanShipsRandomly() error {
	if m.state != StateSetup {
		return cerr.ErrMatchNotInSetup
	}

	remaining := make([]*Ship, 0, len(FleetLengths))
	for _, length := range FleetLengths {
		if !m.placed[length] {
			remaining = append(remaining, m.humanShip[length])
		}
	}

	if err := m.Human.Gameboard.PlaceComputerShips(remaining...); err != nil {
		return err
	}
	for _, ship := range remaining {
		m.placed[ship.Length] = true
	}

	m.startIfReady()
	return nil
}

func (m *Match) UnplacedLengths() []int {
	lengths := make([]int, 0, len(FleetLengths))
	for _, length := range FleetLengths {
		if !m.placed[length] {
			lengths = append(lengths, length)
		}
	}
	return lengths
}

func (m *Match) startIfReady() {
	if len(m.placed) != len(FleetLengths) {
		return
	}
	m.state = StateInProgress
	m.emit(Event{Kind: EventMatchStarted})
}

// Attack runs one turn exchange: the human fires at the computer board
// and, unless that ends the match, the computer fires back in the same call.
func (m *Match) Attack(c Coordinate) (TurnResult, error) {
	if m.state != StateInProgress {
		return TurnResult{}, cerr.ErrMatchNotInProgress
	}

	humanResult, err := m.Human.HumanMove(m.Computer.Gameboard, c)
	if err != nil {
		return TurnResult{}, err
	}

	turn := TurnResult{Human: humanResult}
	if m.Computer.Gameboard.GameOver() {
		m.finish(SideHuman)
		turn.Winner = SideHuman
		return turn, nil
	}

	_, computerResult, err := m.Computer.ComputerMove(m.Human.Gameboard)
	if err != nil {
		return TurnResult{}, err
	}
	turn.Computer = &computerResult

	if m.Human.Gameboard.GameOver() {
		m.finish(SideComputer)
		turn.Winner = SideComputer
	}
	return turn, nil
}

func (m *Match) finish(winner Side) {
	m.state = StateGameOver
	m.winner = winner
	m.emit(Event{Kind: EventGameOver, Winner: winner})
}
