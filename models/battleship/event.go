package battleship

type EventKind uint8

const (
	EventAttackResolved EventKind = iota
	EventShipSunk
	EventMatchStarted
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventAttackResolved:
		return "attack_resolved"
	case EventShipSunk:
		return "ship_sunk"
	case EventMatchStarted:
		return "match_started"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeMiss
	OutcomeHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	default:
		return "none"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Event is emitted by boards and matches after a state change.
// Board is the owner name of the board that changed.
type Event struct {
	Kind       EventKind   `json:"kind"`
	Board      string      `json:"board,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Outcome    Outcome     `json:"outcome"`
	ShipID     string      `json:"ship_id,omitempty"`
	Winner     Side        `json:"winner"`
}

// Listeners run synchronously on the goroutine that mutated the board.
type Listener func(Event)

type listeners []Listener

func (ls listeners) emit(e Event) {
	for _, l := range ls {
		l(e)
	}
}
