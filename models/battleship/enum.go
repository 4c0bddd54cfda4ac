package battleship

import "fmt"

type textEnum interface {
	~uint8
	String() string
}

// Renderers send enums back by name; anything else is rejected.
func unmarshalEnum[T textEnum](text []byte, dst *T, values ...T) error {
	for _, v := range values {
		if v.String() == string(text) {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("unknown %T value %q", *dst, text)
}

func (s *CellState) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, s, CellEmpty, CellOccupied, CellHit, CellMiss)
}

func (k *EventKind) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, k, EventAttackResolved, EventShipSunk, EventMatchStarted, EventGameOver)
}

func (o *Outcome) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, o, OutcomeNone, OutcomeMiss, OutcomeHit)
}

func (s *Side) UnmarshalText(text []byte) error {
	return unmarshalEnum(text, s, SideNone, SideHuman, SideComputer)
}
