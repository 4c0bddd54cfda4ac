package battleship

import (
	cerr "github.com/saeidalz13/naval-combat/internal/error"
)

type Player struct {
	Name          string
	Gameboard     *Gameboard
	PreviousMoves []Coordinate

	attempted map[Coordinate]struct{}
	// Coordinates not attempted yet. Order is irrelevant, entries
	// are swap-removed as they get used.
	available []Coordinate
	rnd       Randomizer
}

func NewPlayer(name string, gameboard *Gameboard, rnd Randomizer) *Player {
	if rnd == nil {
		rnd = globalRand{}
	}

	available := AllCoordinates()
	return &Player{
		Name:          name,
		Gameboard:     gameboard,
		PreviousMoves: make([]Coordinate, 0, len(available)),
		attempted:     make(map[Coordinate]struct{}, len(available)),
		available:     available,
		rnd:           rnd,
	}
}

func (p *Player) HasAttempted(c Coordinate) bool {
	_, prs := p.attempted[c]
	return prs
}

// HumanMove attacks enemy at c unless c was already tried, in which
// case nothing is attacked and ErrDuplicateMove is returned.
func (p *Player) HumanMove(enemy *Gameboard, c Coordinate) (AttackResult, error) {
	if p.HasAttempted(c) {
		return AttackResult{}, cerr.ErrAlreadyAttacked(c.String())
	}

	result, err := enemy.ReceiveAttack(c)
	if err != nil {
		return AttackResult{}, err
	}

	p.record(c)
	return result, nil
}

// ComputerMove picks uniformly among the coordinates this player has
// not tried yet, so no draw is ever wasted on a repeat.
func (p *Player) ComputerMove(enemy *Gameboard) (Coordinate, AttackResult, error) {
	if len(p.available) == 0 {
		return Coordinate{}, AttackResult{}, cerr.ErrNoMovesLeft
	}

	c := p.available[p.rnd.IntN(len(p.available))]
	result, err := enemy.ReceiveAttack(c)
	if err != nil {
		return Coordinate{}, AttackResult{}, err
	}

	p.record(c)
	return c, result, nil
}

func (p *Player) MovesLeft() int {
	return len(p.available)
}

func (p *Player) record(c Coordinate) {
	p.attempted[c] = struct{}{}
	p.PreviousMoves = append(p.PreviousMoves, c)

	for i, a := range p.available {
		if a == c {
			last := len(p.available) - 1
			p.available[i] = p.available[last]
			p.available = p.available[:last]
			return
		}
	}
}
