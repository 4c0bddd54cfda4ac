package battleship

type ShipView struct {
	ID     string `json:"id"`
	Length int    `json:"length"`
	Hits   int    `json:"hits"`
	Sunk   bool   `json:"sunk"`
}

type BoardView struct {
	Owner  string              `json:"owner"`
	Cells  map[Coordinate]Cell `json:"cells"`
	Missed []Coordinate        `json:"missed"`
	Ships  []ShipView          `json:"ships"`
}

type MatchSnapshot struct {
	ID              string    `json:"id"`
	State           string    `json:"state"`
	Winner          Side      `json:"winner"`
	UnplacedLengths []int     `json:"unplaced_lengths"`
	Human           BoardView `json:"human"`
	Computer        BoardView `json:"computer"`
}

// View copies the board state. With hideShips, cells that hold an
// untouched ship read as empty, which is what the opponent may see.
func (gb *Gameboard) View(hideShips bool) BoardView {
	view := BoardView{
		Owner:  gb.Owner,
		Cells:  make(map[Coordinate]Cell, len(gb.Coordinates)),
		Missed: append([]Coordinate(nil), gb.Missed...),
		Ships:  make([]ShipView, 0, len(gb.Ships)),
	}

	for c, cell := range gb.Coordinates {
		if hideShips && cell.State == CellOccupied {
			cell = Cell{State: CellEmpty}
		}
		view.Cells[c] = cell
	}

	for _, ship := range gb.Ships {
		view.Ships = append(view.Ships, ShipView{
			ID:     ship.ID,
			Length: ship.Length,
			Hits:   ship.Hits(),
			Sunk:   ship.IsSunk(),
		})
	}
	return view
}

func (m *Match) Snapshot() MatchSnapshot {
	return MatchSnapshot{
		ID:              m.ID,
		State:           m.state.String(),
		Winner:          m.winner,
		UnplacedLengths: m.UnplacedLengths(),
		Human:           m.Human.Gameboard.View(false),
		Computer:        m.Computer.Gameboard.View(true),
	}
}
