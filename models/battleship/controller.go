package battleship

type Stats struct {
	Played       int `json:"played"`
	HumanWins    int `json:"human_wins"`
	ComputerWins int `json:"computer_wins"`
}

// Controller owns the current match. Replay swaps in a brand new
// match; nothing from the old one is reused.
type Controller struct {
	current   *Match
	opts      []MatchOption
	listeners listeners
	stats     Stats
}

func NewController(opts ...MatchOption) (*Controller, error) {
	ctrl := &Controller{opts: opts}
	if _, err := ctrl.Replay(); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func (ctrl *Controller) Current() *Match {
	return ctrl.current
}

// Subscribe attaches l to the current match and every replayed one.
func (ctrl *Controller) Subscribe(l Listener) {
	ctrl.listeners = append(ctrl.listeners, l)
	if ctrl.current != nil {
		ctrl.current.Subscribe(l)
	}
}

func (ctrl *Controller) Replay() (*Match, error) {
	m, err := NewMatch(ctrl.opts...)
	if err != nil {
		return nil, err
	}

	m.Subscribe(ctrl.record)
	for _, l := range ctrl.listeners {
		m.Subscribe(l)
	}

	ctrl.current = m
	return m, nil
}

func (ctrl *Controller) Stats() Stats {
	return ctrl.stats
}

func (ctrl *Controller) record(e Event) {
	if e.Kind != EventGameOver {
		return
	}

	ctrl.stats.Played++
	switch e.Winner {
	case SideHuman:
		ctrl.stats.HumanWins++
	case SideComputer:
		ctrl.stats.ComputerWins++
	}
}
