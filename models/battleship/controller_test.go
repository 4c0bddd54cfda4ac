package battleship

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Replay(t *testing.T) {
	ctrl, err := NewController(WithMatchRand(rand.New(rand.NewPCG(9, 10))))
	require.NoError(t, err)

	var kinds []EventKind
	ctrl.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	first := ctrl.Current()
	require.NoError(t, first.PlaceHumanShipsRandomly())
	for _, c := range occupiedCells(first.Computer.Gameboard) {
		_, err := first.Attack(c)
		require.NoError(t, err)
	}
	require.Equal(t, StateGameOver, first.State())
	assert.Equal(t, EventGameOver, kinds[len(kinds)-1])
	assert.Equal(t, Stats{Played: 1, HumanWins: 1}, ctrl.Stats())

	second, err := ctrl.Replay()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Same(t, second, ctrl.Current())
	assert.Equal(t, StateSetup, second.State())
	assert.Empty(t, second.Human.PreviousMoves)
	assert.Empty(t, second.Computer.Gameboard.Missed)

	// listeners follow the new match
	kinds = nil
	require.NoError(t, second.PlaceHumanShipsRandomly())
	assert.Equal(t, []EventKind{EventMatchStarted}, kinds)
}

func TestBattleshipMatchManager(t *testing.T) {
	bmm := NewBattleshipMatchManager()

	id, ctrl, err := bmm.CreateMatch()
	require.NoError(t, err)
	assert.Equal(t, 1, bmm.Count())

	found, err := bmm.GetMatch(id)
	require.NoError(t, err)
	assert.Same(t, ctrl, found)

	bmm.TerminateMatch(id)
	assert.Equal(t, 0, bmm.Count())

	_, err = bmm.GetMatch(id)
	assert.Error(t, err)
}
