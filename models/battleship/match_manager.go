package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/naval-combat/internal/error"
)

type MatchManager interface {
	CreateMatch() (string, *Controller, error)
	GetMatch(controllerUuid string) (*Controller, error)
	TerminateMatch(controllerUuid string)
	Count() int
}

// BattleshipMatchManager only guards the registry. A controller is
// driven by the single session that created it.
type BattleshipMatchManager struct {
	controllers map[string]*Controller
	opts        []MatchOption
	mu          sync.RWMutex
}

var _ MatchManager = (*BattleshipMatchManager)(nil)

func NewBattleshipMatchManager(opts ...MatchOption) *BattleshipMatchManager {
	return &BattleshipMatchManager{
		controllers: make(map[string]*Controller, 10),
		opts:        opts,
	}
}

func (bmm *BattleshipMatchManager) CreateMatch() (string, *Controller, error) {
	ctrl, err := NewController(bmm.opts...)
	if err != nil {
		return "", nil, err
	}

	controllerUuid := uuid.NewString()[:6]
	bmm.mu.Lock()
	bmm.controllers[controllerUuid] = ctrl
	bmm.mu.Unlock()

	return controllerUuid, ctrl, nil
}

func (bmm *BattleshipMatchManager) GetMatch(controllerUuid string) (*Controller, error) {
	bmm.mu.RLock()
	ctrl, prs := bmm.controllers[controllerUuid]
	bmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotExists(controllerUuid)
	}

	return ctrl, nil
}

func (bmm *BattleshipMatchManager) TerminateMatch(controllerUuid string) {
	bmm.mu.Lock()
	delete(bmm.controllers, controllerUuid)
	bmm.mu.Unlock()
}

func (bmm *BattleshipMatchManager) Count() int {
	bmm.mu.RLock()
	defer bmm.mu.RUnlock()
	return len(bmm.controllers)
}
