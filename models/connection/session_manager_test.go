package connection

import (
	"errors"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/naval-combat/internal/error"
	mb "github.com/saeidalz13/naval-combat/models/battleship"
)

func TestBattleshipSessionManager_Lifecycle(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	session := bsm.GenerateNewSession(nil)
	assert.NotEmpty(t, session.Id())
	assert.Equal(t, 1, bsm.Count())

	found, err := bsm.FindSession(session.Id())
	require.NoError(t, err)
	assert.Same(t, session, found)

	bsm.TerminateSession(session.Id())
	assert.Equal(t, 0, bsm.Count())

	_, err = bsm.FindSession(session.Id())
	assert.True(t, errors.Is(err, cerr.ErrSessionNotFound))

	err = bsm.ReconnectSession(session.Id(), nil)
	assert.True(t, errors.Is(err, cerr.ErrSessionNotFound))
}

func TestBattleshipSessionManager_CleanupStale(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	bsm.cleanupInterval = time.Millisecond

	stale := bsm.GenerateNewSession(nil)
	stale.createdAt = time.Now().Add(-time.Hour)

	bsm.cleanupStale()
	assert.Equal(t, 0, bsm.Count())
}

func TestBattleshipSessionManager_HandleAbnormalClosure(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		session := bsm.GenerateNewSession(nil)

		err := bsm.HandleAbnormalClosureSession(session)
		assert.True(t, IsConnErrCode(err, ConnLoopBreak))
	})

	t.Run("grace period over", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		bsm.gracePeriod = time.Millisecond * 10
		session := bsm.GenerateNewSession(nil)
		session.SetController("ctrl", &mb.Controller{})

		err := bsm.HandleAbnormalClosureSession(session)
		assert.True(t, IsConnErrCode(err, ConnLoopBreak))
	})

	t.Run("reconnected in time", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		bsm.gracePeriod = time.Second * 5
		session := bsm.GenerateNewSession(nil)
		session.SetController("ctrl", &mb.Controller{})

		go func() {
			for !session.AwaitingReconnect() {
				time.Sleep(time.Millisecond)
			}
			_ = bsm.ReconnectSession(session.Id(), nil)
		}()

		assert.NoError(t, bsm.HandleAbnormalClosureSession(session))
		assert.False(t, session.AwaitingReconnect())
	})

	t.Run("live session refuses reconnect", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		session := bsm.GenerateNewSession(nil)
		session.SetController("ctrl", &mb.Controller{})

		err := bsm.ReconnectSession(session.Id(), nil)
		assert.ErrorIs(t, err, cerr.ErrSessionNotWaiting)
		assert.False(t, session.AwaitingReconnect())
	})

	t.Run("reconnect after grace period is refused", func(t *testing.T) {
		bsm := NewBattleshipSessionManager()
		bsm.gracePeriod = time.Millisecond * 10
		session := bsm.GenerateNewSession(nil)
		session.SetController("ctrl", &mb.Controller{})

		require.Error(t, bsm.HandleAbnormalClosureSession(session))
		assert.ErrorIs(t, bsm.ReconnectSession(session.Id(), nil), cerr.ErrSessionNotWaiting)
	})
}

func TestConnErr(t *testing.T) {
	err := NewConnErr(ConnInvalidMsgType).AddDesc("bad")
	assert.True(t, IsConnErrCode(err, ConnInvalidMsgType))
	assert.False(t, IsConnErrCode(err, ConnLoopBreak))
	assert.False(t, IsConnErrCode(errors.New("plain"), ConnLoopBreak))
	assert.Contains(t, err.Error(), "bad")
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }
func (timeoutErr) Temporary() bool { return true }

func TestSession_HandleReadFromConnErr(t *testing.T) {
	var slept []time.Duration
	retrySleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { retrySleep = time.Sleep })

	session := NewSession("test", nil)

	tests := []struct {
		name         string
		err          error
		retries      uint8
		expectedCode uint8
	}{
		{
			name:         "timeout retried",
			err:          timeoutErr{},
			retries:      1,
			expectedCode: ConnLoopContinue,
		},
		{
			name:         "timeout out of retries",
			err:          timeoutErr{},
			retries:      maxWriteWsRetries,
			expectedCode: ConnLoopBreak,
		},
		{
			name:         "abnormal closure",
			err:          &websocket.CloseError{Code: websocket.CloseAbnormalClosure},
			expectedCode: ConnLoopAbnormalClosureRetry,
		},
		{
			name:         "normal closure",
			err:          &websocket.CloseError{Code: websocket.CloseNormalClosure},
			expectedCode: ConnLoopBreak,
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			expectedCode: ConnLoopBreak,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expectedCode, session.handleReadFromConnErr(test.err, test.retries))
		})
	}

	// only the retried timeout backs off
	assert.Equal(t, []time.Duration{time.Duration(backOffFactor) * time.Second}, slept)
}
