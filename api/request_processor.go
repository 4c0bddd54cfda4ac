package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/naval-combat/db/sqlc"
	mb "github.com/saeidalz13/naval-combat/models/battleship"
	mc "github.com/saeidalz13/naval-combat/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a full snapshot is the largest message and fits comfortably
		ReadBufferSize:  2048,
		WriteBufferSize: 8192,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	matchManager   mb.MatchManager
	analytics      *sqlc.AnalyticsManager
}

// A nil querier runs the processor without analytics.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	matchManager mb.MatchManager,
	q sqlc.Querier,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		matchManager:   matchManager,
		analytics:      sqlc.NewDbManager(q, ServerIpNet()).Analytics,
	}
}

func (rp RequestProcessor) Analytics() *sqlc.AnalyticsManager {
	return rp.analytics
}

// ServerIpNet returns the first non-loopback IPv4 address of the host,
// or the loopback address when there is none.
func ServerIpNet() net.IPNet {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Warn().Err(err).Msg("failed to list network interfaces")
		return loopbackIpNet()
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return net.IPNet{IP: ip4, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	log.Warn().Msg("no external ipv4 address found; using loopback for analytics")
	return loopbackIpNet()
}

func loopbackIpNet() net.IPNet {
	return net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("could not upgrade to websocket")
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Info().Str("remote", conn.RemoteAddr().String()).Msg("a new connection established")
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		// The original session goroutine picks the new conn up. Only a
		// session in its grace period accepts one.
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			_ = conn.WriteJSON(mc.NewErrorMessage(mc.CodeReceivedInvalidSessionID, err, "session cannot be resumed"))
			conn.Close()
		}
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if session.ControllerUuid() != "" {
			rp.matchManager.TerminateMatch(session.ControllerUuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Info().Str("session", sessionId).Msg("session terminated")
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Retries are already exhausted at this point
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		req := NewRequest(payload)
		ctrl := session.Controller()

		switch signal.Code {

		// Starting over with a new controller drops the previous one
		case mc.CodeCreateMatch:
			if session.ControllerUuid() != "" {
				rp.matchManager.TerminateMatch(session.ControllerUuid())
			}

			controllerUuid, newCtrl, respMsg := req.HandleCreateMatch(rp.matchManager)
			if newCtrl != nil {
				session.SetController(controllerUuid, newCtrl)
				newCtrl.Subscribe(rp.eventForwarder(session))
				rp.recordAnalytics(sessionId, rp.analytics.IncrementMatchesCreatedCount)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			respMsg := req.HandlePlaceShip(ctrl)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}
			if err := rp.notifyStart(session, ctrl); err != nil {
				break sessionLoop
			}

		case mc.CodeRandomPlacement:
			respMsg := req.HandleRandomPlacement(ctrl)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}
			if err := rp.notifyStart(session, ctrl); err != nil {
				break sessionLoop
			}

		// One human shot and the computer's answer. Events for both
		// have been pushed by the time the response goes out.
		case mc.CodeAttack:
			respMsg := req.HandleAttack(ctrl)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			match := ctrl.Current()
			if match.State() == mb.StateGameOver {
				rp.recordAnalytics(sessionId, func(ctx context.Context) error {
					return rp.analytics.IncrementWinsCount(ctx, match.Winner() == mb.SideHuman)
				})

				respEnd := mc.NewMessage[mc.RespEndMatch](mc.CodeEndMatch)
				respEnd.AddPayload(mc.RespEndMatch{Winner: match.Winner(), Stats: ctrl.Stats()})
				if err := rp.sessionManager.WriteToSessionConn(session, respEnd, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeReplay:
			respMsg := req.HandleReplay(ctrl, session.ControllerUuid())
			if respMsg.Error == nil {
				rp.recordAnalytics(sessionId, rp.analytics.IncrementReplaysCalledCount)
			}
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeSnapshot:
			respMsg := req.HandleSnapshot(ctrl)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeStats:
			respMsg := mc.NewMessage[mb.Stats](mc.CodeStats)
			if ctrl != nil {
				respMsg.AddPayload(ctrl.Stats())
			}
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

// Pushes every engine event to the renderer. Write failures are only
// logged here; the read loop notices a dead connection on its own.
func (rp RequestProcessor) eventForwarder(session *mc.Session) mb.Listener {
	return func(e mb.Event) {
		msg := mc.NewMessage[mb.Event](mc.CodeEvent)
		msg.AddPayload(e)
		if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
			log.Warn().Err(err).Str("session", session.Id()).Str("event", e.Kind.String()).Msg("failed to push event")
		}
	}
}

func (rp RequestProcessor) notifyStart(session *mc.Session, ctrl *mb.Controller) error {
	// placement succeeded, so InProgress means the last ship just went down
	if ctrl.Current().State() != mb.StateInProgress {
		return nil
	}
	return rp.sessionManager.WriteToSessionConn(session, mc.NewMessage[mc.NoPayload](mc.CodeStartMatch), mc.MessageTypeJSON)
}

// Analytics must never kill a session; failures are logged only.
func (rp RequestProcessor) recordAnalytics(sessionId string, record func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := record(ctx); err != nil {
		log.Error().Err(err).Str("session", sessionId).Msg("failed to record analytics")
	}
}
