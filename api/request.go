package api

import (
	"encoding/json"

	cerr "github.com/saeidalz13/naval-combat/internal/error"
	mb "github.com/saeidalz13/naval-combat/models/battleship"
	mc "github.com/saeidalz13/naval-combat/models/connection"
)

type RequestHandler interface {
	HandleCreateMatch(matchManager mb.MatchManager) (string, *mb.Controller, mc.Message[mc.RespCreateMatch])
	HandlePlaceShip(ctrl *mb.Controller) mc.Message[mc.RespPlaceShip]
	HandleRandomPlacement(ctrl *mb.Controller) mc.Message[mc.RespPlaceShip]
	HandleAttack(ctrl *mb.Controller) mc.Message[mc.RespAttack]
	HandleReplay(ctrl *mb.Controller, controllerUuid string) mc.Message[mc.RespCreateMatch]
	HandleSnapshot(ctrl *mb.Controller) mc.Message[mb.MatchSnapshot]
}

// Every incoming valid request will have this structure.
// Handlers never fail the session; problems travel back in Message.Error.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

func (r Request) HandleCreateMatch(matchManager mb.MatchManager) (string, *mb.Controller, mc.Message[mc.RespCreateMatch]) {
	resp := mc.NewMessage[mc.RespCreateMatch](mc.CodeCreateMatch)

	controllerUuid, ctrl, err := matchManager.CreateMatch()
	if err != nil {
		resp.AddError(err.Error(), "failed to create match")
		return "", nil, resp
	}

	resp.AddPayload(mc.RespCreateMatch{
		MatchUuid:       ctrl.Current().ID,
		ControllerUuid:  controllerUuid,
		UnplacedLengths: ctrl.Current().UnplacedLengths(),
	})
	return controllerUuid, ctrl, resp
}

func (r Request) HandlePlaceShip(ctrl *mb.Controller) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)
	if ctrl == nil {
		resp.AddError(cerr.ErrMatchNotCreated.Error(), "create a match first")
		return resp
	}

	var req mc.Message[mc.ReqPlaceShip]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid place ship payload")
		return resp
	}

	coords, err := mb.ParseCoordinates(req.Payload.Coordinates)
	if err != nil {
		resp.AddError(err.Error(), "invalid coordinates")
		return resp
	}

	match := ctrl.Current()
	if err := match.PlaceHumanShip(req.Payload.Length, coords); err != nil {
		resp.AddError(err.Error(), "ship could not be placed")
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{Length: req.Payload.Length, UnplacedLengths: match.UnplacedLengths()})
	return resp
}

func (r Request) HandleRandomPlacement(ctrl *mb.Controller) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodeRandomPlacement)
	if ctrl == nil {
		resp.AddError(cerr.ErrMatchNotCreated.Error(), "create a match first")
		return resp
	}

	match := ctrl.Current()
	if err := match.PlaceHumanShipsRandomly(); err != nil {
		resp.AddError(err.Error(), "ships could not be placed")
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{UnplacedLengths: match.UnplacedLengths()})
	return resp
}

func (r Request) HandleAttack(ctrl *mb.Controller) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)
	if ctrl == nil {
		resp.AddError(cerr.ErrMatchNotCreated.Error(), "create a match first")
		return resp
	}

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid attack payload")
		return resp
	}

	c, err := mb.ParseCoordinate(req.Payload.Coordinate)
	if err != nil {
		resp.AddError(err.Error(), "invalid coordinate")
		return resp
	}

	turn, err := ctrl.Current().Attack(c)
	if err != nil {
		resp.AddError(err.Error(), "attack failed")
		return resp
	}

	resp.AddPayload(mc.RespAttack{Human: turn.Human, Computer: turn.Computer})
	return resp
}

// The controller survives a replay, so its uuid is echoed back.
func (r Request) HandleReplay(ctrl *mb.Controller, controllerUuid string) mc.Message[mc.RespCreateMatch] {
	resp := mc.NewMessage[mc.RespCreateMatch](mc.CodeReplay)
	if ctrl == nil {
		resp.AddError(cerr.ErrMatchNotCreated.Error(), "create a match first")
		return resp
	}

	match, err := ctrl.Replay()
	if err != nil {
		resp.AddError(err.Error(), "failed to start a new match")
		return resp
	}

	resp.AddPayload(mc.RespCreateMatch{
		MatchUuid:       match.ID,
		ControllerUuid:  controllerUuid,
		UnplacedLengths: match.UnplacedLengths(),
	})
	return resp
}

func (r Request) HandleSnapshot(ctrl *mb.Controller) mc.Message[mb.MatchSnapshot] {
	resp := mc.NewMessage[mb.MatchSnapshot](mc.CodeSnapshot)
	if ctrl == nil {
		resp.AddError(cerr.ErrMatchNotCreated.Error(), "create a match first")
		return resp
	}

	resp.AddPayload(ctrl.Current().Snapshot())
	return resp
}
