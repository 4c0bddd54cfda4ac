package connection

import (
	mb "github.com/saeidalz13/naval-combat/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateMatch struct {
	MatchUuid       string `json:"match_uuid"`
	ControllerUuid  string `json:"controller_uuid"`
	UnplacedLengths []int  `json:"unplaced_lengths"`
}

type RespPlaceShip struct {
	Length          int   `json:"length"`
	UnplacedLengths []int `json:"unplaced_lengths"`
}

type RespAttack struct {
	Human    mb.AttackResult  `json:"human"`
	Computer *mb.AttackResult `json:"computer,omitempty"`
}

type RespEndMatch struct {
	Winner mb.Side  `json:"winner"`
	Stats  mb.Stats `json:"stats"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
