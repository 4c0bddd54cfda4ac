package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateMatch

	// Human places one ship or lets the server place the rest
	CodePlaceShip
	CodeRandomPlacement

	// Sent once the fifth human ship is down
	CodeStartMatch
	CodeAttack

	// Engine events pushed to the renderer as they happen
	CodeEvent
	CodeEndMatch

	// Discards the current match and starts a fresh one
	CodeReplay
	CodeSnapshot
	CodeStats
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
