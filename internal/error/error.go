package error

import (
	"errors"
	"fmt"
)

var (
	ErrShipLengthMismatch    = errors.New("number of coordinates does not match ship length")
	ErrCoordinateOutOfBounds = errors.New("coordinate is out of board bounds")
	ErrCoordinateOccupied    = errors.New("coordinate is already occupied by another ship")
	ErrInvalidCoordinate     = errors.New("invalid coordinate format")
	ErrPlacementExhausted    = errors.New("could not find a non-overlapping placement")
	ErrDuplicateMove         = errors.New("coordinate already attacked by this player")
	ErrNoMovesLeft           = errors.New("no coordinates left to attack")

	ErrMatchNotInSetup      = errors.New("match is not in setup state")
	ErrMatchNotInProgress   = errors.New("match is not in progress")
	ErrShipAlreadyPlaced    = errors.New("ship of this length is already placed")
	ErrUnknownShipLength    = errors.New("no ship of this length in the fleet")
	ErrMatchNotFound        = errors.New("match does not exist")
	ErrSessionNotFound      = errors.New("session does not exist")
	ErrSessionNotWaiting    = errors.New("session is not waiting for a reconnect")
	ErrMatchNotCreated      = errors.New("no match created for this session")
	ErrMissingConfiguration = errors.New("missing required configuration")
)

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrCoordinateOutOfBounds, row, col)
}

func ErrPositionAlreadyTaken(coordinate string) error {
	return fmt.Errorf("%w: %s", ErrCoordinateOccupied, coordinate)
}

func ErrParseCoordinate(raw string) error {
	return fmt.Errorf("%w: %q", ErrInvalidCoordinate, raw)
}

func ErrLengthMismatch(shipLength, coords int) error {
	return fmt.Errorf("%w\tship length: %d\tcoordinates: %d", ErrShipLengthMismatch, shipLength, coords)
}

func ErrAlreadyAttacked(coordinate string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateMove, coordinate)
}

func ErrPlacementAttempts(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, attempts)
}

func ErrFleetShip(length int) error {
	return fmt.Errorf("%w: %d", ErrUnknownShipLength, length)
}

func ErrShipPlaced(length int) error {
	return fmt.Errorf("%w: %d", ErrShipAlreadyPlaced, length)
}

func ErrMatchNotExists(matchUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrMatchNotFound, matchUuid)
}

func ErrSessionNotExists(sessionId string) error {
	return fmt.Errorf("%w, id: %s", ErrSessionNotFound, sessionId)
}

func ErrEnvNotSet(key string) error {
	return fmt.Errorf("%w: %s", ErrMissingConfiguration, key)
}

func ErrSessionLive(sessionId string) error {
	return fmt.Errorf("%w, id: %s", ErrSessionNotWaiting, sessionId)
}
