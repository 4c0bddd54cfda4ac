package connection

type ReqPlaceShip struct {
	Length      int      `json:"length"`
	Coordinates []string `json:"coordinates"`
}

type ReqAttack struct {
	Coordinate string `json:"coordinate"`
}
