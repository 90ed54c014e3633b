package game

type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

var PlayerIDs = []PlayerID{Player1, Player2}

func (id PlayerID) Next() PlayerID {
	if id == Player1 {
		return Player2
	}
	return Player1
}

func (id PlayerID) String() string {
	if id == Player1 {
		return "PLAYER_1"
	}
	return "PLAYER_2"
}
