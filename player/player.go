package player

import "tchu/game"

type TurnKind int

const (
	DrawTickets TurnKind = iota
	DrawCards
	ClaimRoute
	DestroyRoute
)

// TurnKinds lists every kind in wire order.
var TurnKinds = []TurnKind{DrawTickets, DrawCards, ClaimRoute, DestroyRoute}

var turnKindNames = []string{"DRAW_TICKETS", "DRAW_CARDS", "CLAIM_ROUTE", "DESTROY_ROUTE"}

func (k TurnKind) String() string {
	if k < 0 || int(k) >= len(turnKindNames) {
		return "UNKNOWN"
	}
	return turnKindNames[k]
}

// Player is a participant of a game. The engine calls it the same way whether
// it runs locally or behind a connection; errors are transport failures and
// end the game.
type Player interface {
	// InitPlayers tells the player its identity and everyone's names.
	InitPlayers(own game.PlayerID, names map[game.PlayerID]string) error
	// ReceiveInfo delivers one line of narration.
	ReceiveInfo(info string) error
	UpdateState(state game.PublicGameState, own game.PlayerState) error
	SetInitialTicketChoice(tickets game.Bag[*game.Ticket]) error
	ChooseInitialTickets() (game.Bag[*game.Ticket], error)
	NextTurn() (TurnKind, error)
	// ChooseTickets returns the kept subset of options.
	ChooseTickets(options game.Bag[*game.Ticket]) (game.Bag[*game.Ticket], error)
	// DrawSlot returns a face-up slot, or meta.DECK_SLOT for the pile.
	DrawSlot() (int, error)
	ClaimedRoute() (*game.Route, error)
	InitialClaimCards() (game.Bag[game.Card], error)
	// ChooseAdditionalCards picks one of options to pay for a tunnel. An
	// empty bag gives up the claim.
	ChooseAdditionalCards(options []game.Bag[game.Card]) (game.Bag[game.Card], error)
	Name() (string, error)
	DestroyedRoute() (*game.Route, error)
}
