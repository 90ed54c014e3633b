// Package info writes the narration sent to players as the game unfolds.
package info

import (
	"fmt"
	"strings"
	"tchu/game"
)

const enDash = " – "

var cardNames = map[game.Card]string{
	game.BlackCard:  "black",
	game.VioletCard: "violet",
	game.BlueCard:   "blue",
	game.GreenCard:  "green",
	game.YellowCard: "yellow",
	game.OrangeCard: "orange",
	game.RedCard:    "red",
	game.WhiteCard:  "white",
}

func plural(n int) string {
	if n == 1 || n == -1 {
		return ""
	}
	return "s"
}

// CardName names count cards of one kind, without the count.
func CardName(card game.Card, count int) string {
	switch card {
	case game.Locomotive:
		return "locomotive" + plural(count)
	case game.Bomb:
		return "bomb" + plural(count)
	}
	return cardNames[card] + " card" + plural(count)
}

// Draw announces a tie between all the named players.
func Draw(names []string, points int) string {
	return fmt.Sprintf("%s are tied with %d point%s each!", joinAnd(names), points, plural(points))
}

func joinAnd(parts []string) string {
	if len(parts) <= 1 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func routeName(r *game.Route) string {
	return r.Station1().Name + enDash + r.Station2().Name
}

func cardsText(cards game.Bag[game.Card]) string {
	var parts []string
	for _, c := range cards.Distinct() {
		n := cards.Count(c)
		parts = append(parts, fmt.Sprintf("%d %s", n, CardName(c, n)))
	}
	return joinAnd(parts)
}

func trailText(t game.Trail) string {
	from, to, ok := t.Stations()
	if !ok {
		return "no trail"
	}
	return from.Name + enDash + to.Name
}

// Info narrates the actions of one player.
type Info struct {
	playerName string
}

func New(playerName string) Info {
	return Info{playerName: playerName}
}

func (i Info) WillPlayFirst() string {
	return fmt.Sprintf("%s will play first.", i.playerName)
}

func (i Info) KeptTickets(count int) string {
	return fmt.Sprintf("%s kept %d ticket%s.", i.playerName, count, plural(count))
}

func (i Info) CanPlay() string {
	return fmt.Sprintf("It is %s's turn.", i.playerName)
}

func (i Info) DrewTickets(count int) string {
	return fmt.Sprintf("%s drew %d ticket%s.", i.playerName, count, plural(count))
}

func (i Info) DrewBlindCard() string {
	return fmt.Sprintf("%s drew a card from the pile.", i.playerName)
}

func (i Info) DrewVisibleCard(card game.Card) string {
	return fmt.Sprintf("%s took a face-up %s.", i.playerName, CardName(card, 1))
}

func (i Info) ClaimedRoute(r *game.Route, cards game.Bag[game.Card]) string {
	return fmt.Sprintf("%s claimed the route %s with %s.", i.playerName, routeName(r), cardsText(cards))
}

func (i Info) AttemptsTunnelClaim(r *game.Route, initialCards game.Bag[game.Card]) string {
	return fmt.Sprintf("%s attempts to claim the tunnel %s with %s!", i.playerName, routeName(r), cardsText(initialCards))
}

func (i Info) DrewAdditionalCards(drawn game.Bag[game.Card], additionalCost int) string {
	text := fmt.Sprintf("The additional cards are %s. ", cardsText(drawn))
	if additionalCost == 0 {
		return text + "They add no cost."
	}
	return text + fmt.Sprintf("They add a cost of %d card%s.", additionalCost, plural(additionalCost))
}

func (i Info) DidNotClaimRoute(r *game.Route) string {
	return fmt.Sprintf("%s did not claim the route %s.", i.playerName, routeName(r))
}

func (i Info) LastTurnBegins(carCount int) string {
	return fmt.Sprintf("%s has only %d car%s left, the last round begins!", i.playerName, carCount, plural(carCount))
}

func (i Info) GetsLongestTrailBonus(t game.Trail) string {
	return fmt.Sprintf("%s receives the longest trail bonus (%s).", i.playerName, trailText(t))
}

func (i Info) Won(points, loserPoints int) string {
	return fmt.Sprintf("%s wins with %d point%s against %d point%s!",
		i.playerName, points, plural(points), loserPoints, plural(loserPoints))
}

func (i Info) DestroyedRoute(r *game.Route) string {
	return fmt.Sprintf("%s destroyed the route %s.", i.playerName, routeName(r))
}
