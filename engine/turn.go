package engine

import (
	"slices"

	"tchu/game"
	"tchu/meta"
	"tchu/player"
)

func (e *Engine) playTurn(id game.PlayerID) error {
	p := e.players[id]
	kind, err := p.NextTurn()
	if err != nil {
		return e.playerError(id, "next turn", err)
	}
	e.collector.AddTurn(kind)
	e.logger.Debug().Str("player", e.names[id]).Int("turn", e.turns).Stringer("kind", kind).
		Int("cars", e.state.CurrentPublicPlayerState().CarCount()).
		Int("table_cards", e.state.CardState().TotalSize()).
		Msg("turn")

	switch kind {
	case player.DrawTickets:
		return e.drawTickets(id)
	case player.DrawCards:
		return e.drawCards(id)
	case player.ClaimRoute:
		return e.claimRoute(id)
	case player.DestroyRoute:
		return e.destroyRoute(id)
	}
	return e.illegal(id, "unknown turn kind %d", kind)
}

func (e *Engine) drawTickets(id game.PlayerID) error {
	if !e.state.CanDrawTickets() {
		return e.illegal(id, "no tickets left to draw")
	}
	count := min(meta.IN_GAME_TICKETS_COUNT, e.state.TicketsCount())
	drawn, err := e.state.TopTickets(count)
	if err != nil {
		return err
	}
	if err := e.broadcastInfo(e.infos[id].DrewTickets(count)); err != nil {
		return err
	}
	chosen, err := e.players[id].ChooseTickets(drawn)
	if err != nil {
		return e.playerError(id, "choose tickets", err)
	}
	next, err := e.state.WithChosenAdditionalTickets(drawn, chosen)
	if err != nil {
		return e.illegal(id, "%v", err)
	}
	e.state = next
	return e.broadcastInfo(e.infos[id].KeptTickets(chosen.Size()))
}

func (e *Engine) drawCards(id game.PlayerID) error {
	if !e.state.CanDrawCards() {
		return e.illegal(id, "not enough cards left to draw")
	}
	for i := 0; i < meta.DRAWN_CARDS_PER_TURN; i++ {
		if i > 0 {
			if err := e.broadcastState(); err != nil {
				return err
			}
		}
		e.state = e.state.WithCardsDeckRecreatedIfNeeded(e.rng)
		slot, err := e.players[id].DrawSlot()
		if err != nil {
			return e.playerError(id, "draw slot", err)
		}

		var msg string
		if slot == meta.DECK_SLOT {
			next, err := e.state.WithBlindlyDrawnCard()
			if err != nil {
				return e.illegal(id, "%v", err)
			}
			e.state, msg = next, e.infos[id].DrewBlindCard()
		} else {
			card, err := e.state.CardState().FaceUpCard(slot)
			if err != nil {
				return e.illegal(id, "%v", err)
			}
			next, err := e.state.WithDrawnFaceUpCard(slot)
			if err != nil {
				return e.illegal(id, "%v", err)
			}
			e.state, msg = next, e.infos[id].DrewVisibleCard(card)
		}
		if err := e.broadcastInfo(msg); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) claimRoute(id game.PlayerID) error {
	p := e.players[id]
	route, err := p.ClaimedRoute()
	if err != nil {
		return e.playerError(id, "claimed route", err)
	}
	cards, err := p.InitialClaimCards()
	if err != nil {
		return e.playerError(id, "initial claim cards", err)
	}
	if route == nil || !e.state.IsClaimable(route) {
		return e.illegal(id, "route %v cannot be claimed", route)
	}
	options, err := e.state.CurrentPlayerState().PossibleClaimCards(route)
	if err != nil {
		return e.illegal(id, "%v", err)
	}
	if !slices.ContainsFunc(options, cards.Equal) {
		return e.illegal(id, "cards %s cannot claim %s", cards, route)
	}

	if route.Level() == game.Overground {
		return e.claim(id, route, cards)
	}
	return e.claimTunnel(id, route, cards)
}

func (e *Engine) claim(id game.PlayerID, route *game.Route, cards game.Bag[game.Card]) error {
	next, err := e.state.WithClaimedRoute(route, cards)
	if err != nil {
		return e.illegal(id, "%v", err)
	}
	e.state = next
	return e.broadcastInfo(e.infos[id].ClaimedRoute(route, cards))
}

// claimTunnel draws up to three cards from the pile. They are discarded
// whatever the outcome. If they raise the cost, the player pays more or
// gives up and keeps the initial cards.
func (e *Engine) claimTunnel(id game.PlayerID, route *game.Route, cards game.Bag[game.Card]) error {
	if err := e.broadcastInfo(e.infos[id].AttemptsTunnelClaim(route, cards)); err != nil {
		return err
	}
	var drawn []game.Card
	for i := 0; i < meta.ADDITIONAL_TUNNEL_CARDS; i++ {
		e.state = e.state.WithCardsDeckRecreatedIfNeeded(e.rng)
		card, err := e.state.TopCard()
		if err != nil {
			break
		}
		e.state, _ = e.state.WithoutTopCard()
		drawn = append(drawn, card)
	}
	drawnBag := game.BagOf(drawn...)
	// The pile can run short of three cards when most are in hands.
	extra := game.MatchingCardsCount(cards, drawnBag)
	if drawnBag.Size() == meta.ADDITIONAL_TUNNEL_CARDS {
		n, err := route.AdditionalClaimCardsCount(cards, drawnBag)
		if err != nil {
			return err
		}
		extra = n
	}
	e.state = e.state.WithMoreDiscardedCards(drawnBag)
	if err := e.broadcastInfo(e.infos[id].DrewAdditionalCards(drawnBag, extra)); err != nil {
		return err
	}
	if extra == 0 {
		return e.claim(id, route, cards)
	}

	options, err := e.state.CurrentPlayerState().PossibleAdditionalCards(extra, cards)
	if err != nil {
		return e.illegal(id, "%v", err)
	}
	if len(options) > 0 {
		chosen, err := e.players[id].ChooseAdditionalCards(options)
		if err != nil {
			return e.playerError(id, "choose additional cards", err)
		}
		if !chosen.IsEmpty() {
			if !slices.ContainsFunc(options, chosen.Equal) {
				return e.illegal(id, "additional cards %s were not offered", chosen)
			}
			return e.claim(id, route, cards.Union(chosen))
		}
	}
	return e.broadcastInfo(e.infos[id].DidNotClaimRoute(route))
}

func (e *Engine) destroyRoute(id game.PlayerID) error {
	route, err := e.players[id].DestroyedRoute()
	if err != nil {
		return e.playerError(id, "destroyed route", err)
	}
	if route == nil {
		return e.illegal(id, "no route to destroy")
	}
	next, err := e.state.WithDestroyedRoute(route)
	if err != nil {
		return e.illegal(id, "%v", err)
	}
	e.state = next
	return e.broadcastInfo(e.infos[id].DestroyedRoute(route))
}
