package game

import (
	"slices"
	"tchu/meta"

	"golang.org/x/exp/rand"
)

// PublicCardState is what both players see of the cards: the face-up row and
// the sizes of the draw and discard piles.
type PublicCardState struct {
	faceUpCards  []Card
	deckSize     int
	discardsSize int
}

func NewPublicCardState(faceUpCards []Card, deckSize, discardsSize int) (PublicCardState, error) {
	if len(faceUpCards) != meta.FACE_UP_CARDS_COUNT {
		return PublicCardState{}, invalidArgument("expected %d face-up cards, got %d", meta.FACE_UP_CARDS_COUNT, len(faceUpCards))
	}
	if deckSize < 0 || discardsSize < 0 {
		return PublicCardState{}, invalidArgument("negative pile size (deck %d, discards %d)", deckSize, discardsSize)
	}
	return PublicCardState{faceUpCards: slices.Clone(faceUpCards), deckSize: deckSize, discardsSize: discardsSize}, nil
}

func (s PublicCardState) TotalSize() int {
	return len(s.faceUpCards) + s.deckSize + s.discardsSize
}

func (s PublicCardState) FaceUpCards() []Card {
	return slices.Clone(s.faceUpCards)
}

func (s PublicCardState) FaceUpCard(slot int) (Card, error) {
	if slot < 0 || slot >= len(s.faceUpCards) {
		return 0, invalidArgument("face-up slot %d", slot)
	}
	return s.faceUpCards[slot], nil
}

func (s PublicCardState) DeckSize() int {
	return s.deckSize
}

func (s PublicCardState) IsDeckEmpty() bool {
	return s.deckSize == 0
}

func (s PublicCardState) DiscardsSize() int {
	return s.discardsSize
}

// CardState adds the hidden piles to the public view.
type CardState struct {
	PublicCardState
	deck     Deck[Card]
	discards Bag[Card]
}

func newCardState(faceUp []Card, deck Deck[Card], discards Bag[Card]) CardState {
	return CardState{
		PublicCardState: PublicCardState{faceUpCards: faceUp, deckSize: deck.Size(), discardsSize: discards.Size()},
		deck:            deck,
		discards:        discards,
	}
}

// CardStateOf lays out the first five cards of deck face up; the rest is the
// draw pile and the discards are empty.
func CardStateOf(deck Deck[Card]) (CardState, error) {
	if deck.Size() < meta.FACE_UP_CARDS_COUNT {
		return CardState{}, invalidArgument("deck of %d cards cannot fill the face-up row", deck.Size())
	}
	faceUp := slices.Clone(deck.items[:meta.FACE_UP_CARDS_COUNT])
	rest, _ := deck.WithoutTopCards(meta.FACE_UP_CARDS_COUNT)
	return newCardState(faceUp, rest, Bag[Card]{}), nil
}

func (cs CardState) Public() PublicCardState {
	return cs.PublicCardState
}

// WithDrawnFaceUpCard replaces the card in slot with the top of the pile.
func (cs CardState) WithDrawnFaceUpCard(slot int) (CardState, error) {
	if slot < 0 || slot >= meta.FACE_UP_CARDS_COUNT {
		return cs, invalidArgument("face-up slot %d", slot)
	}
	top, err := cs.deck.TopCard()
	if err != nil {
		return cs, err
	}
	rest, _ := cs.deck.WithoutTopCard()
	faceUp := slices.Clone(cs.faceUpCards)
	faceUp[slot] = top
	return newCardState(faceUp, rest, cs.discards), nil
}

func (cs CardState) TopDeckCard() (Card, error) {
	return cs.deck.TopCard()
}

func (cs CardState) WithoutTopDeckCard() (CardState, error) {
	rest, err := cs.deck.WithoutTopCard()
	if err != nil {
		return cs, err
	}
	return newCardState(cs.faceUpCards, rest, cs.discards), nil
}

// WithDeckRecreatedFromDiscards shuffles the discards into a new pile. The
// pile must be empty.
func (cs CardState) WithDeckRecreatedFromDiscards(rng *rand.Rand) (CardState, error) {
	if !cs.deck.IsEmpty() {
		return cs, invalidArgument("recreating a pile that still holds %d cards", cs.deck.Size())
	}
	return newCardState(cs.faceUpCards, DeckOf(cs.discards, rng), Bag[Card]{}), nil
}

func (cs CardState) WithMoreDiscardedCards(cards Bag[Card]) CardState {
	return newCardState(cs.faceUpCards, cs.deck, cs.discards.Union(cards))
}
