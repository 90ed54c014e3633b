package game

import "golang.org/x/exp/rand"

// Deck is an immutable draw pile. Removing cards returns a new deck sharing
// the remaining tail.
type Deck[T Item[T]] struct {
	items []T
}

// DeckOf shuffles a copy of the elements of cards.
func DeckOf[T Item[T]](cards Bag[T], rng *rand.Rand) Deck[T] {
	items := cards.Items()
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return Deck[T]{items: items}
}

func (d Deck[T]) Size() int {
	return len(d.items)
}

func (d Deck[T]) IsEmpty() bool {
	return len(d.items) == 0
}

func (d Deck[T]) TopCard() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, invalidArgument("top card of an empty deck")
	}
	return d.items[0], nil
}

func (d Deck[T]) WithoutTopCard() (Deck[T], error) {
	if d.IsEmpty() {
		return d, invalidArgument("removing the top card of an empty deck")
	}
	return d.WithoutTopCards(1)
}

// TopCards returns the first count cards as a bag.
func (d Deck[T]) TopCards(count int) (Bag[T], error) {
	if count < 0 || count > d.Size() {
		return Bag[T]{}, invalidArgument("cannot take %d cards from a deck of %d", count, d.Size())
	}
	return BagOf(d.items[:count]...), nil
}

func (d Deck[T]) WithoutTopCards(count int) (Deck[T], error) {
	if count < 0 || count > d.Size() {
		return d, invalidArgument("cannot remove %d cards from a deck of %d", count, d.Size())
	}
	return Deck[T]{items: d.items[count:]}, nil
}
