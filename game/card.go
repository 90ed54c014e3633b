package game

import "cmp"

type Color int

const (
	Black Color = iota
	Violet
	Blue
	Green
	Yellow
	Orange
	Red
	White
)

// Colors lists every color in declaration order.
var Colors = []Color{Black, Violet, Blue, Green, Yellow, Orange, Red, White}

var colorNames = []string{"BLACK", "VIOLET", "BLUE", "GREEN", "YELLOW", "ORANGE", "RED", "WHITE"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "UNKNOWN"
	}
	return colorNames[c]
}

// Paint is the color constraint of a route: either one concrete color, or
// any single color (the zero value).
type Paint struct {
	color Color
	fixed bool
}

func AnyColor() Paint {
	return Paint{}
}

func Painted(c Color) Paint {
	return Paint{color: c, fixed: true}
}

// Color returns the required color, if any.
func (p Paint) Color() (Color, bool) {
	return p.color, p.fixed
}

func (p Paint) String() string {
	if !p.fixed {
		return "ANY"
	}
	return p.color.String()
}

type Card int

// Car cards share their numeric value with their Color.
const (
	BlackCard Card = iota
	VioletCard
	BlueCard
	GreenCard
	YellowCard
	OrangeCard
	RedCard
	WhiteCard
	Locomotive
	Bomb
)

// Cards lists every kind of card; the order is the sort order of bags and the
// wire index of each card.
var Cards = []Card{BlackCard, VioletCard, BlueCard, GreenCard, YellowCard, OrangeCard, RedCard, WhiteCard, Locomotive, Bomb}

// CarCards lists the colored cards.
var CarCards = []Card{BlackCard, VioletCard, BlueCard, GreenCard, YellowCard, OrangeCard, RedCard, WhiteCard}

var cardNames = []string{"BLACK", "VIOLET", "BLUE", "GREEN", "YELLOW", "ORANGE", "RED", "WHITE", "LOCOMOTIVE", "BOMB"}

// CardOf returns the car card of the given color.
func CardOf(c Color) Card {
	return Card(c)
}

// Color returns the color of a car card. Locomotives and bombs have none.
func (c Card) Color() (Color, bool) {
	if c < BlackCard || c > WhiteCard {
		return 0, false
	}
	return Color(c), true
}

func (c Card) Compare(other Card) int {
	return cmp.Compare(c, other)
}

func (c Card) String() string {
	if c < 0 || int(c) >= len(cardNames) {
		return "UNKNOWN"
	}
	return cardNames[c]
}
