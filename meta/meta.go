// meta/meta.go
package meta

// Cars each player starts with.
const INITIAL_CAR_COUNT = 40

// The final round starts once a player ends a turn with at most this many cars.
const LAST_TURN_CAR_COUNT = 2

// Card pool: CAR_CARDS_PER_COLOR of each of the 8 colors, plus locomotives and bombs.
const (
	CAR_CARDS_PER_COLOR = 12
	LOCOMOTIVE_CARDS    = 14
	BOMB_CARDS          = 3
)

const (
	INITIAL_CARDS_COUNT     = 4
	FACE_UP_CARDS_COUNT     = 5
	ADDITIONAL_TUNNEL_CARDS = 3
	DRAWN_CARDS_PER_TURN    = 2
)

// DECK_SLOT is the draw slot designating the blind pile; face-up slots are 0..FACE_UP_CARDS_COUNT-1.
const DECK_SLOT = -1

const (
	INITIAL_TICKETS_COUNT     = 5
	IN_GAME_TICKETS_COUNT     = 3
	DISCARDABLE_TICKETS_COUNT = 2
)

const (
	MIN_ROUTE_LENGTH = 1
	MAX_ROUTE_LENGTH = 6
)

const LONGEST_TRAIL_BONUS_POINTS = 10

// ROUTE_CLAIM_POINTS maps a route length to the points earned by claiming it.
var ROUTE_CLAIM_POINTS = [MAX_ROUTE_LENGTH + 1]int{0, 1, 2, 4, 7, 10, 15}

// DEFAULT_PORT is the TCP port the server listens on when none is configured.
const DEFAULT_PORT = 5108

// MAX_TURNS bounds the length of a game. Zero disables the limit.
const MAX_TURNS = 2000
