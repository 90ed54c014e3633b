// Package communication carries the remote player protocol: one message per
// line, a message kind followed by space separated arguments.
package communication

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFraming marks a line that breaks the protocol: an unknown message kind,
// a wrong argument count or a field that does not decode.
var ErrFraming = errors.New("protocol framing error")

type MessageID int

const (
	InitPlayers MessageID = iota
	ReceiveInfo
	UpdateState
	SetInitialTickets
	ChooseInitialTickets
	NextTurn
	ChooseTickets
	DrawSlot
	Route
	Cards
	ChooseAdditionalCards
	SendName
	DestroyRoute
)

var MessageIDs = []MessageID{
	InitPlayers, ReceiveInfo, UpdateState, SetInitialTickets, ChooseInitialTickets, NextTurn,
	ChooseTickets, DrawSlot, Route, Cards, ChooseAdditionalCards, SendName, DestroyRoute,
}

var messageNames = []string{
	"INIT_PLAYERS", "RECEIVE_INFO", "UPDATE_STATE", "SET_INITIAL_TICKETS", "CHOOSE_INITIAL_TICKETS", "NEXT_TURN",
	"CHOOSE_TICKETS", "DRAW_SLOT", "ROUTE", "CARDS", "CHOOSE_ADDITIONAL_CARDS", "SEND_NAME", "DESTROY_ROUTE",
}

// argCounts is the number of arguments each message carries.
var argCounts = []int{2, 1, 2, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0}

func (id MessageID) String() string {
	if id < 0 || int(id) >= len(messageNames) {
		return "UNKNOWN"
	}
	return messageNames[id]
}

func (id MessageID) ArgCount() int {
	return argCounts[id]
}

// HasResponse reports whether the receiver answers the message with one line.
func (id MessageID) HasResponse() bool {
	switch id {
	case InitPlayers, ReceiveInfo, UpdateState, SetInitialTickets:
		return false
	}
	return true
}

func ParseMessageID(name string) (MessageID, error) {
	for i, n := range messageNames {
		if n == name {
			return MessageID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown message %q", ErrFraming, name)
}

// FormatMessage builds the line for a message. Arguments must not contain
// spaces or newlines.
func FormatMessage(id MessageID, args ...string) string {
	return strings.Join(append([]string{id.String()}, args...), " ")
}

// ParseMessage splits a line into its kind and arguments and checks the
// argument count.
func ParseMessage(line string) (MessageID, []string, error) {
	fields := strings.Split(line, " ")
	id, err := ParseMessageID(fields[0])
	if err != nil {
		return 0, nil, err
	}
	args := fields[1:]
	if len(args) != id.ArgCount() {
		return 0, nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrFraming, id, id.ArgCount(), len(args))
	}
	return id, args, nil
}
