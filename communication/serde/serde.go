// Package serde turns game values into the text fields of protocol messages.
package serde

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tchu/communication"
	"tchu/game"
	"tchu/utils"
)

// Serde encodes values of one type to text and back.
type Serde[T any] interface {
	Serialize(v T) string
	Deserialize(s string) (T, error)
}

type funcSerde[T any] struct {
	serialize   func(T) string
	deserialize func(string) (T, error)
}

func (f funcSerde[T]) Serialize(v T) string            { return f.serialize(v) }
func (f funcSerde[T]) Deserialize(s string) (T, error) { return f.deserialize(s) }

// Of builds a Serde from a pair of functions.
func Of[T any](serialize func(T) string, deserialize func(string) (T, error)) Serde[T] {
	return funcSerde[T]{serialize: serialize, deserialize: deserialize}
}

// ErrUnknownValue marks a value that is not in the list of a OneOf serde.
var ErrUnknownValue = errors.New("value cannot be serialized")

type unknownValue struct {
	err error
}

// OneOf encodes a value as its index in values. Serializing a value missing
// from values panics; TrySerialize turns that panic into ErrUnknownValue.
func OneOf[T comparable](values []T) Serde[T] {
	return Of(
		func(v T) string {
			i := utils.FindIndex(values, v)
			if i < 0 {
				panic(unknownValue{fmt.Errorf("%w: %v", ErrUnknownValue, v)})
			}
			return strconv.Itoa(i)
		},
		func(s string) (T, error) {
			var zero T
			i, err := strconv.Atoi(s)
			if err != nil || i < 0 || i >= len(values) {
				return zero, fmt.Errorf("%w: index %q out of %d values", communication.ErrFraming, s, len(values))
			}
			return values[i], nil
		},
	)
}

// TrySerialize serializes v, reporting values unknown to a OneOf serde as an
// error instead of a panic.
func TrySerialize[T any](s Serde[T], v T) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, ok := r.(unknownValue)
			if !ok {
				panic(r)
			}
			err = u.err
		}
	}()
	return s.Serialize(v), nil
}

// ListOf joins the elements with sep. The empty list is the empty string, so
// a list holding one empty element decodes as the empty list.
func ListOf[T any](s Serde[T], sep string) Serde[[]T] {
	return Of(
		func(list []T) string {
			parts := make([]string, len(list))
			for i, v := range list {
				parts[i] = s.Serialize(v)
			}
			return strings.Join(parts, sep)
		},
		func(text string) ([]T, error) {
			if text == "" {
				return nil, nil
			}
			parts := strings.Split(text, sep)
			list := make([]T, len(parts))
			for i, p := range parts {
				v, err := s.Deserialize(p)
				if err != nil {
					return nil, err
				}
				list[i] = v
			}
			return list, nil
		},
	)
}

// BagOf encodes a bag as the list of its sorted elements.
func BagOf[T game.Item[T]](s Serde[T], sep string) Serde[game.Bag[T]] {
	list := ListOf(s, sep)
	return Of(
		func(b game.Bag[T]) string {
			return list.Serialize(b.Items())
		},
		func(text string) (game.Bag[T], error) {
			items, err := list.Deserialize(text)
			if err != nil {
				return game.Bag[T]{}, err
			}
			return game.BagOf(items...), nil
		},
	)
}

// fields splits a record and checks that it has exactly n fields. Empty
// trailing fields count.
func fields(s, sep string, n int) ([]string, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: expected %d fields, got %d in %q", communication.ErrFraming, n, len(parts), s)
	}
	return parts, nil
}
