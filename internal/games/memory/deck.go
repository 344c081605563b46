package memory

import (
	"errors"
	"math/rand"
)

// ErrOddDeck is returned when the grid cannot hold whole pairs.
var ErrOddDeck = errors.New("memory: card count must be even and positive")

// Face is the visible state of a card.
type Face int

const (
	FaceDown Face = iota
	FaceUp
	FaceMatched
)

// Card is one card on the table.
type Card struct {
	Value int
	Face  Face
}

// Deck is a rows x cols table of shuffled pairs, stored row-major.
type Deck struct {
	Rows, Cols int
	Cards      []Card
}

// NewDeck deals rows*cols cards holding the values 1..n/2 twice each,
// shuffled with rng.
func NewDeck(rows, cols int, rng *rand.Rand) (*Deck, error) {
	if !validSize(rows, cols) {
		return nil, ErrOddDeck
	}
	n := rows * cols
	cards := make([]Card, n)
	for i := range cards {
		cards[i].Value = i/2 + 1
	}
	rng.Shuffle(n, func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &Deck{Rows: rows, Cols: cols, Cards: cards}, nil
}

func validSize(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows*cols%2 == 0
}

// Pairs returns the number of pairs in the deck.
func (d *Deck) Pairs() int { return len(d.Cards) / 2 }

// Index converts a row and column to a card index.
func (d *Deck) Index(row, col int) int { return row*d.Cols + col }

// Count returns how many cards show the given face.
func (d *Deck) Count(f Face) int {
	n := 0
	for _, c := range d.Cards {
		if c.Face == f {
			n++
		}
	}
	return n
}
