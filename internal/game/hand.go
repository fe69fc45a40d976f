package game

import (
	"strings"

	"github.com/lox/ochko/internal/deck"
)

// BustLimit is the score above which a hand is bust
const BustLimit = 21

// Hand is the ordered sequence of cards held by one participant during a
// round. Duplicates are not validated here; the deck guarantees uniqueness.
type Hand struct {
	cards []deck.Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{}
}

// Add appends a card to the hand
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the hand, in draw order
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// Score is the plain sum of card values. The ace is always worth 11 here;
// softness only matters inside the bot's draw heuristic.
func (h *Hand) Score() int {
	score := 0
	for _, c := range h.cards {
		score += c.Points()
	}
	return score
}

// IsBust returns true when the score exceeds the bust limit
func (h *Hand) IsBust() bool {
	return h.Score() > BustLimit
}

// Show renders the hand. With hideFirst set and at least two cards held,
// the hole card is masked.
func (h *Hand) Show(hideFirst bool) string {
	if len(h.cards) == 0 {
		return ""
	}
	parts := make([]string, 0, len(h.cards))
	for i, c := range h.cards {
		if i == 0 && hideFirst && len(h.cards) > 1 {
			parts = append(parts, "[??]")
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
