package deck

import (
	"errors"
	rand "math/rand/v2"
	"strings"
)

// ErrDeckExhausted is returned by Draw when the undrawn pool is empty.
// Callers are expected to handle it explicitly; it is never a crash.
var ErrDeckExhausted = errors.New("deck exhausted")

// Size is the number of cards in a full Russian deck (9 ranks x 4 suits).
const Size = 36

// Deck is a mutable pool of undrawn cards plus the set of cards already
// drawn from it. Pool and used set are always disjoint and together never
// contain more than one copy of any (rank, suit) pair.
type Deck struct {
	pool []Card
	used []Card
	rng  *rand.Rand
}

// New creates a full 36-card deck, shuffled with the provided rng.
// The rng is retained for subsequent shuffles.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		pool: make([]Card, 0, Size),
		used: make([]Card, 0, Size),
		rng:  rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Six; rank <= Ace; rank++ {
			d.pool = append(d.pool, NewCard(suit, rank))
		}
	}
	d.shuffle()
	return d
}

// Draw removes and returns the next card from the undrawn pool and moves it
// into the used set. Returns ErrDeckExhausted when the pool is empty.
func (d *Deck) Draw() (Card, error) {
	if len(d.pool) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.pool[len(d.pool)-1]
	d.pool = d.pool[:len(d.pool)-1]
	d.used = append(d.used, card)
	return card, nil
}

// Rebuild regenerates the pool as the full 36-card set minus the used set,
// then reshuffles. Cards already drawn are never re-issued.
func (d *Deck) Rebuild() {
	usedSet := make(map[Card]bool, len(d.used))
	for _, c := range d.used {
		usedSet[c] = true
	}
	d.pool = d.pool[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Six; rank <= Ace; rank++ {
			if c := NewCard(suit, rank); !usedSet[c] {
				d.pool = append(d.pool, c)
			}
		}
	}
	d.shuffle()
}

// KeepOnly restricts both the pool and the used set to the given cards.
// This is a destructive debug affordance: it can leave the deck able to
// run out almost immediately, which is intended.
func (d *Deck) KeepOnly(cards []Card) {
	keep := make(map[Card]bool, len(cards))
	for _, c := range cards {
		keep[c] = true
	}
	d.pool = filterCards(d.pool, keep)
	d.used = filterCards(d.used, keep)
}

func filterCards(cards []Card, keep map[Card]bool) []Card {
	out := cards[:0]
	for _, c := range cards {
		if keep[c] {
			out = append(out, c)
		}
	}
	return out
}

// Remaining returns the number of undrawn cards
func (d *Deck) Remaining() int {
	return len(d.pool)
}

// Pool returns a copy of the undrawn cards
func (d *Deck) Pool() []Card {
	out := make([]Card, len(d.pool))
	copy(out, d.pool)
	return out
}

// Used returns a copy of the drawn cards
func (d *Deck) Used() []Card {
	out := make([]Card, len(d.used))
	copy(out, d.used)
	return out
}

// String returns the undrawn pool as a space-separated list
func (d *Deck) String() string {
	parts := make([]string, len(d.pool))
	for i, c := range d.pool {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// shuffle performs a Fisher-Yates shuffle of the pool
func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.pool), func(i, j int) {
		d.pool[i], d.pool[j] = d.pool[j], d.pool[i]
	})
}
