package game

import (
	"testing"

	"github.com/lox/ochko/internal/deck"
)

func mustCards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cards
}

func handOf(t *testing.T, s string) *Hand {
	t.Helper()
	h := NewHand()
	for _, c := range mustCards(t, s) {
		h.Add(c)
	}
	return h
}

func TestHandScore(t *testing.T) {
	tests := []struct {
		cards    string
		expected int
	}{
		{"", 0},
		{"6s", 6},
		{"TsAh", 21},
		{"JsQhKd", 9},  // court cards are 2+3+4
		{"AsAh", 22},   // two aces bust, no soft rescoring
		{"Ts9h8d", 27}, // over the limit is over the limit
	}

	for _, tt := range tests {
		if got := handOf(t, tt.cards).Score(); got != tt.expected {
			t.Errorf("Score(%q) = %d, want %d", tt.cards, got, tt.expected)
		}
	}
}

func TestHandScoreOrderInvariant(t *testing.T) {
	a := handOf(t, "Ts6hJdAs")
	b := handOf(t, "AsJd6hTs")
	if a.Score() != b.Score() {
		t.Errorf("score depends on order: %d vs %d", a.Score(), b.Score())
	}
}

func TestHandIsBust(t *testing.T) {
	if handOf(t, "TsAh").IsBust() {
		t.Error("21 should not be bust")
	}
	if !handOf(t, "TsAhAs").IsBust() {
		t.Error("32 should be bust")
	}
}

func TestHandShow(t *testing.T) {
	h := handOf(t, "Ts6h")
	if got := h.Show(false); got != "10♠ 6♥" {
		t.Errorf("Show(false) = %q", got)
	}
	if got := h.Show(true); got != "[??] 6♥" {
		t.Errorf("Show(true) = %q, want hole card masked", got)
	}

	// A single card is never masked.
	single := handOf(t, "Ts")
	if got := single.Show(true); got != "10♠" {
		t.Errorf("Show(true) on one card = %q", got)
	}
}
