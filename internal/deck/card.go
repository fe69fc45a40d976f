package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank in the 36-card Russian deck (six through ace)
type Rank int

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Points returns the score value of a rank. Court cards count 2/3/4
// and the ace is fixed at 11 - there is no soft-ace rescoring.
func (r Rank) Points() int {
	switch r {
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ace:
		return 11
	default:
		return 0
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Points returns the score value of the card
func (c Card) Points() int {
	return c.Rank.Points()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCards parses a compact card string like "As7hTd" into cards.
// Ranks are 6-9, T, J, Q, K, A and suits are s, h, d, c (case insensitive).
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	runes := []rune(strings.ToUpper(s))
	if len(runes)%2 != 0 {
		return nil, fmt.Errorf("odd-length card string %q", s)
	}
	for i := 0; i < len(runes); i += 2 {
		rank, err := parseRank(runes[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(runes[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{Suit: suit, Rank: rank})
	}
	return cards, nil
}

func parseRank(r rune) (Rank, error) {
	switch r {
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", r)
	}
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 'S':
		return Spades, nil
	case 'H':
		return Hearts, nil
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", r)
	}
}
