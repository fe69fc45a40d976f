package game

import "github.com/lox/ochko/internal/deck"

// Decision is a participant's answer at a draw/stand decision point
type Decision int

const (
	Stand Decision = iota
	Hit
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	default:
		return "unknown"
	}
}

// TurnView is the read-only state an agent sees when deciding whether to
// draw. Remaining exposes the undrawn pool; the bot heuristic needs it and
// the human agent ignores it.
type TurnView struct {
	Hand      []deck.Card
	Score     int
	Remaining []deck.Card
}

// BetView is the read-only state an agent sees when choosing a bet
type BetView struct {
	Coins         int
	OpponentCoins int
}

// Max returns the largest legal bet for this view
func (v BetView) Max() int {
	if v.Coins < v.OpponentCoins {
		return v.Coins
	}
	return v.OpponentCoins
}

// Agent represents any entity (human or bot) that can act for a player.
// Agents receive immutable views and return decisions - all state mutation
// happens in the engine.
type Agent interface {
	// Decide answers a single draw/stand decision point
	Decide(view TurnView) Decision

	// ChooseBet picks the round's bet. Zero means the round is skipped.
	ChooseBet(view BetView) int
}

// Pacer is implemented by agents that want a deliberate pause after each
// card they draw. The engine invokes it between draws so the delay can
// never reorder turns.
type Pacer interface {
	Pace()
}
