package game

// Player represents one side of the table. Coins and the win/loss counters
// persist across rounds within a session; the hand is per-round.
type Player struct {
	Name   string
	Coins  int
	Wins   int
	Losses int
	Hand   *Hand
}

// NewPlayer creates a player with a starting coin balance and an empty hand
func NewPlayer(name string, coins int) *Player {
	return &Player{
		Name:  name,
		Coins: coins,
		Hand:  NewHand(),
	}
}

// ResetHand replaces the player's hand with an empty one
func (p *Player) ResetHand() {
	p.Hand = NewHand()
}

// Score returns the current hand score
func (p *Player) Score() int {
	return p.Hand.Score()
}

// IsBust returns true if the player's hand is bust
func (p *Player) IsBust() bool {
	return p.Hand.IsBust()
}
