package game

import "github.com/lox/ochko/internal/deck"

// Event is something that happened during a round that the presentation
// layer may want to render. The engine publishes events synchronously, in
// order, to a single sink.
type Event interface {
	EventType() string
}

// EventSink receives engine events
type EventSink interface {
	OnEvent(Event)
}

// EventFunc adapts a function to the EventSink interface
type EventFunc func(Event)

// OnEvent implements EventSink
func (f EventFunc) OnEvent(e Event) {
	f(e)
}

type nopSink struct{}

func (nopSink) OnEvent(Event) {}

// RoundStartedEvent is published after the deal, before betting
type RoundStartedEvent struct {
	HumanCoins int
	BotCoins   int
	FirstMover string
}

func (RoundStartedEvent) EventType() string { return "round_started" }

// HandsDealtEvent carries the two opening hands
type HandsDealtEvent struct {
	HumanHand []deck.Card
	BotHand   []deck.Card
}

func (HandsDealtEvent) EventType() string { return "hands_dealt" }

// BetPlacedEvent is published when the round's bet is fixed
type BetPlacedEvent struct {
	By     string
	Amount int
}

func (BetPlacedEvent) EventType() string { return "bet_placed" }

// TurnStartedEvent marks the beginning of a participant's turn
type TurnStartedEvent struct {
	Player string
}

func (TurnStartedEvent) EventType() string { return "turn_started" }

// CardDrawnEvent is published for every card drawn during a turn
type CardDrawnEvent struct {
	Player string
	Card   deck.Card
	Score  int
}

func (CardDrawnEvent) EventType() string { return "card_drawn" }

// PlayerStoodEvent is published when a participant stands
type PlayerStoodEvent struct {
	Player string
	Score  int
}

func (PlayerStoodEvent) EventType() string { return "player_stood" }

// PlayerBustedEvent is published when a participant's hand goes over the limit
type PlayerBustedEvent struct {
	Player string
	Score  int
}

func (PlayerBustedEvent) EventType() string { return "player_busted" }

// DeckExhaustedEvent is published when a draw hits an empty pool
type DeckExhaustedEvent struct{}

func (DeckExhaustedEvent) EventType() string { return "deck_exhausted" }

// RoundResolvedEvent carries the final result of the round
type RoundResolvedEvent struct {
	Result    RoundResult
	HumanHand []deck.Card
	BotHand   []deck.Card
}

func (RoundResolvedEvent) EventType() string { return "round_resolved" }
