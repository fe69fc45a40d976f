package game

import (
	"errors"

	"github.com/lox/ochko/internal/deck"
)

// PlayRound runs one complete round: deal, bet, both turns, settlement.
// The human agent supplies the interactive decisions; the session's bot
// agent acts for the other side. Events are published to the sink in order.
//
// The round is strictly synchronous. It suspends only inside agent
// callbacks, and deck exhaustion is the only way out of a turn besides the
// agent's own stand/bust.
func (s *Session) PlayRound(human Agent, sink EventSink) RoundResult {
	if sink == nil {
		sink = nopSink{}
	}

	// A broke participant means no round: report which side, touch nothing.
	if s.Human.Coins == 0 {
		s.logger.Info("round skipped", "reason", "human broke")
		return RoundResult{Outcome: Skipped, Skip: SkipHumanBroke}
	}
	if s.Bot.Coins == 0 {
		s.logger.Info("round skipped", "reason", "bot broke")
		return RoundResult{Outcome: Skipped, Skip: SkipBotBroke}
	}

	s.Human.ResetHand()
	s.Bot.ResetHand()

	// Two cards each, strictly alternating so the order reveals nothing.
	for i := 0; i < 2; i++ {
		for _, p := range []*Player{s.Human, s.Bot} {
			card, err := s.Deck.Draw()
			if err != nil {
				return s.abortExhausted(0, sink)
			}
			p.Hand.Add(card)
		}
	}

	first, second := s.Human, s.Bot
	firstAgent, secondAgent := human, Agent(s.botAgent)
	if s.rng.IntN(2) == 1 {
		first, second = second, first
		firstAgent, secondAgent = secondAgent, firstAgent
	}

	s.logger.Debug("round started",
		"firstMover", first.Name,
		"humanCoins", s.Human.Coins,
		"botCoins", s.Bot.Coins)

	sink.OnEvent(RoundStartedEvent{
		HumanCoins: s.Human.Coins,
		BotCoins:   s.Bot.Coins,
		FirstMover: first.Name,
	})
	sink.OnEvent(HandsDealtEvent{
		HumanHand: s.Human.Hand.Cards(),
		BotHand:   s.Bot.Hand.Cards(),
	})

	bet := firstAgent.ChooseBet(BetView{Coins: first.Coins, OpponentCoins: second.Coins})
	if max := minInt(first.Coins, second.Coins); bet > max {
		s.logger.Warn("bet exceeds balances, clamping", "bet", bet, "max", max)
		bet = max
	}
	if bet < 1 {
		s.logger.Info("round skipped", "reason", "no bet")
		return RoundResult{Outcome: Skipped, Skip: SkipNoBet}
	}
	sink.OnEvent(BetPlacedEvent{By: first.Name, Amount: bet})

	if err := s.runTurn(first, firstAgent, sink); err != nil {
		return s.abortExhausted(bet, sink)
	}
	if err := s.runTurn(second, secondAgent, sink); err != nil {
		return s.abortExhausted(bet, sink)
	}

	return s.resolve(bet, false, sink)
}

// runTurn drives one participant's draw loop. The agent only ever answers
// hit or stand; the engine draws the cards and checks for bust. A draw
// against an empty pool propagates up unswallowed.
func (s *Session) runTurn(p *Player, agent Agent, sink EventSink) error {
	sink.OnEvent(TurnStartedEvent{Player: p.Name})
	for {
		if p.IsBust() {
			sink.OnEvent(PlayerBustedEvent{Player: p.Name, Score: p.Score()})
			return nil
		}

		view := TurnView{
			Hand:      p.Hand.Cards(),
			Score:     p.Score(),
			Remaining: s.Deck.Pool(),
		}
		if agent.Decide(view) == Stand {
			sink.OnEvent(PlayerStoodEvent{Player: p.Name, Score: p.Score()})
			return nil
		}

		card, err := s.Deck.Draw()
		if err != nil {
			return err
		}
		p.Hand.Add(card)
		s.logger.Debug("card drawn", "player", p.Name, "card", card, "score", p.Score())
		sink.OnEvent(CardDrawnEvent{Player: p.Name, Card: card, Score: p.Score()})

		if pacer, ok := agent.(Pacer); ok {
			pacer.Pace()
		}
	}
}

// abortExhausted handles the deck running dry. If either side holds fewer
// than two cards the round is a no-decision; otherwise the hands dealt so
// far are scored and settled like a normal resolution. The asymmetry is
// deliberate and matches the original rules.
func (s *Session) abortExhausted(bet int, sink EventSink) RoundResult {
	sink.OnEvent(DeckExhaustedEvent{})
	s.logger.Info("deck exhausted",
		"humanCards", s.Human.Hand.Size(),
		"botCards", s.Bot.Hand.Size())

	if s.Human.Hand.Size() < 2 || s.Bot.Hand.Size() < 2 {
		result := RoundResult{
			Outcome:       Aborted,
			HumanScore:    s.Human.Score(),
			BotScore:      s.Bot.Score(),
			Bet:           bet,
			DeckExhausted: true,
		}
		sink.OnEvent(RoundResolvedEvent{
			Result:    result,
			HumanHand: s.Human.Hand.Cards(),
			BotHand:   s.Bot.Hand.Cards(),
		})
		return result
	}
	return s.resolve(bet, true, sink)
}

// resolve compares final scores, settles the bet and updates counters
func (s *Session) resolve(bet int, exhausted bool, sink EventSink) RoundResult {
	humanScore, botScore := s.Human.Score(), s.Bot.Score()
	outcome := DetermineWinner(humanScore, botScore)
	s.settle(outcome, bet)

	s.logger.Info("round resolved",
		"outcome", outcome,
		"humanScore", humanScore,
		"botScore", botScore,
		"bet", bet,
		"deckExhausted", exhausted)

	result := RoundResult{
		Outcome:       outcome,
		HumanScore:    humanScore,
		BotScore:      botScore,
		Bet:           bet,
		DeckExhausted: exhausted,
	}
	sink.OnEvent(RoundResolvedEvent{
		Result:    result,
		HumanHand: s.Human.Hand.Cards(),
		BotHand:   s.Bot.Hand.Cards(),
	})
	return result
}

// settle moves the bet from loser to winner and bumps the counters. Draws
// change nothing, coins or counters.
func (s *Session) settle(outcome Outcome, bet int) {
	switch outcome {
	case HumanWin:
		s.Human.Coins += bet
		s.Bot.Coins -= bet
		s.Human.Wins++
		s.Bot.Losses++
	case BotWin:
		s.Human.Coins -= bet
		s.Bot.Coins += bet
		s.Human.Losses++
		s.Bot.Wins++
	}
}

// IsDeckExhausted reports whether err is the deck's exhaustion sentinel
func IsDeckExhausted(err error) bool {
	return errors.Is(err, deck.ErrDeckExhausted)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
