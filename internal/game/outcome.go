package game

// Outcome is the terminal result of a round
type Outcome int

const (
	HumanWin Outcome = iota
	BotWin
	Draw
	Aborted // deck ran out before both sides held two cards; no decision
	Skipped // round never started (broke participant or zero bet)
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case HumanWin:
		return "human win"
	case BotWin:
		return "bot win"
	case Draw:
		return "draw"
	case Aborted:
		return "aborted"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SkipReason explains a Skipped outcome
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipHumanBroke
	SkipBotBroke
	SkipNoBet
)

// RoundResult is what PlayRound hands back to the presentation layer
type RoundResult struct {
	Outcome    Outcome
	HumanScore int
	BotScore   int
	Bet        int

	// DeckExhausted is set when the round ended through the exhaustion
	// path, including the case where scores were still settled.
	DeckExhausted bool

	Skip SkipReason
}

// DetermineWinner applies the outcome rule to two final scores. Bust-bust
// is a draw, a single bust loses, otherwise the higher score wins.
func DetermineWinner(humanScore, botScore int) Outcome {
	switch {
	case humanScore > BustLimit && botScore > BustLimit:
		return Draw
	case humanScore > BustLimit:
		return BotWin
	case botScore > BustLimit:
		return HumanWin
	case humanScore > botScore:
		return HumanWin
	case botScore > humanScore:
		return BotWin
	default:
		return Draw
	}
}
