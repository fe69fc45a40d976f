package cli

import (
	"fmt"
	"strings"

	"github.com/lox/ochko/internal/deck"
	"github.com/lox/ochko/internal/game"
)

// FormatCard renders a single card, red suits in red
func FormatCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// FormatHand renders a hand, masking the hole card when hideFirst is set
// and at least two cards are held.
func FormatHand(cards []deck.Card, hideFirst bool) string {
	if len(cards) == 0 {
		return InfoStyle.Render("(no cards)")
	}
	parts := make([]string, 0, len(cards))
	for i, c := range cards {
		if i == 0 && hideFirst && len(cards) > 1 {
			parts = append(parts, InfoStyle.Render("[??]"))
			continue
		}
		parts = append(parts, FormatCard(c))
	}
	return strings.Join(parts, " ")
}

// FormatHandLine renders the "cards | score" line used throughout the game
func FormatHandLine(owner string, cards []deck.Card, score int, hideFirst bool) string {
	if hideFirst {
		return fmt.Sprintf("%s: %s", owner, FormatHand(cards, true))
	}
	return fmt.Sprintf("%s: %s | Score: %s", owner, FormatHand(cards, false), ScoreStyle.Render(fmt.Sprintf("%d", score)))
}

// outcomeText maps a settled round result to the message shown to the player
func outcomeText(result game.RoundResult) string {
	switch {
	case result.HumanScore > game.BustLimit && result.BotScore > game.BustLimit:
		return "Both bust. Draw."
	case result.HumanScore > game.BustLimit:
		return ErrorStyle.Render("You lose. Bust.")
	case result.BotScore > game.BustLimit:
		return SuccessStyle.Render("You win! Bot bust.")
	case result.Outcome == game.HumanWin:
		return SuccessStyle.Render("You win!")
	case result.Outcome == game.BotWin:
		return ErrorStyle.Render("You lose.")
	default:
		return "Draw."
	}
}
