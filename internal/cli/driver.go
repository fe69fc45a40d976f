package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/ochko/internal/game"
)

// Driver runs the interactive game: the main menu, the round loop and the
// debug commands. It owns no game state; everything lives in the session
// and the driver only renders events and relays prompts.
type Driver struct {
	session *game.Session
	ui      UI
	logger  *log.Logger
}

// NewDriver creates a driver for a session on the given UI
func NewDriver(session *game.Session, ui UI, logger *log.Logger) *Driver {
	return &Driver{
		session: session,
		ui:      ui,
		logger:  logger.WithPrefix("cli"),
	}
}

// Run shows the main menu until the player quits or the UI closes
func (d *Driver) Run() error {
	for {
		d.ui.Clear()
		d.showMenu()

		choice, err := d.ui.Prompt("Choice:")
		if err != nil {
			return nil
		}

		if strings.HasPrefix(choice, "&") {
			d.debugCommand(choice, false)
			continue
		}

		switch choice {
		case "1":
			d.playRound()
		case "2":
			d.configureDifficulty()
		case "3":
			d.showRules()
		case "4", "q", "quit", "exit":
			return nil
		}
	}
}

func (d *Driver) showMenu() {
	s := d.session
	d.ui.Println(TitleStyle.Render(" ♠ ♥ Очко — Russian Blackjack ♦ ♣ "))
	d.ui.Println("")
	d.ui.Println(fmt.Sprintf("Coins: %s — %d, %s — %d", s.Human.Name, s.Human.Coins, s.Bot.Name, s.Bot.Coins))
	d.ui.Println(fmt.Sprintf("Wins: %d | Losses: %d", s.Human.Wins, s.Human.Losses))
	d.ui.Println("")
	d.ui.Println("1 - Play a round")
	d.ui.Println(fmt.Sprintf("2 - Bot difficulty (now: %s)", s.Difficulty()))
	d.ui.Println("3 - Rules")
	d.ui.Println("4 - Quit")
	d.setStatus()
}

func (d *Driver) setStatus() {
	if ss, ok := d.ui.(StatusSetter); ok {
		s := d.session
		ss.SetStatus(fmt.Sprintf("Coins %d · W %d L %d · %s", s.Human.Coins, s.Human.Wins, s.Human.Losses, s.Difficulty()))
	}
}

func (d *Driver) playRound() {
	human := game.NewHumanAgent(d.promptDecision, d.promptBet)
	result := d.session.PlayRound(human, game.EventFunc(d.renderEvent))
	d.renderResult(result)
	d.setStatus()
	d.pressEnter()
}

// promptDecision asks the human to draw or stand. Unrecognised input is
// asked again; debug commands are routed and never mutate the turn.
func (d *Driver) promptDecision(view game.TurnView) (game.Decision, error) {
	for {
		d.ui.Println("")
		d.ui.Println(FormatHandLine("Your cards", view.Hand, view.Score, false))

		choice, err := d.ui.Prompt("Take a card? [y/n or &command]:")
		if err != nil {
			return game.Stand, err
		}

		if strings.HasPrefix(choice, "&") {
			d.debugCommand(choice, true)
			continue
		}

		switch strings.ToLower(choice) {
		case "y", "д":
			return game.Hit, nil
		case "n", "н":
			return game.Stand, nil
		default:
			d.ui.Println(WarningStyle.Render("Unrecognised choice, y or n."))
		}
	}
}

// promptBet asks the human for the round's bet, re-prompting until the
// amount is an integer both sides can cover.
func (d *Driver) promptBet(view game.BetView) (int, error) {
	for {
		d.ui.Println("")
		d.ui.Println(fmt.Sprintf("How many coins to bet? (you: %d, enemy: %d)", view.Coins, view.OpponentCoins))

		raw, err := d.ui.Prompt("Bet:")
		if err != nil {
			return 0, err
		}

		bet, err := strconv.Atoi(raw)
		if err == nil && bet >= 1 && bet <= view.Max() {
			return bet, nil
		}
		d.ui.Println(ErrorStyle.Render("Bad bet."))
	}
}

// renderEvent turns engine events into terminal output. The bot's cards
// stay hidden until the results block.
func (d *Driver) renderEvent(e game.Event) {
	s := d.session
	switch ev := e.(type) {
	case game.RoundStartedEvent:
		d.ui.Clear()
		d.ui.Println(TitleStyle.Render(" New Round "))
		d.ui.Println(fmt.Sprintf("%s: %d coins", s.Human.Name, ev.HumanCoins))
		d.ui.Println(fmt.Sprintf("%s: %d coins", s.Bot.Name, ev.BotCoins))
		d.ui.Println("")
		d.ui.Println(fmt.Sprintf("First move: %s", ev.FirstMover))
	case game.HandsDealtEvent:
		d.ui.Println("")
		d.ui.Println(FormatHandLine("Your cards", ev.HumanHand, s.Human.Score(), false))
		d.ui.Println(FormatHandLine("Bot cards", ev.BotHand, 0, true))
	case game.BetPlacedEvent:
		if ev.By == s.Bot.Name {
			d.ui.Println(fmt.Sprintf("Bot bet %d coins.", ev.Amount))
		} else {
			d.ui.Println(fmt.Sprintf("You bet %d coins.", ev.Amount))
		}
	case game.TurnStartedEvent:
		if ev.Player == s.Bot.Name {
			d.ui.Println("")
			d.ui.Println(InfoStyle.Render("Bot is thinking..."))
		}
	case game.CardDrawnEvent:
		if ev.Player == s.Bot.Name {
			d.ui.Println(InfoStyle.Render("Bot takes a card."))
		} else {
			d.ui.Println(fmt.Sprintf("You take %s. Score: %s", FormatCard(ev.Card), ScoreStyle.Render(fmt.Sprintf("%d", ev.Score))))
		}
	case game.PlayerStoodEvent:
		if ev.Player == s.Bot.Name {
			d.ui.Println(InfoStyle.Render("Bot ends its turn."))
		} else {
			d.ui.Println("You stand.")
		}
	case game.PlayerBustedEvent:
		if ev.Player == s.Bot.Name {
			d.ui.Println(InfoStyle.Render("Bot ends its turn."))
		} else {
			d.ui.Println(ErrorStyle.Render("Too much!"))
		}
	case game.DeckExhaustedEvent:
		d.ui.Println("")
		d.ui.Println(ErrorStyle.Render("The deck is gone!"))
	}
}

func (d *Driver) renderResult(result game.RoundResult) {
	s := d.session
	switch result.Outcome {
	case game.Skipped:
		switch result.Skip {
		case game.SkipHumanBroke:
			d.ui.Println(ErrorStyle.Render("You got no coins. Game over."))
		case game.SkipBotBroke:
			d.ui.Println(SuccessStyle.Render("Bot is out of coins. You win!"))
		default:
			d.ui.Println("Bet not possible. Skip round.")
		}
	case game.Aborted:
		d.ui.Println("No winner. Someone got no cards.")
	default:
		d.ui.Println("")
		d.ui.Println(TitleStyle.Render(" Results "))
		d.ui.Println(FormatHandLine("Your cards", s.Human.Hand.Cards(), result.HumanScore, false))
		d.ui.Println(FormatHandLine("Bot cards", s.Bot.Hand.Cards(), result.BotScore, false))
		d.ui.Println(fmt.Sprintf("Result: %s", outcomeText(result)))
	}
}

func (d *Driver) configureDifficulty() {
	d.ui.Clear()
	d.ui.Println("Choose bot level:")
	d.ui.Println("1 - Easy")
	d.ui.Println("2 - Normal")
	d.ui.Println("3 - Hard")

	choice, err := d.ui.Prompt("Choice:")
	if err != nil {
		return
	}

	mapping := map[string]game.Difficulty{
		"1": game.Easy,
		"2": game.Normal,
		"3": game.Hard,
	}
	if difficulty, ok := mapping[choice]; ok {
		d.session.SetDifficulty(difficulty)
	}
}

func (d *Driver) showRules() {
	d.ui.Clear()
	d.ui.Println(TitleStyle.Render(" Rules "))
	d.ui.Println("")
	d.ui.Println("36-card deck, ranks 6 through Ace. Closest to 21 without going over wins the bet.")
	d.ui.Println("King = 4, Queen = 3, Jack = 2, Ace = 11 - and Ace + Ace = 22, a bust.")
	d.ui.Println("")
	d.ui.Println("Debug commands:")
	d.ui.Println("  &get_money_<n>  - grant yourself coins")
	d.ui.Println("  &ingame_cards   - show the remaining deck")
	d.ui.Println("  &bot_cards      - show the bot's hand")
	d.ui.Println("  &rm_cards       - shrink the deck to in-play cards")
	d.ui.Println("")
	d.ui.Println("Commands work in-game; some also work from the menu.")
	d.pressEnter()
}

// debugCommand routes a &-prefixed cheat command. Only a subset is allowed
// from the main menu.
func (d *Driver) debugCommand(command string, inGame bool) {
	d.logger.Debug("debug command", "command", command, "inGame", inGame)

	if strings.HasPrefix(command, "&get_money_") {
		raw := strings.TrimPrefix(command, "&get_money_")
		amount, err := strconv.Atoi(raw)
		if err != nil {
			d.ui.Println(ErrorStyle.Render("Wrong format."))
		} else {
			d.session.GrantCoins(amount)
			d.ui.Println(SuccessStyle.Render(fmt.Sprintf("Got %d coins.", amount)))
		}
		d.pressEnter()
		return
	}

	allowedInMenu := map[string]bool{
		"&ingame_cards": true,
		"&rm_cards":     true,
	}
	if !inGame && !allowedInMenu[command] {
		d.ui.Println(WarningStyle.Render("Command not available in the menu."))
		d.pressEnter()
		return
	}

	switch command {
	case "&ingame_cards":
		d.ui.Println("")
		d.ui.Println("Cards left in deck:")
		if remaining := d.session.RemainingCards(); len(remaining) > 0 {
			d.ui.Println(FormatHand(remaining, false))
		} else {
			d.ui.Println(InfoStyle.Render("Deck is empty"))
		}
	case "&rm_cards":
		d.session.NarrowDeckToHeld()
		d.ui.Println("Deck cleaned. Only in-play cards remain.")
	case "&bot_cards":
		d.ui.Println("")
		d.ui.Println("Bot cards:")
		if cards := d.session.BotCards(); len(cards) > 0 {
			d.ui.Println(FormatHand(cards, false))
		} else {
			d.ui.Println(InfoStyle.Render("None"))
		}
	default:
		d.ui.Println(WarningStyle.Render("Unknown command."))
	}
	d.pressEnter()
}

func (d *Driver) pressEnter() {
	_, _ = d.ui.Prompt("Press Enter to continue...")
}
