package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ochko/internal/deck"
	"github.com/lox/ochko/internal/game"
	"github.com/lox/ochko/internal/randutil"
)

// fakeUI feeds scripted responses to prompts and records all output
type fakeUI struct {
	inputs []string
	index  int
	lines  []string
}

func (f *fakeUI) Println(s string) {
	f.lines = append(f.lines, s)
}

func (f *fakeUI) Prompt(label string) (string, error) {
	if f.index >= len(f.inputs) {
		return "", io.EOF
	}
	input := f.inputs[f.index]
	f.index++
	return input, nil
}

func (f *fakeUI) Clear() {}

func (f *fakeUI) output() string {
	return strings.Join(f.lines, "\n")
}

func testDriver(t *testing.T, ui *fakeUI) (*Driver, *game.Session) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	session := game.NewSession(game.Options{
		RNG:    randutil.New(1),
		Logger: logger,
	})
	return NewDriver(session, ui, logger), session
}

func TestRunQuits(t *testing.T) {
	ui := &fakeUI{inputs: []string{"4"}}
	d, _ := testDriver(t, ui)
	require.NoError(t, d.Run())
	assert.Contains(t, ui.output(), "Play a round")
}

func TestRunExitsWhenUICloses(t *testing.T) {
	ui := &fakeUI{}
	d, _ := testDriver(t, ui)
	require.NoError(t, d.Run())
}

func TestPromptBetRejectsBadInput(t *testing.T) {
	ui := &fakeUI{inputs: []string{"abc", "0", "500", "25"}}
	d, _ := testDriver(t, ui)

	bet, err := d.promptBet(game.BetView{Coins: 100, OpponentCoins: 100})
	require.NoError(t, err)
	assert.Equal(t, 25, bet)
	assert.Contains(t, ui.output(), "Bad bet.")
}

func TestPromptDecision(t *testing.T) {
	ui := &fakeUI{inputs: []string{"maybe", "y"}}
	d, _ := testDriver(t, ui)

	view := game.TurnView{Hand: mustCards(t, "Ts6h"), Score: 16}
	decision, err := d.promptDecision(view)
	require.NoError(t, err)
	assert.Equal(t, game.Hit, decision)
	assert.Contains(t, ui.output(), "Unrecognised choice")

	ui = &fakeUI{inputs: []string{"n"}}
	d, _ = testDriver(t, ui)
	decision, err = d.promptDecision(view)
	require.NoError(t, err)
	assert.Equal(t, game.Stand, decision)
}

func TestPromptDecisionRoutesDebugCommands(t *testing.T) {
	// &bot_cards renders and waits for enter, then the prompt comes back.
	ui := &fakeUI{inputs: []string{"&bot_cards", "", "n"}}
	d, _ := testDriver(t, ui)

	view := game.TurnView{Hand: mustCards(t, "Ts6h"), Score: 16}
	decision, err := d.promptDecision(view)
	require.NoError(t, err)
	assert.Equal(t, game.Stand, decision)
	assert.Contains(t, ui.output(), "Bot cards:")
}

func TestDebugGrantCoins(t *testing.T) {
	ui := &fakeUI{inputs: []string{""}}
	d, session := testDriver(t, ui)

	d.debugCommand("&get_money_50", true)
	assert.Equal(t, 150, session.Human.Coins)
	assert.Contains(t, ui.output(), "Got 50 coins.")

	ui.inputs = append(ui.inputs, "")
	d.debugCommand("&get_money_oops", true)
	assert.Contains(t, ui.output(), "Wrong format.")
}

func TestDebugCommandsRestrictedInMenu(t *testing.T) {
	ui := &fakeUI{inputs: []string{"", ""}}
	d, _ := testDriver(t, ui)

	d.debugCommand("&bot_cards", false)
	assert.Contains(t, ui.output(), "not available in the menu")

	d.debugCommand("&ingame_cards", false)
	assert.Contains(t, ui.output(), "Cards left in deck:")
}

func TestDebugNarrowDeck(t *testing.T) {
	ui := &fakeUI{inputs: []string{""}}
	d, session := testDriver(t, ui)

	d.debugCommand("&rm_cards", true)
	assert.Contains(t, ui.output(), "Deck cleaned.")
	assert.Equal(t, 0, session.Deck.Remaining())
}

func mustCards(t *testing.T, s string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	require.NoError(t, err)
	return cards
}
