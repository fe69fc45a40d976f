package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/ochko/internal/randutil"
)

func TestNewDeckHasAllCards(t *testing.T) {
	d := New(randutil.New(1))
	require.Equal(t, Size, d.Remaining())

	seen := make(map[Card]bool)
	for _, c := range d.Pool() {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, Size)
}

func TestDrawMovesCardToUsed(t *testing.T) {
	d := New(randutil.New(2))

	card, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, Size-1, d.Remaining())
	assert.NotContains(t, d.Pool(), card)
	assert.Contains(t, d.Used(), card)
}

func TestDrawNeverRepeats(t *testing.T) {
	d := New(randutil.New(3))

	seen := make(map[Card]bool)
	for i := 0; i < Size; i++ {
		card, err := d.Draw()
		require.NoError(t, err)
		require.False(t, seen[card], "card %s drawn twice", card)
		seen[card] = true
	}

	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestRebuildExcludesUsedCards(t *testing.T) {
	d := New(randutil.New(4))

	drawn := make([]Card, 0, 10)
	for i := 0; i < 10; i++ {
		card, err := d.Draw()
		require.NoError(t, err)
		drawn = append(drawn, card)
	}

	d.Rebuild()
	assert.Equal(t, Size-10, d.Remaining())
	for _, c := range drawn {
		assert.NotContains(t, d.Pool(), c)
		assert.Contains(t, d.Used(), c)
	}
}

func TestKeepOnly(t *testing.T) {
	d := New(randutil.New(5))

	held := make([]Card, 0, 4)
	for i := 0; i < 4; i++ {
		card, err := d.Draw()
		require.NoError(t, err)
		held = append(held, card)
	}

	d.KeepOnly(held)

	// Everything undrawn is gone; only the held cards remain as used.
	assert.Equal(t, 0, d.Remaining())
	assert.ElementsMatch(t, held, d.Used())

	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestShuffleIsDeterministicUnderSeed(t *testing.T) {
	a := New(randutil.New(42))
	b := New(randutil.New(42))
	assert.Equal(t, a.Pool(), b.Pool())

	c := New(randutil.New(43))
	assert.NotEqual(t, a.Pool(), c.Pool())
}
