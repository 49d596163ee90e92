package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	deck := NewDeck(rand.NewSource(1))
	require.Equal(t, 52, deck.Size())

	seen := make(map[Card]bool)
	cards, err := deck.Draw(52)
	require.NoError(t, err)
	for _, card := range cards {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Equal(t, 52, len(seen))
	assert.True(t, deck.Empty())
}

func TestDrawConsumesDeck(t *testing.T) {
	deck := NewDeckNoShuffle()
	first, err := deck.Draw(2)
	require.NoError(t, err)
	second, err := deck.Draw(2)
	require.NoError(t, err)

	assert.Equal(t, 48, deck.Size())
	for _, c1 := range first {
		for _, c2 := range second {
			assert.NotEqual(t, c1, c2)
		}
	}
}

func TestDrawTooManyCards(t *testing.T) {
	deck := NewDeck(rand.NewSource(1))
	_, err := deck.Draw(50)
	require.NoError(t, err)

	_, err = deck.Draw(3)
	require.Error(t, err)
	insufficientErr, ok := err.(InsufficientCardsError)
	require.True(t, ok)
	assert.Equal(t, 3, insufficientErr.Want)
	assert.Equal(t, 2, insufficientErr.Remaining)
	// A failed draw does not consume cards.
	assert.Equal(t, 2, deck.Size())
}

func TestDeckFromScript(t *testing.T) {
	playerCards := []CardsInAscii{
		{"Ah", "Kd"},
		{"2s", "3c"},
	}
	deck := DeckFromScript(playerCards)

	hand1, err := deck.Draw(2)
	require.NoError(t, err)
	hand2, err := deck.Draw(2)
	require.NoError(t, err)

	assert.Equal(t, "Ah", hand1[0].String())
	assert.Equal(t, "Kd", hand1[1].String())
	assert.Equal(t, "2s", hand2[0].String())
	assert.Equal(t, "3c", hand2[1].String())
	assert.Equal(t, 48, deck.Size())
}
