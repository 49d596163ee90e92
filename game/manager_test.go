package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundHistory(t *testing.T) {
	m, err := NewGameManager(nil, rand.NewSource(1))
	require.NoError(t, err)
	require.NotEmpty(t, m.GameCode())

	g := m.Table()
	_, err = g.Join("yong")
	require.NoError(t, err)
	result, err := g.Join("brian")
	require.NoError(t, err)
	// Default environment auto-starts at two players.
	require.True(t, result.Started)

	_, err = g.Bet("yong", 50)
	require.NoError(t, err)
	_, err = g.Fold("brian")
	require.NoError(t, err)

	history := m.RoundHistory()
	require.Equal(t, 1, len(history))
	assert.Equal(t, uint32(1), history[0].RoundNum)
	assert.Equal(t, "yong", history[0].Winner)
	assert.Equal(t, float64(50), history[0].Pot)
	assert.Equal(t, "fold", history[0].SettledBy)
}

func TestManagerRecordsEveryRound(t *testing.T) {
	m, err := NewGameManager(nil, rand.NewSource(7))
	require.NoError(t, err)

	g := m.Table()
	_, err = g.Join("yong")
	require.NoError(t, err)
	_, err = g.Join("brian")
	require.NoError(t, err)

	for round := 0; round < 3; round++ {
		_, err = g.Bet("yong", 10)
		require.NoError(t, err)
		_, err = g.Bet("brian", 10)
		require.NoError(t, err)
		_, err = g.Showdown()
		require.NoError(t, err)
		_, err = g.EndRound()
		require.NoError(t, err)
		_, err = g.StartRound()
		require.NoError(t, err)
	}

	history := m.RoundHistory()
	require.Equal(t, 3, len(history))
	for i, result := range history {
		assert.Equal(t, uint32(i+1), result.RoundNum)
		assert.Equal(t, float64(20), result.Pot)
		assert.Equal(t, "showdown", result.SettledBy)
	}
}
