package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBet(t *testing.T) {
	p := NewPlayer("yong", 1000)

	err := p.PlaceBet(50)
	require.NoError(t, err)
	assert.Equal(t, float64(950), p.Balance)
	assert.Equal(t, float64(50), p.CurrentBet)

	err = p.PlaceBet(950)
	require.NoError(t, err)
	assert.Equal(t, float64(0), p.Balance)
	assert.Equal(t, float64(1000), p.CurrentBet)
}

func TestPlaceBetRejections(t *testing.T) {
	p := NewPlayer("brian", 100)

	for _, amount := range []float64{0, -10, 100.01, 5000, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := p.PlaceBet(amount)
		require.Error(t, err, "amount %v", amount)
		_, ok := err.(InvalidBetError)
		assert.True(t, ok, "amount %v", amount)
		// Rejected bets leave the player untouched.
		assert.Equal(t, float64(100), p.Balance)
		assert.Equal(t, float64(0), p.CurrentBet)
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	p := NewPlayer("tom", 30)
	require.NoError(t, p.PlaceBet(10))
	require.NoError(t, p.PlaceBet(20))
	assert.Error(t, p.PlaceBet(1))
	assert.Equal(t, float64(0), p.Balance)
	assert.Equal(t, float64(30), p.CurrentBet)
}

func TestFoldAndReset(t *testing.T) {
	p := NewPlayer("jim", 1000)
	p.Fold()
	assert.False(t, p.Active)

	p.CurrentBet = 75
	p.Balance = 925
	p.resetForNextRound()
	assert.True(t, p.Active)
	assert.Nil(t, p.Cards)
	assert.Equal(t, float64(0), p.CurrentBet)
	assert.Equal(t, float64(925), p.Balance)
}
