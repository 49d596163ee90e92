package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	card := NewCard("Ah")
	assert.Equal(t, int32(12), card.Rank())
	assert.Equal(t, int32(2), card.Suit())
	assert.Equal(t, "Ah", card.String())

	card = NewCard("2s")
	assert.Equal(t, int32(0), card.Rank())
	assert.Equal(t, int32(1), card.Suit())
	assert.Equal(t, "2s", card.String())
}

func TestCardRankValue(t *testing.T) {
	tests := []struct {
		card  string
		value int32
	}{
		{"2c", 2},
		{"9d", 9},
		{"Ts", 10},
		{"Jh", 11},
		{"Qc", 12},
		{"Kd", 13},
		{"As", 14},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.value, NewCard(tt.card).RankValue(), "card %s", tt.card)
	}
}

func TestCardJSON(t *testing.T) {
	hand := []Card{NewCard("Ah"), NewCard("Kd")}
	data, err := json.Marshal(hand)
	require.NoError(t, err)
	assert.Equal(t, `["Ah","Kd"]`, string(data))

	var parsed []Card
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, hand, parsed)
}

func TestCardJSONInvalid(t *testing.T) {
	var card Card
	for _, input := range []string{`""`, `"A"`, `"Ahh"`, `"Xz"`, `"A1"`} {
		assert.Error(t, json.Unmarshal([]byte(input), &card), "input %s", input)
	}
}
