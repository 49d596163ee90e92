package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyager.com/cardtable/poker"
)

func cards(strs ...string) []poker.Card {
	out := make([]poker.Card, len(strs))
	for i, s := range strs {
		out[i] = poker.NewCard(s)
	}
	return out
}

func TestHandScore(t *testing.T) {
	assert.Equal(t, int32(27), handScore(cards("Ah", "Kd")))
	assert.Equal(t, int32(5), handScore(cards("2s", "3c")))
	assert.Equal(t, int32(4), handScore(cards("2s", "2h")))
	assert.Equal(t, int32(28), handScore(cards("As", "Ah")))
}

func TestBestHand(t *testing.T) {
	p1 := &Player{Name: "yong", Cards: cards("Ah", "Kd")}
	p2 := &Player{Name: "brian", Cards: cards("2s", "3c")}

	winner, scores := bestHand([]*Player{p1, p2})
	assert.Equal(t, "yong", winner.Name)
	assert.Equal(t, int32(27), scores["yong"])
	assert.Equal(t, int32(5), scores["brian"])
}

func TestBestHandTieGoesToEarlierPosition(t *testing.T) {
	// Both hands score 16.
	p1 := &Player{Name: "yong", Cards: cards("Ah", "2s")}
	p2 := &Player{Name: "brian", Cards: cards("Kd", "3c")}

	winner, scores := bestHand([]*Player{p1, p2})
	assert.Equal(t, "yong", winner.Name)
	assert.Equal(t, scores["yong"], scores["brian"])

	// Same hands, positions swapped.
	winner, _ = bestHand([]*Player{p2, p1})
	assert.Equal(t, "brian", winner.Name)
}
