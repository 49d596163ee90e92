package game

import (
	"voyager.com/cardtable/poker"
)

// handScore sums the rank values of the cards in a hand. With two
// cards the score ranges from 4 (two deuces) to 28 (two aces).
func handScore(cards []poker.Card) int32 {
	var score int32
	for _, c := range cards {
		score += c.RankValue()
	}
	return score
}

// bestHand picks the winner among the given players by hand score.
// Players must be passed in turn order position order; a tie goes to
// the player listed first.
func bestHand(players []*Player) (*Player, map[string]int32) {
	scores := make(map[string]int32, len(players))
	var winner *Player
	var bestScore int32
	for _, p := range players {
		score := handScore(p.Cards)
		scores[p.Name] = score
		if winner == nil || score > bestScore {
			winner = p
			bestScore = score
		}
	}
	return winner, scores
}
