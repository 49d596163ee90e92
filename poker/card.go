package poker

import (
	"fmt"
	"strings"
)

// Card packs a rank and a suit into one byte-sized value.
// high 4 bits rank of the card, low 4 bits suit of the card
// 0000: 2
// 0001: 3
// 0010: 4
// 0011: 5
// 0100: 6
// 0101: 7
// 0110: 8
// 0111: 9
// 1000: 10
// 1001: J
// 1010: Q
// 1011: K
// 1100: A
// 0001: Spade
// 0010: Heart
// 0100: Diamond
// 1000: Club
type Card int32

var (
	strRanks = "23456789TJQKA"

	charRankToIntRank = map[uint8]int32{}
	charSuitToIntSuit = map[uint8]int32{
		's': 1, // spades
		'h': 2, // hearts
		'd': 4, // diamonds
		'c': 8, // clubs
	}
	intSuitToCharSuit = "xshxdxxxc"
)

var prettySuits = map[int]string{
	1: "♠", // spades
	2: "❤", // hearts
	4: "♦", // diamonds
	8: "♣", // clubs
}

func init() {
	for i := range strRanks {
		charRankToIntRank[strRanks[i]] = int32(i)
	}
}

func NewCard(s string) Card {
	rankInt := charRankToIntRank[s[0]]
	suitInt := charSuitToIntSuit[s[1]]

	return Card(rankInt<<4 | suitInt)
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) != 4 || b[0] != '"' || b[3] != '"' {
		return fmt.Errorf("invalid card %q", string(b))
	}
	rank, okRank := charRankToIntRank[b[1]]
	suit, okSuit := charSuitToIntSuit[b[2]]
	if !okRank || !okSuit {
		return fmt.Errorf("invalid card %q", string(b))
	}
	*c = Card(rank<<4 | suit)
	return nil
}

func (c Card) String() string {
	return string(strRanks[c.Rank()]) + string(intSuitToCharSuit[c.Suit()])
}

func (c Card) Rank() int32 {
	return (int32(c) >> 4) & 0xF
}

func (c Card) Suit() int32 {
	return int32(c) & 0xF
}

// RankValue is the scoring value of the card: 2-10 at face value,
// J=11, Q=12, K=13, A=14.
func (c Card) RankValue() int32 {
	return c.Rank() + 2
}

func CardToString(card Card) string {
	suit := int(card.Suit())
	rank := int(card.Rank())
	return fmt.Sprintf("%s%s", string(strRanks[rank]), prettySuits[suit])
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", CardToString(c))
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

func PrintCards(cards []Card) string {
	return CardsToString(cards)
}
