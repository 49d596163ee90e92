package poker

import (
	"fmt"
	"math/rand"

	"voyager.com/cardtable/util/random"
)

var fullDeck *Deck

func init() {
	fullDeck = &Deck{cards: initializeFullCards()}
}

// InsufficientCardsError is returned by Draw when the deck does not
// hold enough undealt cards.
type InsufficientCardsError struct {
	Want      int
	Remaining int
}

func (e InsufficientCardsError) Error() string {
	return fmt.Sprintf("Cannot draw %d cards, only %d remaining in deck", e.Want, e.Remaining)
}

type Deck struct {
	cards   []Card
	randGen *rand.Rand
}

func NewDeck(source rand.Source) *Deck {
	if source == nil {
		source = random.NewSource()
	}
	randGen := rand.New(source)
	deck := &Deck{randGen: randGen}
	deck.Shuffle()
	return deck
}

func NewDeckNoShuffle() *Deck {
	deck := &Deck{}
	deck.cards = make([]Card, len(fullDeck.cards))
	copy(deck.cards, fullDeck.cards)
	return deck
}

func (deck *Deck) Shuffle() *Deck {
	deck.cards = make([]Card, len(fullDeck.cards))
	copy(deck.cards, fullDeck.cards)

	randGen := deck.randGen
	if randGen == nil {
		randGen = rand.New(random.NewSource())
	}
	for i := range deck.cards {
		loc := int(randGen.Uint32() % 52)
		deck.cards[i], deck.cards[loc] = deck.cards[loc], deck.cards[i]
	}

	return deck
}

// Draw removes and returns n cards from the top of the deck.
func (deck *Deck) Draw(n int) ([]Card, error) {
	if n > len(deck.cards) {
		return nil, InsufficientCardsError{Want: n, Remaining: len(deck.cards)}
	}
	cards := make([]Card, n)
	copy(cards, deck.cards[:n])
	deck.cards = deck.cards[n:]
	return cards, nil
}

func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

func (deck *Deck) Size() int {
	return len(deck.cards)
}

func initializeFullCards() []Card {
	var cards []Card

	for i := range strRanks {
		for suit := range charSuitToIntSuit {
			cards = append(cards, NewCard(string(strRanks[i])+string(suit)))
		}
	}

	return cards
}

type CardsInAscii []string

// DeckFromScript arranges a deck so that dealing two cards to each
// player in order hands out exactly the scripted cards. The rest of
// the deck stays shuffled.
func DeckFromScript(playerCards []CardsInAscii) *Deck {
	deck := NewDeck(nil)
	for i, cards := range playerCards {
		for j, cardStr := range cards {
			deckIndex := i*len(cards) + j
			card := NewCard(cardStr)
			cardLoc := deck.getCardLoc(card)
			currentCard := deck.cards[deckIndex]
			deck.cards[deckIndex] = card
			deck.cards[cardLoc] = currentCard
		}
	}
	return deck
}

func (deck *Deck) getCardLoc(cardToLocate Card) int {
	for i, card := range deck.cards {
		if card == cardToLocate {
			return i
		}
	}
	return -1
}
