package game

import (
	"math"

	"github.com/rs/zerolog/log"

	"voyager.com/cardtable/logging"
	"voyager.com/cardtable/poker"
)

var playerLogger = log.With().Str("logger_name", "game::player").Logger()

// Player is a participant at the table. All monetary movement during
// a round goes through PlaceBet; the game pays out winnings directly
// at settlement.
type Player struct {
	Name       string
	Balance    float64
	Cards      []poker.Card
	CurrentBet float64
	Active     bool
}

func NewPlayer(name string, balance float64) *Player {
	return &Player{
		Name:    name,
		Balance: balance,
		Active:  true,
	}
}

// PlaceBet debits the balance and credits the player's current bet by
// the same amount. Rejections leave both untouched.
func (p *Player) PlaceBet(amount float64) error {
	// NaN compares false against every bound and would poison the
	// balance and the pot.
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return InvalidBetError{Amount: amount, Balance: p.Balance}
	}
	if amount <= 0 || amount > p.Balance {
		return InvalidBetError{Amount: amount, Balance: p.Balance}
	}
	p.Balance -= amount
	p.CurrentBet += amount
	playerLogger.Debug().
		Str(logging.PlayerNameKey, p.Name).
		Float64("amount", amount).
		Float64("balance", p.Balance).
		Msg("Bet placed")
	return nil
}

// Fold marks the player out of the current round. The game checks
// Active before invoking this.
func (p *Player) Fold() {
	p.Active = false
}

// resetForNextRound clears round state while keeping the balance.
func (p *Player) resetForNextRound() {
	p.Cards = nil
	p.CurrentBet = 0
	p.Active = true
}
