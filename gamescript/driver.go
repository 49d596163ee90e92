package gamescript

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"voyager.com/cardtable/game"
	"voyager.com/cardtable/logging"
	"voyager.com/cardtable/poker"
)

var driverLogger = log.With().Str("logger_name", "gamescript::driver").Logger()

// Driver runs a script against a real table and verifies each step.
type Driver struct {
	script *Script
	game   *game.Game
}

func NewDriver(script *Script, source rand.Source) *Driver {
	config := &game.GameConfig{
		GameCode:       "SCRIPT",
		DefaultBalance: script.Game.DefaultBalance,
		MinPlayers:     script.Game.MinPlayers,
		AutoStart:      script.Game.AutoStart,
	}
	if config.DefaultBalance == 0 {
		config.DefaultBalance = 1000
	}
	if config.MinPlayers == 0 {
		config.MinPlayers = 2
	}

	var provider game.HandProvider
	if script.HasScriptedCards() {
		hands := make([]poker.CardsInAscii, len(script.Players))
		for i, p := range script.Players {
			hands[i] = poker.CardsInAscii(p.Cards)
		}
		provider = game.ScriptedHandProvider{Hands: hands}
	}

	return &Driver{
		script: script,
		game:   game.NewGame(config, provider, source),
	}
}

func (d *Driver) Table() *game.Game {
	return d.game
}

// Run executes every scripted action. The first failed expectation
// stops the run.
func (d *Driver) Run() error {
	for i, action := range d.script.Actions {
		if err := d.runAction(action); err != nil {
			return errors.Wrapf(err, "action %d (%s %s)", i, action.Action, action.Player)
		}
	}
	return nil
}

func (d *Driver) runAction(action Action) error {
	driverLogger.Debug().
		Str(logging.ActionKey, action.Action).
		Str(logging.PlayerNameKey, action.Player).
		Msg("Running scripted action")

	switch action.Action {
	case "join":
		_, err := d.game.Join(action.Player)
		return d.checkOutcome(action, err)
	case "start":
		result, err := d.game.StartRound()
		if outcomeErr := d.checkOutcome(action, err); outcomeErr != nil {
			return outcomeErr
		}
		if err == nil && action.Verify != nil && action.Verify.FirstTurn != "" {
			if result.FirstTurn != action.Verify.FirstTurn {
				return errors.Errorf("expected first turn %s, got %s", action.Verify.FirstTurn, result.FirstTurn)
			}
		}
		return nil
	case "bet":
		result, err := d.game.Bet(action.Player, action.Amount)
		if outcomeErr := d.checkOutcome(action, err); outcomeErr != nil {
			return outcomeErr
		}
		if err == nil && action.Verify != nil && action.Verify.Pot != nil {
			if result.Pot != *action.Verify.Pot {
				return errors.Errorf("expected pot %v, got %v", *action.Verify.Pot, result.Pot)
			}
		}
		return d.verifyTable(action)
	case "fold":
		result, err := d.game.Fold(action.Player)
		if outcomeErr := d.checkOutcome(action, err); outcomeErr != nil {
			return outcomeErr
		}
		if err == nil && action.Verify != nil {
			v := action.Verify
			if v.Settled != nil && result.Settled != *v.Settled {
				return errors.Errorf("expected settled %v, got %v", *v.Settled, result.Settled)
			}
			if v.Winner != "" && result.Winner != v.Winner {
				return errors.Errorf("expected winner %s, got %s", v.Winner, result.Winner)
			}
			if v.Balance != nil && result.Balance != *v.Balance {
				return errors.Errorf("expected winner balance %v, got %v", *v.Balance, result.Balance)
			}
			if v.Pot != nil && result.Pot != *v.Pot {
				return errors.Errorf("expected pot %v, got %v", *v.Pot, result.Pot)
			}
		}
		return d.verifyTable(action)
	case "showdown":
		result, err := d.game.Showdown()
		if outcomeErr := d.checkOutcome(action, err); outcomeErr != nil {
			return outcomeErr
		}
		if err == nil && action.Verify != nil {
			v := action.Verify
			if v.Winner != "" && result.Winner != v.Winner {
				return errors.Errorf("expected winner %s, got %s", v.Winner, result.Winner)
			}
			if v.Balance != nil && result.Balance != *v.Balance {
				return errors.Errorf("expected winner balance %v, got %v", *v.Balance, result.Balance)
			}
		}
		return nil
	case "end":
		result, err := d.game.EndRound()
		if outcomeErr := d.checkOutcome(action, err); outcomeErr != nil {
			return outcomeErr
		}
		if err == nil && action.Verify != nil && action.Verify.Winner != "" {
			if result.Winner != action.Verify.Winner {
				return errors.Errorf("expected winner %s, got %s", action.Verify.Winner, result.Winner)
			}
		}
		return nil
	}
	return errors.Errorf("unknown action %q", action.Action)
}

// checkOutcome matches an operation error against the scripted
// expectation.
func (d *Driver) checkOutcome(action Action, err error) error {
	if action.ExpectError == "" {
		if err != nil {
			return errors.Wrap(err, "unexpected error")
		}
		return nil
	}
	if err == nil {
		return errors.Errorf("expected error %s, action succeeded", action.ExpectError)
	}
	kind := errorKind(err)
	if kind != action.ExpectError {
		return errors.Errorf("expected error %s, got %s (%v)", action.ExpectError, kind, err)
	}
	return nil
}

func (d *Driver) verifyTable(action Action) error {
	if action.Verify == nil || action.Verify.CurrentTurn == "" {
		return nil
	}
	status := d.game.Status()
	if status.CurrentTurn != action.Verify.CurrentTurn {
		return errors.Errorf("expected current turn %s, got %s", action.Verify.CurrentTurn, status.CurrentTurn)
	}
	return nil
}

func errorKind(err error) string {
	switch errors.Cause(err).(type) {
	case game.DuplicateNameError:
		return "duplicate-name"
	case game.GameAlreadyStartedError:
		return "game-already-started"
	case game.GameNotActiveError:
		return "game-not-active"
	case game.TurnOrderUninitializedError:
		return "turn-order-uninitialized"
	case game.PlayerNotFoundError:
		return "player-not-found"
	case game.PlayerInactiveError:
		return "player-inactive"
	case game.NotYourTurnError:
		return "not-your-turn"
	case game.InvalidBetError:
		return "invalid-bet"
	case game.InsufficientPlayersError:
		return "insufficient-players"
	case poker.InsufficientCardsError:
		return "insufficient-cards"
	}
	return "unknown"
}
