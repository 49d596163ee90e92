package game

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"voyager.com/cardtable/logging"
	"voyager.com/cardtable/util"
)

var managerLogger = log.With().Str("logger_name", "game::manager").Logger()

// maxRoundHistory bounds the settled rounds kept in memory.
const maxRoundHistory = 128

// Manager owns the single table run by this process. Callers reach
// the game only through the manager; there is no package-level game
// instance.
type Manager struct {
	gameCode     string
	game         *Game
	roundHistory *lru.Cache
}

func NewGameManager(handProvider HandProvider, source rand.Source) (*Manager, error) {
	history, err := lru.New(maxRoundHistory)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create round history cache")
	}

	gameCode := uuid.New().String()
	config := &GameConfig{
		GameCode:       gameCode,
		DefaultBalance: util.Env.GetDefaultBalance(),
		MinPlayers:     util.Env.GetMinPlayers(),
		AutoStart:      util.Env.ShouldAutoStart(),
	}
	m := &Manager{
		gameCode:     gameCode,
		roundHistory: history,
	}
	m.game = NewGame(config, handProvider, source)
	m.game.SetRoundListener(m.roundSettled)

	managerLogger.Info().
		Str(logging.GameCodeKey, gameCode).
		Float64("defaultBalance", config.DefaultBalance).
		Int("minPlayers", config.MinPlayers).
		Bool("autoStart", config.AutoStart).
		Msg("Table initialized")
	return m, nil
}

func (m *Manager) GameCode() string {
	return m.gameCode
}

func (m *Manager) Table() *Game {
	return m.game
}

func (m *Manager) roundSettled(result RoundResult) {
	m.roundHistory.Add(result.RoundNum, result)
	managerLogger.Info().
		Str(logging.GameCodeKey, m.gameCode).
		Uint32(logging.RoundNumKey, result.RoundNum).
		Str(logging.PlayerNameKey, result.Winner).
		Str(logging.ActionKey, result.SettledBy).
		Msg("Round recorded in history")
}

// RoundHistory returns the recorded results, oldest first.
func (m *Manager) RoundHistory() []RoundResult {
	keys := m.roundHistory.Keys()
	results := make([]RoundResult, 0, len(keys))
	for _, key := range keys {
		if value, ok := m.roundHistory.Peek(key); ok {
			results = append(results, value.(RoundResult))
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].RoundNum < results[j].RoundNum
	})
	return results
}
