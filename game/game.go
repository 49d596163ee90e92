package game

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"voyager.com/cardtable/logging"
	"voyager.com/cardtable/poker"
	"voyager.com/cardtable/util"
	"voyager.com/cardtable/util/random"
)

var gameLogger = log.With().Str("logger_name", "game::game").Logger()

type GameStatus int32

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusSettled
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "WAITING"
	case GameStatusActive:
		return "ACTIVE"
	case GameStatusSettled:
		return "SETTLED"
	default:
		return "UNKNOWN"
	}
}

type GameConfig struct {
	GameCode       string
	DefaultBalance float64
	MinPlayers     int
	AutoStart      bool
}

// HandProvider supplies the deck for a new round. The default
// provider shuffles a fresh deck; scripted providers arrange known
// hands for tests.
type HandProvider interface {
	RoundDeck(playerNames []string) (*poker.Deck, error)
}

type shuffledHandProvider struct {
	source rand.Source
}

func (p shuffledHandProvider) RoundDeck(playerNames []string) (*poker.Deck, error) {
	return poker.NewDeck(p.source), nil
}

// ScriptedHandProvider deals the configured hands to players in join
// order. Used by the script test driver.
type ScriptedHandProvider struct {
	Hands []poker.CardsInAscii
}

func (p ScriptedHandProvider) RoundDeck(playerNames []string) (*poker.Deck, error) {
	if len(p.Hands) != len(playerNames) {
		return nil, errors.Errorf("scripted hands for %d players, round has %d", len(p.Hands), len(playerNames))
	}
	return poker.DeckFromScript(p.Hands), nil
}

// Game is the state machine for a single table. Every exported
// operation takes the lock; no operation can observe a partially
// updated table.
type Game struct {
	lock sync.Mutex

	config       *GameConfig
	players      []*Player
	deck         *poker.Deck
	pot          float64
	turnOrder    []string
	turnIndex    int
	status       GameStatus
	roundNum     uint32
	lastWinner   string
	randGen      *rand.Rand
	handProvider HandProvider

	roundListener func(RoundResult)
}

func NewGame(config *GameConfig, handProvider HandProvider, source rand.Source) *Game {
	if source == nil {
		source = random.NewSource()
	}
	if handProvider == nil {
		handProvider = shuffledHandProvider{source: source}
	}
	return &Game{
		config:       config,
		status:       GameStatusWaiting,
		randGen:      rand.New(source),
		handProvider: handProvider,
	}
}

// SetRoundListener registers a callback invoked after every pot
// payout, while the game lock is held.
func (g *Game) SetRoundListener(listener func(RoundResult)) {
	g.roundListener = listener
}

// Join adds a player to the table. When auto-start is enabled and
// enough players have joined, the round starts within the same call.
func (g *Game) Join(name string) (*JoinResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.status != GameStatusWaiting {
		return nil, GameAlreadyStartedError{}
	}
	for _, p := range g.players {
		if p.Name == name {
			return nil, DuplicateNameError{Name: name}
		}
	}

	g.players = append(g.players, NewPlayer(name, g.config.DefaultBalance))
	util.Metrics.PlayerJoined()
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Str(logging.PlayerNameKey, name).
		Msgf("Player joined. %d players at the table", len(g.players))

	result := &JoinResult{Players: g.playerNames()}
	if g.config.AutoStart && len(g.players) >= g.config.MinPlayers {
		startResult, err := g.startRound()
		if err != nil {
			// Take the join back so a failed auto-start leaves the
			// table unchanged.
			g.players = g.players[:len(g.players)-1]
			return nil, err
		}
		result.Started = true
		result.FirstTurn = startResult.FirstTurn
	}
	return result, nil
}

// StartRound deals a new round. Requires WAITING status and the
// minimum player count.
func (g *Game) StartRound() (*StartResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.startRound()
}

func (g *Game) startRound() (*StartResult, error) {
	if g.status != GameStatusWaiting {
		return nil, GameAlreadyStartedError{}
	}
	if len(g.players) < g.config.MinPlayers {
		return nil, InsufficientPlayersError{Want: g.config.MinPlayers, Got: len(g.players)}
	}

	names := g.playerNames()
	deck, err := g.handProvider.RoundDeck(names)
	if err != nil {
		return nil, errors.Wrap(err, "unable to set up hands for the round")
	}

	// Draw every hand before touching player state so a short deck
	// leaves the table unchanged.
	hands := make([][]poker.Card, len(g.players))
	for i := range g.players {
		cards, err := deck.Draw(2)
		if err != nil {
			return nil, err
		}
		hands[i] = cards
	}
	for i, p := range g.players {
		p.Cards = hands[i]
		p.CurrentBet = 0
		p.Active = true
	}

	g.deck = deck
	g.pot = 0
	g.lastWinner = ""
	g.turnOrder = names
	g.turnIndex = 0
	g.status = GameStatusActive
	g.roundNum++

	util.Metrics.RoundStarted()
	util.Metrics.SetPotSize(0)
	util.Metrics.SetActivePlayers(len(g.players))
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Uint32(logging.RoundNumKey, g.roundNum).
		Str("firstTurn", g.turnOrder[0]).
		Msg("Round started")

	return &StartResult{FirstTurn: g.turnOrder[0]}, nil
}

// Bet places a bet for the named player and passes the turn to the
// next active player.
func (g *Game) Bet(name string, amount float64) (*BetResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.status != GameStatusActive {
		return nil, GameNotActiveError{}
	}
	if len(g.turnOrder) == 0 {
		return nil, TurnOrderUninitializedError{}
	}
	player := g.playerByName(name)
	if player == nil {
		return nil, PlayerNotFoundError{Name: name}
	}
	if !player.Active {
		return nil, PlayerInactiveError{Name: name}
	}
	if g.turnOrder[g.turnIndex] != name {
		return nil, NotYourTurnError{Name: name, CurrentTurn: g.turnOrder[g.turnIndex]}
	}
	if err := player.PlaceBet(amount); err != nil {
		return nil, err
	}

	g.pot += amount
	g.advanceTurn()

	util.Metrics.BetPlaced()
	util.Metrics.SetPotSize(g.pot)
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Str(logging.PlayerNameKey, name).
		Float64("amount", amount).
		Float64(logging.PotKey, g.pot).
		Msg("Bet placed")

	return &BetResult{Pot: g.pot}, nil
}

// Fold marks the named player out of the round. When one active
// player remains, the pot is paid out and the round settles.
func (g *Game) Fold(name string) (*FoldResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.status != GameStatusActive {
		return nil, GameNotActiveError{}
	}
	player := g.playerByName(name)
	if player == nil {
		return nil, PlayerNotFoundError{Name: name}
	}
	if !player.Active {
		return nil, PlayerInactiveError{Name: name}
	}

	player.Fold()
	util.Metrics.PlayerFolded()
	active := g.activePlayers()
	util.Metrics.SetActivePlayers(len(active))
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Str(logging.PlayerNameKey, name).
		Msgf("Player folded. %d players remain", len(active))

	if len(active) == 1 {
		winner := active[0]
		g.payPot(winner, "fold")
		return &FoldResult{Settled: true, Winner: winner.Name, Balance: winner.Balance}, nil
	}

	g.advanceTurn()
	return &FoldResult{Pot: g.pot}, nil
}

// Showdown compares the active players' hands and pays the pot to the
// highest score. Ties go to the earlier turn order position.
func (g *Game) Showdown() (*ShowdownResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.status != GameStatusActive {
		return nil, GameNotActiveError{}
	}
	active := g.activePlayers()
	if len(active) < 2 {
		return nil, InsufficientPlayersError{Want: 2, Got: len(active)}
	}

	winner, scores := bestHand(active)
	hands := make(map[string][]poker.Card, len(active))
	for _, p := range active {
		hands[p.Name] = p.Cards
	}
	util.Metrics.ShowdownRun()
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Str(logging.PlayerNameKey, winner.Name).
		Str("hand", poker.PrintCards(winner.Cards)).
		Int32("score", scores[winner.Name]).
		Msg("Showdown resolved")
	g.payPot(winner, "showdown")

	return &ShowdownResult{Winner: winner.Name, Balance: winner.Balance, Scores: scores, Hands: hands}, nil
}

// EndRound settles an unfinished round by paying the pot to a random
// active player, then resets the table for the next round. Balances
// persist across rounds.
func (g *Game) EndRound() (*EndResult, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.status == GameStatusWaiting {
		return nil, GameNotActiveError{}
	}

	winner := g.lastWinner
	if g.status == GameStatusActive {
		active := g.activePlayers()
		if len(active) > 0 {
			fallback := active[g.randGen.Intn(len(active))]
			g.payPot(fallback, "end")
			winner = fallback.Name
		}
	}

	for _, p := range g.players {
		p.resetForNextRound()
	}
	g.deck = nil
	g.pot = 0
	g.turnOrder = nil
	g.turnIndex = 0
	g.status = GameStatusWaiting

	util.Metrics.SetPotSize(0)
	util.Metrics.SetActivePlayers(0)
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Uint32(logging.RoundNumKey, g.roundNum).
		Str(logging.PlayerNameKey, winner).
		Msg("Round ended. Table reset")

	return &EndResult{Winner: winner}, nil
}

// Status reports a snapshot of the table.
func (g *Game) Status() *TableStatus {
	g.lock.Lock()
	defer g.lock.Unlock()

	status := &TableStatus{
		GameCode: g.config.GameCode,
		Active:   g.status == GameStatusActive,
		Pot:      g.pot,
		Players:  make([]PlayerStatus, 0, len(g.players)),
	}
	if g.status == GameStatusActive && len(g.turnOrder) > 0 {
		status.CurrentTurn = g.turnOrder[g.turnIndex]
	}
	for _, p := range g.players {
		status.Players = append(status.Players, PlayerStatus{
			Name:       p.Name,
			Balance:    p.Balance,
			CurrentBet: p.CurrentBet,
			IsActive:   p.Active,
		})
	}
	return status
}

// payPot moves the entire pot to the winner and settles the round.
// Caller holds the lock.
func (g *Game) payPot(winner *Player, settledBy string) {
	pot := g.pot
	winner.Balance += pot
	g.pot = 0
	g.status = GameStatusSettled
	g.lastWinner = winner.Name

	util.Metrics.RoundSettled()
	util.Metrics.SetPotSize(0)
	gameLogger.Info().
		Str(logging.GameCodeKey, g.config.GameCode).
		Uint32(logging.RoundNumKey, g.roundNum).
		Str(logging.PlayerNameKey, winner.Name).
		Float64(logging.PotKey, pot).
		Msg("Pot paid out")

	if g.roundListener != nil {
		g.roundListener(RoundResult{
			RoundNum:  g.roundNum,
			Winner:    winner.Name,
			Pot:       pot,
			SettledBy: settledBy,
		})
	}
}

// advanceTurn rotates the turn index to the next active player.
// Caller holds the lock.
func (g *Game) advanceTurn() {
	if len(g.turnOrder) == 0 {
		return
	}
	for i := 0; i < len(g.turnOrder); i++ {
		g.turnIndex = (g.turnIndex + 1) % len(g.turnOrder)
		p := g.playerByName(g.turnOrder[g.turnIndex])
		if p != nil && p.Active {
			return
		}
	}
}

func (g *Game) playerByName(name string) *Player {
	for _, p := range g.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (g *Game) activePlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

func (g *Game) playerNames() []string {
	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name
	}
	return names
}
