package game

import "voyager.com/cardtable/poker"

// Result payloads returned by the game operations. The rest layer
// serializes these as-is.

type JoinResult struct {
	Players   []string `json:"players"`
	Started   bool     `json:"started"`
	FirstTurn string   `json:"firstTurn,omitempty"`
}

type StartResult struct {
	FirstTurn string `json:"firstTurn"`
}

type BetResult struct {
	Pot float64 `json:"pot"`
}

type FoldResult struct {
	Settled bool    `json:"settled"`
	Pot     float64 `json:"pot"`
	Winner  string  `json:"winner,omitempty"`
	Balance float64 `json:"balance,omitempty"`
}

type ShowdownResult struct {
	Winner  string                  `json:"winner"`
	Balance float64                 `json:"balance"`
	Scores  map[string]int32        `json:"scores"`
	Hands   map[string][]poker.Card `json:"hands"`
}

type EndResult struct {
	Winner string `json:"winner"`
}

type PlayerStatus struct {
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	CurrentBet float64 `json:"currentBet"`
	IsActive   bool    `json:"isActive"`
}

type TableStatus struct {
	GameCode    string         `json:"gameCode"`
	Active      bool           `json:"active"`
	Pot         float64        `json:"pot"`
	CurrentTurn string         `json:"currentTurn,omitempty"`
	Players     []PlayerStatus `json:"players"`
}

// RoundResult is recorded for every settled round and kept in the
// manager's round history.
type RoundResult struct {
	RoundNum  uint32  `json:"roundNum"`
	Winner    string  `json:"winner"`
	Pot       float64 `json:"pot"`
	SettledBy string  `json:"settledBy"` // fold, showdown, or end
}
