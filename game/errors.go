package game

import "fmt"

type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("Player name %s is already taken", e.Name)
}

type GameAlreadyStartedError struct {
}

func (e GameAlreadyStartedError) Error() string {
	return "Game already started"
}

type GameNotActiveError struct {
}

func (e GameNotActiveError) Error() string {
	return "Game not active"
}

type TurnOrderUninitializedError struct {
}

func (e TurnOrderUninitializedError) Error() string {
	return "Turn order not initialized"
}

type PlayerNotFoundError struct {
	Name string
}

func (e PlayerNotFoundError) Error() string {
	return fmt.Sprintf("Player %s not found", e.Name)
}

type PlayerInactiveError struct {
	Name string
}

func (e PlayerInactiveError) Error() string {
	return fmt.Sprintf("Player %s already folded", e.Name)
}

type NotYourTurnError struct {
	Name        string
	CurrentTurn string
}

func (e NotYourTurnError) Error() string {
	return fmt.Sprintf("Not %s's turn (current turn: %s)", e.Name, e.CurrentTurn)
}

type InvalidBetError struct {
	Amount  float64
	Balance float64
}

func (e InvalidBetError) Error() string {
	if e.Amount <= 0 {
		return fmt.Sprintf("Bet amount must be positive, got %v", e.Amount)
	}
	return fmt.Sprintf("Bet %v exceeds balance %v", e.Amount, e.Balance)
}

type InsufficientPlayersError struct {
	Want int
	Got  int
}

func (e InsufficientPlayersError) Error() string {
	return fmt.Sprintf("Need at least %d players, have %d", e.Want, e.Got)
}
