package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = engine.MarkX
	PlayerO   = engine.MarkO
	PlayerTie = "-"

	EmptyCell = engine.EmptyCell
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string       `json:"id"`
	Board   engine.Board `json:"board"`
	Winner  string       `json:"winner"`
	Status  string       `json:"status"`
	Turn    string       `json:"player_turn"`
	Players []*Player    `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  engine.NewBoard(),
		Turn:   PlayerX,
		Status: StatusWaiting,
	}
}

// DetermineGameResult - returns the winning mark, PlayerTie for a full drawn
// board, or EmptyCell while the game can still continue.
func (that *Game) DetermineGameResult() string {
	if winner := that.Board.Winner(); winner != EmptyCell {
		return winner
	}

	if that.Board.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.Place(cell, playerMark) {
		return apperror.ErrCellOccupied
	}

	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
