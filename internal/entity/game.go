package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
)

type Mark string

const (
	EmptyCell Mark = " "
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const (
	WinnerX   = "X"
	WinnerO   = "O"
	WinnerTie = "tie"
)

const BoardSize = 9

// ParseMark normalises a cell value received from the game service.
// The empty string is accepted as an empty cell.
func ParseMark(value string) (Mark, error) {
	switch Mark(value) {
	case EmptyCell, "":
		return EmptyCell, nil
	case PlayerX, PlayerO:
		return Mark(value), nil
	default:
		return EmptyCell, fmt.Errorf("unknown mark %q", value)
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}

	return board
}

func ValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

func (that Board) IsEmpty(index int) bool {
	return ValidCell(index) && that[index] == EmptyCell
}

// CheckPlayable is the local filter run before a move is sent to the service.
// It is not authoritative: the service may still reject the move.
func (that Board) CheckPlayable(index int, gameOver bool) error {
	if !ValidCell(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if gameOver {
		return apperror.ErrGameOver
	}

	if !that.IsEmpty(index) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	return nil
}

type Scores struct {
	X   int `json:"X"`
	O   int `json:"O"`
	Tie int `json:"tie"`
}

type Move struct {
	Position int  `json:"position"`
	Player   Mark `json:"player"`
}

type Options struct {
	GameMode     string `json:"gameMode"`
	Difficulty   string `json:"difficulty"`
	PlayerChoice string `json:"playerChoice"`
}

// GameState is the decoded form of any game service response.
// Scores is nil when the endpoint does not report them.
type GameState struct {
	Board         Board
	CurrentPlayer Mark
	Winner        string
	WinningCombo  []int
	GameOver      bool
	Scores        *Scores
}

func (that *GameState) HasWinner() bool {
	return that.Winner == WinnerX || that.Winner == WinnerO
}

func (that *GameState) IsTie() bool {
	return that.Winner == WinnerTie
}

type AIRound struct {
	Moves []Move
	Final GameState
}
