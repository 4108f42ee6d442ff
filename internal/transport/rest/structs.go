package rest

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type moveRequest struct {
	Position int `json:"position"`
}

type optionsRequest struct {
	GameMode     string `json:"gameMode"`
	Difficulty   string `json:"difficulty"`
	PlayerChoice string `json:"playerChoice"`
}

// BoardState holds the fields every endpoint answers with.
type BoardState struct {
	Board         []string `json:"board" validate:"len=9,dive,cell"`
	CurrentPlayer string   `json:"currentPlayer" validate:"omitempty,oneof=X O"`
	Winner        string   `json:"winner" validate:"omitempty,oneof=X O tie"`
	WinningCombo  []int    `json:"winningCombo" validate:"omitempty,len=3,dive,min=0,max=8"`
	GameOver      bool     `json:"gameOver"`
}

type scoresPayload struct {
	X   int `json:"X" validate:"min=0"`
	O   int `json:"O" validate:"min=0"`
	Tie int `json:"tie" validate:"min=0"`
}

type movePayload struct {
	Position *int   `json:"position" validate:"required,min=0,max=8"`
	Player   string `json:"player" validate:"required,oneof=X O"`
}

type resetResponse struct {
	BoardState
	Scores *scoresPayload `json:"scores" validate:"omitempty"`
}

type gameResponse struct {
	BoardState
	Scores *scoresPayload `json:"scores" validate:"required"`
}

type aiRoundResponse struct {
	BoardState
	Moves  []movePayload  `json:"moves" validate:"required,dive"`
	Scores *scoresPayload `json:"scores" validate:"required"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("cell", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseMark(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Errorf("failed to register cell validation: %w", err))
	}

	return validate
}

func (that *BoardState) toEntity(scores *scoresPayload) (*entity.GameState, error) {
	state := &entity.GameState{
		CurrentPlayer: entity.Mark(that.CurrentPlayer),
		Winner:        that.Winner,
		GameOver:      that.GameOver,
	}

	for i, cell := range that.Board {
		mark, err := entity.ParseMark(cell)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		state.Board[i] = mark
	}

	if len(that.WinningCombo) > 0 {
		state.WinningCombo = append([]int(nil), that.WinningCombo...)
	}

	if scores != nil {
		state.Scores = &entity.Scores{X: scores.X, O: scores.O, Tie: scores.Tie}
	}

	return state, nil
}

func (that *aiRoundResponse) toEntity() (*entity.AIRound, error) {
	final, err := that.BoardState.toEntity(that.Scores)
	if err != nil {
		return nil, err
	}

	moves := make([]entity.Move, 0, len(that.Moves))
	for _, move := range that.Moves {
		moves = append(moves, entity.Move{Position: *move.Position, Player: entity.Mark(move.Player)})
	}

	return &entity.AIRound{Moves: moves, Final: *final}, nil
}
