package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/view"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-client/mocks/usecase"
)

const (
	testDelay = 500 * time.Millisecond
	waitFor   = time.Second
	tick      = time.Millisecond
)

var errRedisDown = errors.New("redis down")

func newTestReconciler(t *testing.T) (*Reconciler, *mockedUseCase.MockgameService, *clock.Mock) {
	t.Helper()

	service := mockedUseCase.NewMockgameService(t)
	clk := clock.NewMock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewReconciler(logger, service, nil, clk, testDelay), service, clk
}

func boardOf(marks map[int]entity.Mark) entity.Board {
	board := entity.NewBoard()
	for index, mark := range marks {
		board[index] = mark
	}

	return board
}

func freshGame() *entity.GameState {
	return &entity.GameState{Board: entity.NewBoard(), CurrentPlayer: entity.PlayerX}
}

func xWinsTopRow() *entity.GameState {
	return &entity.GameState{
		Board: boardOf(map[int]entity.Mark{
			0: entity.PlayerX, 1: entity.PlayerX, 2: entity.PlayerX,
			3: entity.PlayerO, 4: entity.PlayerO,
		}),
		CurrentPlayer: entity.PlayerO,
		Winner:        entity.WinnerX,
		WinningCombo:  []int{0, 1, 2},
		GameOver:      true,
		Scores:        &entity.Scores{X: 1},
	}
}

func markedCells(frame view.Frame) int {
	return len(frame.CellsWith(view.ClassX)) + len(frame.CellsWith(view.ClassO))
}

func initialize(t *testing.T, reconciler *Reconciler, service *mockedUseCase.MockgameService, state *entity.GameState) {
	t.Helper()

	service.EXPECT().ResetGame(mock.Anything).Return(state, nil).Once()
	require.NoError(t, reconciler.Initialize(context.Background()))
}

func TestReconciler_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("Paints the fresh game", func(t *testing.T) {
		// Given: a service that answers with an empty board and X to play
		reconciler, service, _ := newTestReconciler(t)
		service.EXPECT().ResetGame(mock.Anything).Return(freshGame(), nil).Once()

		// When: initializing
		err := reconciler.Initialize(ctx)

		// Then: the turn is shown and nothing is marked
		require.NoError(t, err)

		frame := reconciler.Frame()
		assert.Equal(t, "Player X's turn", frame.Status)
		assert.Zero(t, markedCells(frame))
		assert.Empty(t, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, entity.Scores{}, frame.Scores)
		assert.Equal(t, string(PhaseIdle), frame.Phase)
	})

	t.Run("Unavailable service leaves a notice", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		service.EXPECT().ResetGame(mock.Anything).
			Return(nil, fmt.Errorf("%w: status 503", apperror.ErrServiceUnavailable)).
			Once()

		err := reconciler.Initialize(ctx)

		require.ErrorIs(t, err, apperror.ErrServiceUnavailable)

		frame := reconciler.Frame()
		assert.Equal(t, NoticeUnavailable, frame.Notice)
		assert.Empty(t, frame.Status)
		assert.Equal(t, PhaseIdle, reconciler.Phase())
	})
}

func TestReconciler_ActivateCell(t *testing.T) {
	ctx := context.Background()

	t.Run("Winning move highlights the line and updates scores", func(t *testing.T) {
		// Given: a running game
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, freshGame())
		service.EXPECT().MakeMove(mock.Anything, 2).Return(xWinsTopRow(), nil).Once()

		// When: X completes the top row
		err := reconciler.ActivateCell(ctx, 2)

		// Then: the win is shown with exactly the combo highlighted
		require.NoError(t, err)

		frame := reconciler.Frame()
		assert.Equal(t, "Player X wins!", frame.Status)
		assert.Equal(t, []int{0, 1, 2}, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, []int{0, 1, 2}, frame.CellsWith(view.ClassX))
		assert.Equal(t, []int{3, 4}, frame.CellsWith(view.ClassO))
		assert.Equal(t, entity.Scores{X: 1}, frame.Scores)
	})

	t.Run("Tie shows no highlight", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, freshGame())

		tie := xWinsTopRow()
		tie.Winner = entity.WinnerTie
		tie.Scores = &entity.Scores{Tie: 1}
		service.EXPECT().MakeMove(mock.Anything, 8).Return(tie, nil).Once()

		require.NoError(t, reconciler.ActivateCell(ctx, 8))

		frame := reconciler.Frame()
		assert.Equal(t, "It's a tie!", frame.Status)
		assert.Empty(t, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, entity.Scores{Tie: 1}, frame.Scores)
	})

	t.Run("Turn passes to the next player", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, freshGame())
		service.EXPECT().MakeMove(mock.Anything, 4).Return(&entity.GameState{
			Board:         boardOf(map[int]entity.Mark{4: entity.PlayerX}),
			CurrentPlayer: entity.PlayerO,
			Scores:        &entity.Scores{},
		}, nil).Once()

		require.NoError(t, reconciler.ActivateCell(ctx, 4))

		frame := reconciler.Frame()
		assert.Equal(t, "Player O's turn", frame.Status)
		assert.Equal(t, []int{4}, frame.CellsWith(view.ClassX))
	})

	t.Run("Game over blocks further moves locally", func(t *testing.T) {
		// Given: a finished game
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, freshGame())
		service.EXPECT().MakeMove(mock.Anything, 2).Return(xWinsTopRow(), nil).Once()
		require.NoError(t, reconciler.ActivateCell(ctx, 2))

		// When: activating an empty cell
		err := reconciler.ActivateCell(ctx, 8)

		// Then: nothing is sent
		require.ErrorIs(t, err, apperror.ErrGameOver)
		service.AssertNumberOfCalls(t, "MakeMove", 1)
	})

	t.Run("Occupied and out of range cells are filtered", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, &entity.GameState{
			Board:         boardOf(map[int]entity.Mark{4: entity.PlayerX}),
			CurrentPlayer: entity.PlayerO,
		})

		require.ErrorIs(t, reconciler.ActivateCell(ctx, 4), apperror.ErrCellOccupied)
		require.ErrorIs(t, reconciler.ActivateCell(ctx, 9), apperror.ErrInvalidCell)
		service.AssertNotCalled(t, "MakeMove", mock.Anything, mock.Anything)
	})

	t.Run("Service failures keep the board and show a notice", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			notice string
		}{
			{
				name:   "unavailable",
				err:    fmt.Errorf("%w: dial tcp: connection refused", apperror.ErrServiceUnavailable),
				notice: NoticeUnavailable,
			},
			{
				name:   "malformed",
				err:    fmt.Errorf("%w: unexpected end of JSON input", apperror.ErrMalformedResponse),
				notice: NoticeMalformed,
			},
			{
				name:   "rejected",
				err:    &apperror.Rejection{Status: 400, Reason: "Invalid move"},
				notice: "Move rejected: Invalid move",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: a game with one mark and a failing move call
				reconciler, service, _ := newTestReconciler(t)
				initialize(t, reconciler, service, &entity.GameState{
					Board:         boardOf(map[int]entity.Mark{0: entity.PlayerX}),
					CurrentPlayer: entity.PlayerO,
				})
				before := reconciler.Frame()
				service.EXPECT().MakeMove(mock.Anything, 5).Return(nil, tt.err).Once()

				// When: activating a cell
				err := reconciler.ActivateCell(ctx, 5)

				// Then: board, status and scores are untouched
				require.ErrorIs(t, err, tt.err)

				after := reconciler.Frame()
				assert.Equal(t, before.Cells, after.Cells)
				assert.Equal(t, before.Status, after.Status)
				assert.Equal(t, before.Scores, after.Scores)
				assert.Equal(t, tt.notice, after.Notice)
				assert.Equal(t, PhaseIdle, reconciler.Phase())
			})
		}
	})

	t.Run("Next success clears the notice", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, freshGame())
		service.EXPECT().MakeMove(mock.Anything, 0).Return(nil, apperror.ErrServiceUnavailable).Once()
		service.EXPECT().MakeMove(mock.Anything, 0).Return(&entity.GameState{
			Board:         boardOf(map[int]entity.Mark{0: entity.PlayerX}),
			CurrentPlayer: entity.PlayerO,
			Scores:        &entity.Scores{},
		}, nil).Once()

		require.Error(t, reconciler.ActivateCell(ctx, 0))
		require.NoError(t, reconciler.ActivateCell(ctx, 0))

		assert.Empty(t, reconciler.Frame().Notice)
	})
}

func TestReconciler_Reset(t *testing.T) {
	ctx := context.Background()

	// Given: a won game with scores
	reconciler, service, _ := newTestReconciler(t)
	initialize(t, reconciler, service, freshGame())
	service.EXPECT().MakeMove(mock.Anything, 2).Return(xWinsTopRow(), nil).Once()
	require.NoError(t, reconciler.ActivateCell(ctx, 2))

	// When: resetting
	service.EXPECT().ResetGame(mock.Anything).Return(freshGame(), nil).Once()
	require.NoError(t, reconciler.Reset(ctx))

	// Then: no highlight, neutral status, scores kept, game playable again
	frame := reconciler.Frame()
	assert.Empty(t, frame.CellsWith(view.ClassWinning))
	assert.Zero(t, markedCells(frame))
	assert.Equal(t, "Player X's turn", frame.Status)
	assert.Equal(t, entity.Scores{X: 1}, frame.Scores)

	service.EXPECT().MakeMove(mock.Anything, 0).Return(&entity.GameState{
		Board:         boardOf(map[int]entity.Mark{0: entity.PlayerX}),
		CurrentPlayer: entity.PlayerO,
		Scores:        &entity.Scores{X: 1},
	}, nil).Once()
	require.NoError(t, reconciler.ActivateCell(ctx, 0))
}

func TestReconciler_ApplyOptions(t *testing.T) {
	ctx := context.Background()

	// Given: a service that accepts new options
	reconciler, service, _ := newTestReconciler(t)
	options := entity.Options{GameMode: "human_vs_ai", Difficulty: "hard", PlayerChoice: "O"}
	service.EXPECT().SetGameOptions(mock.Anything, options).Return(&entity.GameState{
		Board:         boardOf(map[int]entity.Mark{4: entity.PlayerX}),
		CurrentPlayer: entity.PlayerO,
		Scores:        &entity.Scores{X: 2, O: 5, Tie: 1},
	}, nil).Once()

	// When: applying them
	err := reconciler.ApplyOptions(ctx, options)

	// Then: the returned game and scores are shown
	require.NoError(t, err)

	frame := reconciler.Frame()
	assert.Equal(t, []int{4}, frame.CellsWith(view.ClassX))
	assert.Equal(t, "Player O's turn", frame.Status)
	assert.Equal(t, entity.Scores{X: 2, O: 5, Tie: 1}, frame.Scores)
}

func aiRound() *entity.AIRound {
	return &entity.AIRound{
		Moves: []entity.Move{
			{Position: 4, Player: entity.PlayerX},
			{Position: 0, Player: entity.PlayerO},
			{Position: 2, Player: entity.PlayerX},
			{Position: 8, Player: entity.PlayerO},
			{Position: 6, Player: entity.PlayerX},
		},
		Final: entity.GameState{
			Board: boardOf(map[int]entity.Mark{
				0: entity.PlayerO, 2: entity.PlayerX, 4: entity.PlayerX, 6: entity.PlayerX, 8: entity.PlayerO,
			}),
			Winner:       entity.WinnerX,
			WinningCombo: []int{2, 4, 6},
			GameOver:     true,
			Scores:       &entity.Scores{X: 3, O: 1},
		},
	}
}

func TestReconciler_RunAIRound(t *testing.T) {
	ctx := context.Background()

	t.Run("Moves are revealed one per interval and the final state comes last", func(t *testing.T) {
		// Given: a board with a leftover mark
		reconciler, service, clk := newTestReconciler(t)
		initialize(t, reconciler, service, &entity.GameState{
			Board:         boardOf(map[int]entity.Mark{1: entity.PlayerO}),
			CurrentPlayer: entity.PlayerX,
		})
		round := aiRound()
		service.EXPECT().PlayAIRound(mock.Anything).Return(round, nil).Once()

		// When: running the round
		require.NoError(t, reconciler.RunAIRound(ctx))

		// Then: the board is cleared and the animation is pending
		frame := reconciler.Frame()
		assert.Zero(t, markedCells(frame))
		assert.Equal(t, string(PhaseAnimating), frame.Phase)

		for i, move := range round.Moves {
			if i == 0 {
				clk.Add(0)
			} else {
				clk.Add(testDelay)
			}

			// Then: exactly i+1 moves are visible, the latest on its own cell
			require.Eventually(t, func() bool {
				return markedCells(reconciler.Frame()) == i+1
			}, waitFor, tick, "move %d", i)
			assert.True(t, reconciler.Frame().Cells[move.Position].Has(view.ClassFor(move.Player)))

			if i < len(round.Moves)-1 {
				frame = reconciler.Frame()
				assert.Equal(t, "Player X's turn", frame.Status)
				assert.Empty(t, frame.CellsWith(view.ClassWinning))
				assert.Equal(t, entity.Scores{}, frame.Scores)
			}
		}

		// Then: the authoritative state is applied after the last move
		require.Eventually(t, func() bool { return reconciler.Phase() == PhaseIdle }, waitFor, tick)

		frame = reconciler.Frame()
		assert.Equal(t, "Player X wins!", frame.Status)
		assert.Equal(t, []int{2, 4, 6}, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, entity.Scores{X: 3, O: 1}, frame.Scores)
		assert.Equal(t, []int{0, 8}, frame.CellsWith(view.ClassO))

		require.ErrorIs(t, reconciler.ActivateCell(ctx, 1), apperror.ErrGameOver)
	})

	t.Run("Zero moves apply the final state at once", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		service.EXPECT().PlayAIRound(mock.Anything).Return(&entity.AIRound{
			Moves: []entity.Move{},
			Final: entity.GameState{
				Board:    entity.NewBoard(),
				Winner:   entity.WinnerTie,
				GameOver: true,
				Scores:   &entity.Scores{Tie: 1},
			},
		}, nil).Once()

		require.NoError(t, reconciler.RunAIRound(ctx))

		frame := reconciler.Frame()
		assert.Equal(t, "It's a tie!", frame.Status)
		assert.Equal(t, entity.Scores{Tie: 1}, frame.Scores)
		assert.Equal(t, PhaseIdle, reconciler.Phase())
	})

	t.Run("Moves are rejected while animating", func(t *testing.T) {
		reconciler, service, _ := newTestReconciler(t)
		initialize(t, reconciler, service, freshGame())
		service.EXPECT().PlayAIRound(mock.Anything).Return(aiRound(), nil).Once()
		require.NoError(t, reconciler.RunAIRound(ctx))

		require.ErrorIs(t, reconciler.ActivateCell(ctx, 1), apperror.ErrBusy)
		require.ErrorIs(t, reconciler.RunAIRound(ctx), apperror.ErrBusy)
	})

	t.Run("Reset supersedes a running animation", func(t *testing.T) {
		// Given: an animation with one move revealed
		reconciler, service, clk := newTestReconciler(t)
		service.EXPECT().PlayAIRound(mock.Anything).Return(aiRound(), nil).Once()
		require.NoError(t, reconciler.RunAIRound(ctx))

		clk.Add(0)
		require.Eventually(t, func() bool { return markedCells(reconciler.Frame()) == 1 }, waitFor, tick)

		// When: resetting mid-animation
		service.EXPECT().ResetGame(mock.Anything).Return(freshGame(), nil).Once()
		require.NoError(t, reconciler.Reset(ctx))

		// Then: no stale step marks the new board
		clk.Add(10 * testDelay)
		require.Never(t, func() bool { return markedCells(reconciler.Frame()) != 0 }, 50*time.Millisecond, tick)

		frame := reconciler.Frame()
		assert.Equal(t, "Player X's turn", frame.Status)
		assert.Empty(t, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, entity.Scores{}, frame.Scores)
	})

	t.Run("Options supersede a running animation", func(t *testing.T) {
		// Given: an animation with one move revealed
		reconciler, service, clk := newTestReconciler(t)
		service.EXPECT().PlayAIRound(mock.Anything).Return(aiRound(), nil).Once()
		require.NoError(t, reconciler.RunAIRound(ctx))

		clk.Add(0)
		require.Eventually(t, func() bool { return markedCells(reconciler.Frame()) == 1 }, waitFor, tick)

		// When: applying options mid-animation
		options := entity.Options{GameMode: "human_vs_ai", Difficulty: "easy", PlayerChoice: "O"}
		service.EXPECT().SetGameOptions(mock.Anything, options).Return(&entity.GameState{
			Board:         entity.NewBoard(),
			CurrentPlayer: entity.PlayerO,
			Scores:        &entity.Scores{X: 4, O: 2},
		}, nil).Once()
		require.NoError(t, reconciler.ApplyOptions(ctx, options))

		// Then: no stale step marks the board and the returned game is shown
		clk.Add(10 * testDelay)
		require.Never(t, func() bool { return markedCells(reconciler.Frame()) != 0 }, 50*time.Millisecond, tick)

		frame := reconciler.Frame()
		assert.Equal(t, "Player O's turn", frame.Status)
		assert.Empty(t, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, entity.Scores{X: 4, O: 2}, frame.Scores)
		assert.Equal(t, PhaseIdle, reconciler.Phase())
	})

	t.Run("Failed reset during an animation keeps the authoritative state", func(t *testing.T) {
		// Given: an animation with one move revealed
		reconciler, service, clk := newTestReconciler(t)
		round := aiRound()
		service.EXPECT().PlayAIRound(mock.Anything).Return(round, nil).Once()
		require.NoError(t, reconciler.RunAIRound(ctx))

		clk.Add(0)
		require.Eventually(t, func() bool { return markedCells(reconciler.Frame()) == 1 }, waitFor, tick)

		// When: a reset interrupts it and the service is down
		service.EXPECT().ResetGame(mock.Anything).
			Return(nil, fmt.Errorf("%w: status 503", apperror.ErrServiceUnavailable)).
			Once()
		require.ErrorIs(t, reconciler.Reset(ctx), apperror.ErrServiceUnavailable)

		// Then: the surface shows the finished round the service reported
		clk.Add(10 * testDelay)
		require.Never(t, func() bool {
			return markedCells(reconciler.Frame()) != len(round.Moves)
		}, 50*time.Millisecond, tick)

		frame := reconciler.Frame()
		assert.Equal(t, "Player X wins!", frame.Status)
		assert.Equal(t, []int{2, 4, 6}, frame.CellsWith(view.ClassWinning))
		assert.Equal(t, []int{0, 8}, frame.CellsWith(view.ClassO))
		assert.Equal(t, entity.Scores{X: 3, O: 1}, frame.Scores)
		assert.Equal(t, NoticeUnavailable, frame.Notice)
		assert.Equal(t, PhaseIdle, reconciler.Phase())

		// Then: the cache matches it, so nothing reaches the service
		require.ErrorIs(t, reconciler.ActivateCell(ctx, 1), apperror.ErrGameOver)
		service.AssertNotCalled(t, "MakeMove", mock.Anything, mock.Anything)
	})

	t.Run("Close discards pending steps", func(t *testing.T) {
		reconciler, service, clk := newTestReconciler(t)
		service.EXPECT().PlayAIRound(mock.Anything).Return(aiRound(), nil).Once()
		require.NoError(t, reconciler.RunAIRound(ctx))

		reconciler.Close()
		clk.Add(10 * testDelay)

		require.Never(t, func() bool { return markedCells(reconciler.Frame()) != 0 }, 50*time.Millisecond, tick)
		assert.Equal(t, PhaseIdle, reconciler.Phase())
	})
}

func TestReconciler_BusyGate(t *testing.T) {
	ctx := context.Background()

	// Given: a move call that does not return until released
	reconciler, service, _ := newTestReconciler(t)
	initialize(t, reconciler, service, freshGame())

	release := make(chan struct{})
	service.EXPECT().MakeMove(mock.Anything, 0).
		Run(func(context.Context, int) { <-release }).
		Return(&entity.GameState{
			Board:         boardOf(map[int]entity.Mark{0: entity.PlayerX}),
			CurrentPlayer: entity.PlayerO,
			Scores:        &entity.Scores{},
		}, nil).
		Once()

	done := make(chan error, 1)
	go func() { done <- reconciler.ActivateCell(ctx, 0) }()
	require.Eventually(t, func() bool { return reconciler.Phase() == PhaseAwaitingServer }, waitFor, tick)

	// When: other actions arrive meanwhile
	// Then: all of them are rejected without reaching the service
	require.ErrorIs(t, reconciler.ActivateCell(ctx, 1), apperror.ErrBusy)
	require.ErrorIs(t, reconciler.RunAIRound(ctx), apperror.ErrBusy)
	require.ErrorIs(t, reconciler.Reset(ctx), apperror.ErrBusy)
	require.ErrorIs(t, reconciler.ApplyOptions(ctx, entity.Options{}), apperror.ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, "Player O's turn", reconciler.Frame().Status)
}

func TestReconciler_StaleResponse(t *testing.T) {
	ctx := context.Background()

	// Given: a move in flight
	reconciler, service, _ := newTestReconciler(t)
	initialize(t, reconciler, service, freshGame())

	release := make(chan struct{})
	service.EXPECT().MakeMove(mock.Anything, 2).
		Run(func(context.Context, int) { <-release }).
		Return(xWinsTopRow(), nil).
		Once()

	done := make(chan error, 1)
	go func() { done <- reconciler.ActivateCell(ctx, 2) }()
	require.Eventually(t, func() bool { return reconciler.Phase() == PhaseAwaitingServer }, waitFor, tick)

	// When: the reconciler is closed before the response lands
	reconciler.Close()
	close(release)

	// Then: the late response is dropped
	require.ErrorIs(t, <-done, apperror.ErrStaleResponse)

	frame := reconciler.Frame()
	assert.Zero(t, markedCells(frame))
	assert.Equal(t, "Player X's turn", frame.Status)
}

func TestReconciler_Journal(t *testing.T) {
	ctx := context.Background()

	// Given: a journal that accepts the first entry and then fails
	service := mockedUseCase.NewMockgameService(t)
	journal := mockedUseCase.NewMockjournal(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reconciler := NewReconciler(logger, service, journal, clock.NewMock(), testDelay)

	service.EXPECT().ResetGame(mock.Anything).Return(freshGame(), nil).Once()
	service.EXPECT().MakeMove(mock.Anything, 2).Return(xWinsTopRow(), nil).Once()

	journal.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(entry *entity.JournalEntry) bool {
			return entry.Kind == entity.JournalInitialize && !entry.GameOver
		})).
		Return(nil).
		Once()
	journal.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(entry *entity.JournalEntry) bool {
			return entry.Kind == entity.JournalMove && entry.Winner == entity.WinnerX && entry.Scores != nil && entry.Scores.X == 1
		})).
		Return(errRedisDown).
		Once()

	// When: playing
	require.NoError(t, reconciler.Initialize(ctx))
	err := reconciler.ActivateCell(ctx, 2)

	// Then: the journal failure does not reach the caller or the surface
	require.NoError(t, err)
	assert.Equal(t, "Player X wins!", reconciler.Frame().Status)
	assert.Empty(t, reconciler.Frame().Notice)
}

func TestReconciler_Changes(t *testing.T) {
	reconciler, service, _ := newTestReconciler(t)
	initialize(t, reconciler, service, freshGame())

	select {
	case <-reconciler.Changes():
	default:
		t.Fatal("expected a change notification")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		state entity.GameState
		want  string
	}{
		{name: "x wins", state: entity.GameState{Winner: entity.WinnerX}, want: "Player X wins!"},
		{name: "o wins", state: entity.GameState{Winner: entity.WinnerO, CurrentPlayer: entity.PlayerX}, want: "Player O wins!"},
		{name: "tie", state: entity.GameState{Winner: entity.WinnerTie, GameOver: true}, want: "It's a tie!"},
		{name: "turn", state: entity.GameState{CurrentPlayer: entity.PlayerO}, want: "Player O's turn"},
		{name: "finished without result", state: entity.GameState{GameOver: true}, want: "Game over"},
		{name: "nothing known", state: entity.GameState{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(&tt.state))
		})
	}
}
