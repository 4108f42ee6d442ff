package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/view"
)

const (
	DefaultMoveDelay = 500 * time.Millisecond

	journalTimeout = 2 * time.Second
)

const (
	NoticeUnavailable = "Game service unavailable, try again"
	NoticeMalformed   = "Unexpected response from game service"
)

var tracer = otel.Tracer("usecase")

type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseAwaitingServer Phase = "awaiting-server"
	PhaseAnimating      Phase = "animating"
)

type gameService interface {
	ResetGame(ctx context.Context) (*entity.GameState, error)
	SetGameOptions(ctx context.Context, options entity.Options) (*entity.GameState, error)
	MakeMove(ctx context.Context, position int) (*entity.GameState, error)
	PlayAIRound(ctx context.Context) (*entity.AIRound, error)
}

type journal interface {
	Record(ctx context.Context, entry *entity.JournalEntry) error
}

// Reconciler keeps the surface consistent with the state reported by the game
// service. The service is authoritative; the cached board only filters clicks
// that are certain to be refused.
type Reconciler struct {
	logger  *slog.Logger
	service gameService
	journal journal
	clock   clock.Clock
	delay   time.Duration

	mu        sync.Mutex
	surface   view.Surface
	board     entity.Board
	gameOver  bool
	confirmed *entity.GameState
	partial   bool
	phase     Phase
	epoch     uint64
	pending   []*clock.Timer
	revealed  int

	changes chan struct{}
}

func NewReconciler(
	logger *slog.Logger,
	service gameService,
	journal journal,
	clk clock.Clock,
	delay time.Duration,
) *Reconciler {
	if delay < 0 {
		delay = DefaultMoveDelay
	}

	return &Reconciler{
		logger:  logger.With("component", "reconciler"),
		service: service,
		journal: journal,
		clock:   clk,
		delay:   delay,

		board: entity.NewBoard(),
		phase: PhaseIdle,

		changes: make(chan struct{}, 1),
	}
}

// Initialize fetches a fresh game and paints it. It is the first thing a
// renderer calls.
func (that *Reconciler) Initialize(ctx context.Context) error {
	return that.restart(ctx, entity.JournalInitialize)
}

// Reset starts a new game on the service. Scores are left as they are.
func (that *Reconciler) Reset(ctx context.Context) error {
	return that.restart(ctx, entity.JournalReset)
}

func (that *Reconciler) restart(ctx context.Context, kind string) error {
	ctx, span := tracer.Start(ctx, "reconciler."+kind)
	defer span.End()

	epoch, err := that.begin(true)
	if err != nil {
		return err
	}

	state, err := that.service.ResetGame(ctx)
	if err != nil {
		return that.fail(epoch, kind, "Request rejected", err)
	}

	err = that.commit(epoch, func() {
		that.board = state.Board
		that.gameOver = false
		that.confirmed = state
		that.surface.PaintBoard(state.Board)
		that.surface.SetStatus(turnStatus(state.CurrentPlayer))
	})
	if err != nil {
		return err
	}

	that.record(ctx, kind, epoch, state, nil)

	return nil
}

// ApplyOptions sends the chosen options; the service answers with a fresh game.
// A running AI animation is superseded.
func (that *Reconciler) ApplyOptions(ctx context.Context, options entity.Options) error {
	ctx, span := tracer.Start(ctx, "reconciler.options", trace.WithAttributes(
		attribute.String("game.mode", options.GameMode),
		attribute.String("game.difficulty", options.Difficulty),
		attribute.String("game.player", options.PlayerChoice),
	))
	defer span.End()

	epoch, err := that.begin(true)
	if err != nil {
		return err
	}

	state, err := that.service.SetGameOptions(ctx, options)
	if err != nil {
		return that.fail(epoch, entity.JournalOptions, "Request rejected", err)
	}

	if err = that.commit(epoch, func() { that.apply(state) }); err != nil {
		return err
	}

	that.record(ctx, entity.JournalOptions, epoch, state, nil)

	return nil
}

// ActivateCell plays the cell at index. Nothing is painted until the service
// confirms the move.
func (that *Reconciler) ActivateCell(ctx context.Context, index int) error {
	ctx, span := tracer.Start(ctx, "reconciler.move", trace.WithAttributes(attribute.Int("game.cell", index)))
	defer span.End()

	that.mu.Lock()
	if that.phase != PhaseIdle {
		that.mu.Unlock()
		return apperror.ErrBusy
	}

	if err := that.board.CheckPlayable(index, that.gameOver); err != nil {
		that.mu.Unlock()
		return err
	}

	that.phase = PhaseAwaitingServer
	epoch := that.epoch
	that.mu.Unlock()
	that.notify()

	state, err := that.service.MakeMove(ctx, index)
	if err != nil {
		return that.fail(epoch, entity.JournalMove, "Move rejected", err)
	}

	if err = that.commit(epoch, func() { that.apply(state) }); err != nil {
		return err
	}

	that.record(ctx, entity.JournalMove, epoch, state, nil)

	return nil
}

// RunAIRound asks the service to play a whole game and replays its moves one
// per delay. The final state is applied right after the last move shows.
func (that *Reconciler) RunAIRound(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "reconciler.ai_round")
	defer span.End()

	epoch, err := that.begin(false)
	if err != nil {
		return err
	}

	round, err := that.service.PlayAIRound(ctx)
	if err != nil {
		return that.fail(epoch, entity.JournalAIRound, "Request rejected", err)
	}

	span.SetAttributes(attribute.Int("game.moves", len(round.Moves)))

	that.mu.Lock()
	if that.epoch != epoch {
		that.mu.Unlock()
		return apperror.ErrStaleResponse
	}

	// The cache follows the service at once; only the surface replays.
	that.board = round.Final.Board
	that.gameOver = round.Final.GameOver
	that.confirmed = &round.Final
	that.revealed = 0
	that.surface.Clear()
	that.surface.SetNotice("")

	if len(round.Moves) == 0 {
		that.apply(&round.Final)
		that.phase = PhaseIdle
		that.mu.Unlock()
		that.notify()

		that.record(ctx, entity.JournalAIRound, epoch, &round.Final, round.Moves)

		return nil
	}

	that.surface.SetStatus(turnStatus(round.Moves[0].Player))
	that.partial = true
	that.phase = PhaseAnimating
	for i := range round.Moves {
		that.pending = append(that.pending, that.clock.AfterFunc(time.Duration(i)*that.delay, func() {
			that.reveal(epoch, round, i)
		}))
	}
	that.mu.Unlock()
	that.notify()

	that.logger.DebugContext(ctx, "AI round scheduled", "moves", len(round.Moves), "delay", that.delay)

	return nil
}

// reveal shows every move up to and including upTo. Timers may fire out of
// order when the delay is tiny, so a late step is a no-op.
func (that *Reconciler) reveal(epoch uint64, round *entity.AIRound, upTo int) {
	that.mu.Lock()
	if that.epoch != epoch {
		that.mu.Unlock()
		that.logger.Debug("discarding stale animation step", "epoch", epoch, "move", upTo)

		return
	}

	for ; that.revealed <= upTo && that.revealed < len(round.Moves); that.revealed++ {
		move := round.Moves[that.revealed]
		that.surface.MarkCell(move.Position, move.Player)
	}

	finished := that.revealed == len(round.Moves) && that.phase == PhaseAnimating
	if finished {
		that.apply(&round.Final)
		that.phase = PhaseIdle
		that.pending = nil
	}
	that.mu.Unlock()
	that.notify()

	if finished {
		ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
		defer cancel()

		that.record(ctx, entity.JournalAIRound, epoch, &round.Final, round.Moves)
	}
}

// Close discards every pending animation step and late response.
func (that *Reconciler) Close() {
	that.mu.Lock()
	that.supersede()
	that.phase = PhaseIdle
	that.mu.Unlock()
}

func (that *Reconciler) Frame() view.Frame {
	that.mu.Lock()
	defer that.mu.Unlock()

	frame := that.surface.Snapshot()
	frame.Phase = string(that.phase)

	return frame
}

func (that *Reconciler) Phase() Phase {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.phase
}

// Changes receives a value after every surface change. Bursts are coalesced.
func (that *Reconciler) Changes() <-chan struct{} {
	return that.changes
}

// begin gates a state-replacing action and starts a new epoch. A pending
// request is never interrupted.
func (that *Reconciler) begin(interruptAnimation bool) (uint64, error) {
	that.mu.Lock()

	switch {
	case that.phase == PhaseIdle:
	case that.phase == PhaseAnimating && interruptAnimation:
	default:
		that.mu.Unlock()
		return 0, apperror.ErrBusy
	}

	that.supersede()
	that.phase = PhaseAwaitingServer
	epoch := that.epoch
	that.mu.Unlock()
	that.notify()

	return epoch, nil
}

// commit runs paint under the lock unless a newer action took over meanwhile.
func (that *Reconciler) commit(epoch uint64, paint func()) error {
	that.mu.Lock()
	if that.epoch != epoch {
		that.mu.Unlock()
		that.logger.Debug("discarding stale response", "epoch", epoch)

		return apperror.ErrStaleResponse
	}

	paint()
	that.partial = false
	that.surface.SetNotice("")
	that.phase = PhaseIdle
	that.mu.Unlock()
	that.notify()

	return nil
}

// fail leaves board, status and scores alone and shows a notice instead. A
// surface left half-animated by the superseded round is repainted from the last
// confirmed state.
func (that *Reconciler) fail(epoch uint64, kind, rejectedPrefix string, err error) error {
	that.mu.Lock()
	if that.epoch != epoch {
		that.mu.Unlock()
		return fmt.Errorf("%w: %w", apperror.ErrStaleResponse, err)
	}

	if that.partial && that.confirmed != nil {
		that.apply(that.confirmed)
	}

	that.surface.SetNotice(notice(rejectedPrefix, err))
	that.phase = PhaseIdle
	that.mu.Unlock()
	that.notify()

	that.logger.Warn("game service call failed", "action", kind, "error", err)

	return err
}

// supersede must be called with mu held.
func (that *Reconciler) supersede() {
	that.epoch++
	for _, timer := range that.pending {
		timer.Stop()
	}
	that.pending = nil
}

// apply must be called with mu held.
func (that *Reconciler) apply(state *entity.GameState) {
	that.board = state.Board
	that.gameOver = state.GameOver
	that.confirmed = state
	that.partial = false

	that.surface.PaintBoard(state.Board)
	that.surface.SetStatus(Status(state))
	if state.HasWinner() {
		that.surface.Highlight(state.WinningCombo)
	}

	if state.Scores != nil {
		that.surface.SetScores(*state.Scores)
	}
}

func (that *Reconciler) notify() {
	select {
	case that.changes <- struct{}{}:
	default:
	}
}

func (that *Reconciler) record(
	ctx context.Context,
	kind string,
	epoch uint64,
	state *entity.GameState,
	moves []entity.Move,
) {
	if that.journal == nil {
		return
	}

	entry := &entity.JournalEntry{
		Kind:     kind,
		Epoch:    epoch,
		Board:    state.Board,
		Winner:   state.Winner,
		GameOver: state.GameOver,
		Scores:   state.Scores,
		Moves:    moves,
		At:       that.clock.Now().UTC(),
	}

	if err := that.journal.Record(ctx, entry); err != nil {
		that.logger.Warn("failed to record journal entry", "kind", kind, "error", err)
	}
}

// Status is the status line for a service state.
func Status(state *entity.GameState) string {
	switch state.Winner {
	case entity.WinnerX, entity.WinnerO:
		return fmt.Sprintf("Player %s wins!", state.Winner)
	case entity.WinnerTie:
		return "It's a tie!"
	}

	if state.CurrentPlayer.IsPlayer() {
		return turnStatus(state.CurrentPlayer)
	}

	if state.GameOver {
		return "Game over"
	}

	return ""
}

func turnStatus(player entity.Mark) string {
	if !player.IsPlayer() {
		return ""
	}

	return fmt.Sprintf("Player %s's turn", player)
}

func notice(rejectedPrefix string, err error) string {
	var rejection *apperror.Rejection

	switch {
	case errors.As(err, &rejection):
		return fmt.Sprintf("%s: %s", rejectedPrefix, rejection.Reason)
	case errors.Is(err, apperror.ErrMalformedResponse):
		return NoticeMalformed
	default:
		return NoticeUnavailable
	}
}
