// Package tui renders the board in a terminal and turns key presses into
// reconciler actions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/view"
)

const boardSide = 3

type reconciler interface {
	Initialize(ctx context.Context) error
	ActivateCell(ctx context.Context, index int) error
	Reset(ctx context.Context) error
	ApplyOptions(ctx context.Context, options entity.Options) error
	RunAIRound(ctx context.Context) error
	Frame() view.Frame
	Changes() <-chan struct{}
}

// Choices are the values the option keys cycle through.
type Choices struct {
	GameModes     []string
	Difficulties  []string
	PlayerChoices []string
}

type changedMsg struct{}

type actionDoneMsg struct {
	action string
	err    error
}

type Model struct {
	ctx        context.Context
	logger     *slog.Logger
	reconciler reconciler
	choices    Choices

	mode       int
	difficulty int
	player     int
	cursor     int

	frame view.Frame
	hint  string
}

func New(ctx context.Context, logger *slog.Logger, reconciler reconciler, choices Choices) Model {
	return Model{
		ctx:        ctx,
		logger:     logger.With("component", "tui"),
		reconciler: reconciler,
		choices:    choices,
		cursor:     entity.BoardSize / 2,
		frame:      reconciler.Frame(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.run("initialize", m.reconciler.Initialize),
		waitForChange(m.ctx, m.reconciler.Changes()),
	)
}

// waitForChange yields nothing once ctx is done.
func waitForChange(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changes:
			return changedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// run executes a reconciler action off the UI loop.
func (m Model) run(action string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case changedMsg:
		m.frame = m.reconciler.Frame()
		return m, waitForChange(m.ctx, m.reconciler.Changes())
	case actionDoneMsg:
		m.frame = m.reconciler.Frame()
		m.hint = hintFor(msg.err)
		if msg.err != nil {
			m.logger.Debug("action finished with error", "action", msg.action, "error", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		cell, _ := strconv.Atoi(key)
		m.cursor = cell - 1
		return m, m.activate(m.cursor)
	case "enter", " ":
		return m, m.activate(m.cursor)
	case "up", "k":
		if m.cursor >= boardSide {
			m.cursor -= boardSide
		}
	case "down", "j":
		if m.cursor < entity.BoardSize-boardSide {
			m.cursor += boardSide
		}
	case "left", "h":
		if m.cursor%boardSide > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%boardSide < boardSide-1 {
			m.cursor++
		}
	case "r":
		return m, m.run("reset", m.reconciler.Reset)
	case "a":
		return m, m.run("ai_round", m.reconciler.RunAIRound)
	case "m":
		m.mode = next(m.mode, m.choices.GameModes)
	case "d":
		m.difficulty = next(m.difficulty, m.choices.Difficulties)
	case "p":
		m.player = next(m.player, m.choices.PlayerChoices)
	case "o":
		options := m.Options()
		return m, m.run("options", func(ctx context.Context) error {
			return m.reconciler.ApplyOptions(ctx, options)
		})
	}

	return m, nil
}

func (m Model) activate(cell int) tea.Cmd {
	return m.run("move", func(ctx context.Context) error {
		return m.reconciler.ActivateCell(ctx, cell)
	})
}

// Options is the currently selected option set.
func (m Model) Options() entity.Options {
	return entity.Options{
		GameMode:     pick(m.mode, m.choices.GameModes),
		Difficulty:   pick(m.difficulty, m.choices.Difficulties),
		PlayerChoice: pick(m.player, m.choices.PlayerChoices),
	}
}

func next(index int, values []string) int {
	if len(values) == 0 {
		return 0
	}

	return (index + 1) % len(values)
}

func pick(index int, values []string) string {
	if index < 0 || index >= len(values) {
		return ""
	}

	return values[index]
}

// hintFor explains local refusals; service failures are shown by the
// reconciler's notice instead.
func hintFor(err error) string {
	switch {
	case err == nil, errors.Is(err, apperror.ErrStaleResponse):
		return ""
	case errors.Is(err, apperror.ErrBusy):
		return "Please wait for the current action to finish"
	case errors.Is(err, apperror.ErrGameOver):
		return "The game is over, press r to play again"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is taken"
	case errors.Is(err, apperror.ErrInvalidCell):
		return "No such cell"
	default:
		return ""
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.frame.Status))
	b.WriteString("\n")
	fmt.Fprintf(&b, "X: %d   O: %d   Ties: %d\n", m.frame.Scores.X, m.frame.Scores.O, m.frame.Scores.Tie)

	if m.frame.Notice != "" {
		b.WriteString(noticeStyle.Render(m.frame.Notice))
		b.WriteString("\n")
	}
	if m.hint != "" {
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}

	options := m.Options()
	fmt.Fprintf(&b, "\nmode: %s   difficulty: %s   first player: %s\n",
		options.GameMode, options.Difficulty, options.PlayerChoice)

	b.WriteString(helpStyle.Render(
		"1-9/arrows+enter: play   r: reset   a: AI vs AI   m/d/p: options   o: apply   q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderBoard() string {
	rows := make([]string, 0, boardSide)
	for row := range boardSide {
		cells := make([]string, 0, boardSide)
		for col := range boardSide {
			index := row*boardSide + col
			cells = append(cells, m.renderCell(index))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCell(index int) string {
	cell := m.frame.Cells[index]

	var content string
	switch {
	case cell.Has(view.ClassX):
		content = xStyle.Render(string(entity.PlayerX))
	case cell.Has(view.ClassO):
		content = oStyle.Render(string(entity.PlayerO))
	default:
		content = emptyStyle.Render(strconv.Itoa(index + 1))
	}

	style := cellStyle
	if cell.Has(view.ClassWinning) {
		style = style.Inherit(winningStyle)
	}
	if index == m.cursor {
		style = style.Inherit(cursorStyle).BorderStyle(lipgloss.ThickBorder())
	}

	return style.Render(content)
}
