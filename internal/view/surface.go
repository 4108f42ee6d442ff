// Package view holds the rendered state of the board: the classes carried by
// each cell, the status line, the scoreboard and the notice line. It knows
// nothing about the game service; the reconciler decides what to paint.
package view

import (
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type Class uint8

const (
	ClassX Class = 1 << iota
	ClassO
	ClassWinning
)

func (that Class) String() string {
	switch that {
	case ClassX:
		return "x"
	case ClassO:
		return "o"
	case ClassWinning:
		return "winning"
	default:
		return ""
	}
}

// ClassFor returns the cell class for a player mark, or 0 for an empty cell.
func ClassFor(mark entity.Mark) Class {
	switch mark {
	case entity.PlayerX:
		return ClassX
	case entity.PlayerO:
		return ClassO
	default:
		return 0
	}
}

// Cell is the set of classes on one board cell.
type Cell Class

func (that Cell) Has(class Class) bool {
	return Class(that)&class != 0
}

func (that Cell) Classes() []Class {
	classes := make([]Class, 0, 3)
	for _, class := range []Class{ClassX, ClassO, ClassWinning} {
		if that.Has(class) {
			classes = append(classes, class)
		}
	}

	return classes
}

// Surface is the mutable rendered state. The zero value is a blank board.
type Surface struct {
	cells  [entity.BoardSize]Cell
	status string
	scores entity.Scores
	notice string
}

// PaintBoard makes the cell classes mirror board exactly: x on X cells, o on
// O cells, and nothing else anywhere (winning highlights included).
func (that *Surface) PaintBoard(board entity.Board) {
	for i, mark := range board {
		that.cells[i] = Cell(ClassFor(mark))
	}
}

// MarkCell adds the class for mark to a single cell.
func (that *Surface) MarkCell(index int, mark entity.Mark) {
	if !entity.ValidCell(index) {
		return
	}

	that.cells[index] |= Cell(ClassFor(mark))
}

// Highlight adds the winning class to every in-range index of combo.
func (that *Surface) Highlight(combo []int) {
	for _, index := range combo {
		if entity.ValidCell(index) {
			that.cells[index] |= Cell(ClassWinning)
		}
	}
}

func (that *Surface) Clear() {
	that.cells = [entity.BoardSize]Cell{}
}

func (that *Surface) SetStatus(status string) {
	that.status = status
}

func (that *Surface) SetScores(scores entity.Scores) {
	that.scores = scores
}

func (that *Surface) SetNotice(notice string) {
	that.notice = notice
}

func (that *Surface) Cell(index int) Cell {
	if !entity.ValidCell(index) {
		return 0
	}

	return that.cells[index]
}

func (that *Surface) Status() string {
	return that.status
}

func (that *Surface) Scores() entity.Scores {
	return that.scores
}

func (that *Surface) Notice() string {
	return that.notice
}

// Snapshot copies the surface into an immutable frame.
func (that *Surface) Snapshot() Frame {
	return Frame{
		Cells:  that.cells,
		Status: that.status,
		Scores: that.scores,
		Notice: that.notice,
	}
}

// Frame is what a renderer draws.
type Frame struct {
	Cells  [entity.BoardSize]Cell
	Status string
	Scores entity.Scores
	Notice string
	Phase  string
}

// CellsWith returns the indices carrying class, in ascending order.
func (that Frame) CellsWith(class Class) []int {
	indices := make([]int, 0, entity.BoardSize)
	for i, cell := range that.Cells {
		if cell.Has(class) {
			indices = append(indices, i)
		}
	}

	return indices
}
