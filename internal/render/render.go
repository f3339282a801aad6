// Package render derives a drawable layout from session state. It is
// a pure projection except for the session scroll offset, which the
// projector is the sole writer of.
package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/typr-dev/typr/internal/session"
)

// CharClass classifies one target character for display.
type CharClass int

// Character classes. Every cell gets exactly one.
const (
	ClassCorrect CharClass = iota
	ClassIncorrect
	ClassCursor
	ClassPending
)

// Cell is one target character plus its classification.
type Cell struct {
	Rune  rune
	Class CharClass
}

// Layout is the drawable description of one frame: a status line and
// the visible rows of the text window.
type Layout struct {
	Status    string
	Rows      [][]Cell
	CursorRow int // absolute row index of the cursor
	Scroll    int // first visible row
}

// Project derives the layout for the current engine state and stores
// the adjusted scroll offset back into the session.
func Project(e *session.Engine, width, height int, showWPM bool) Layout {
	layout := project(e.Snapshot(), width, height, showWPM)
	e.SetScroll(layout.Scroll)
	return layout
}

func project(snap session.Snapshot, width, height int, showWPM bool) Layout {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	rows, cursorRow := buildRows(snap.Target, snap.Input, width)

	// Recenter once the cursor row passes the window midpoint.
	scroll := snap.Scroll
	if cursorRow > scroll+height/2 {
		scroll = cursorRow - height/2
	}

	visible := rows
	if scroll < len(rows) {
		visible = rows[scroll:]
	} else {
		visible = nil
	}
	if len(visible) > height {
		visible = visible[:height]
	}

	return Layout{
		Status:    statusLine(snap, showWPM),
		Rows:      visible,
		CursorRow: cursorRow,
		Scroll:    scroll,
	}
}

func buildRows(target, input []rune, width int) (rows [][]Cell, cursorRow int) {
	cursor := len(input)
	row := make([]Cell, 0, width)
	rowWidth := 0
	for i, r := range target {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, row)
			row = make([]Cell, 0, width)
			rowWidth = 0
		}
		if i == cursor {
			cursorRow = len(rows)
		}
		row = append(row, Cell{Rune: r, Class: classify(i, r, input)})
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	if cursor >= len(target) && len(rows) > 0 {
		cursorRow = len(rows) - 1
	}
	return rows, cursorRow
}

func classify(i int, target rune, input []rune) CharClass {
	switch {
	case i < len(input) && input[i] == target:
		return ClassCorrect
	case i < len(input):
		return ClassIncorrect
	case i == len(input):
		return ClassCursor
	default:
		return ClassPending
	}
}

func statusLine(snap session.Snapshot, showWPM bool) string {
	if snap.State == session.NotStarted {
		return fmt.Sprintf("%s | Press any key to start typing...", snap.Mode)
	}
	elapsed := snap.Elapsed.Seconds()
	var status string
	if snap.Mode.Kind == session.FixedTime {
		left := float64(snap.Mode.Limit) - elapsed
		if left < 0 {
			left = 0
		}
		status = fmt.Sprintf("%s | Time Left: %.0fs", snap.Mode, left)
	} else {
		status = fmt.Sprintf("%s | Time: %.0fs", snap.Mode, elapsed)
	}
	if showWPM {
		status += fmt.Sprintf(" | WPM: %.0f", snap.LiveWPM)
	}
	return status
}
