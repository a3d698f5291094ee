// Package tui drives a [mines.Engine] from a terminal screen: it turns key
// presses into engine calls and paints the engine snapshot after each one.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/termsweeper/internal/mines"
)

const (
	boardTop  = 2
	cellWidth = 2
)

var (
	styleDefault = tcell.StyleDefault
	styleCursor  = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleHidden  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFlag    = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleMine    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	numberColors = map[rune]tcell.Color{
		'1': tcell.ColorBlue,
		'2': tcell.ColorGreen,
		'3': tcell.ColorRed,
		'4': tcell.ColorNavy,
		'5': tcell.ColorMaroon,
		'6': tcell.ColorTeal,
		'7': tcell.ColorWhite,
		'8': tcell.ColorSilver,
	}
)

type UI struct {
	screen tcell.Screen
	engine *mines.Engine
	log    logrus.FieldLogger
}

// New expects an initialized screen. The caller keeps ownership of it and
// is responsible for calling Fini.
func New(screen tcell.Screen, engine *mines.Engine, log logrus.FieldLogger) *UI {
	return &UI{screen: screen, engine: engine, log: log}
}

// Run handles input until the player quits, an interrupt is posted with
// [UI.Interrupt] or the screen is finalized.
func (u *UI) Run() error {
	u.screen.HideCursor()
	u.draw()
	for {
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if quit := u.handleKey(ev); quit {
				return nil
			}
		}
		u.draw()
	}
}

// Interrupt makes a running [UI.Run] return. Safe to call from any
// goroutine.
func (u *UI) Interrupt() error {
	return u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (u *UI) handleKey(ev *tcell.EventKey) (quit bool) {
	before := u.engine.Status()

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyLeft:
		u.engine.MoveCursor(mines.Left)
	case tcell.KeyRight:
		u.engine.MoveCursor(mines.Right)
	case tcell.KeyUp:
		u.engine.MoveCursor(mines.Up)
	case tcell.KeyDown:
		u.engine.MoveCursor(mines.Down)
	case tcell.KeyEnter:
		u.engine.RevealAtCursor()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h':
			u.engine.MoveCursor(mines.Left)
		case 'l':
			u.engine.MoveCursor(mines.Right)
		case 'k':
			u.engine.MoveCursor(mines.Up)
		case 'j':
			u.engine.MoveCursor(mines.Down)
		case ' ':
			u.engine.RevealAtCursor()
		case 'f', 'F':
			u.engine.ToggleFlag()
		case 'c', 'C':
			u.engine.ChordAtCursor()
		case 'n', 'N':
			if err := u.engine.Reset(); err != nil {
				u.log.WithError(err).Error("unable to start a new game")
			} else {
				u.log.Info("new board")
			}
		case 'r', 'R':
			u.engine.Restart()
			u.log.Info("replaying board")
		}
	}

	if after := u.engine.Status(); after != before && after != mines.Playing {
		u.log.WithFields(logrus.Fields{
			"status": after.String(),
			"cursor": u.engine.Cursor().String(),
		}).Info("game over")
	}
	return false
}

func (u *UI) draw() {
	s := u.engine.Snapshot()

	u.screen.Clear()
	u.text(0, 0, styleDefault, fmt.Sprintf(
		"Mines: %d  Flags: %d  Left: %d", s.MineCount, s.FlagCount, s.MinesLeft(),
	))

	for _, cell := range s.Cells {
		glyph := []rune(cell.Glyph)[0]
		style := glyphStyle(glyph)
		if glyph == '0' {
			glyph = ' '
		}
		if cell.Pos == s.Cursor {
			style = styleCursor
		}
		u.screen.SetContent(
			cell.Pos.X*cellWidth, boardTop+cell.Pos.Y, glyph, nil, style,
		)
	}

	footer := boardTop + s.Size + 1
	switch s.Status {
	case mines.Won:
		u.text(0, footer, styleDefault, "You won! n: new board  r: replay  q: quit")
	case mines.Lost:
		u.text(0, footer, styleMine, "Boom! n: new board  r: replay  q: quit")
	default:
		u.text(0, footer, styleDefault, "arrows/hjkl: move  space: reveal  f: flag  c: chord  q: quit")
	}

	u.screen.Show()
}

func (u *UI) text(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func glyphStyle(glyph rune) tcell.Style {
	switch glyph {
	case '?':
		return styleHidden
	case 'F':
		return styleFlag
	case 'X':
		return styleMine
	}
	if color, ok := numberColors[glyph]; ok {
		return styleDefault.Foreground(color)
	}
	return styleDefault
}
