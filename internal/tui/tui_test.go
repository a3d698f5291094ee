package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/termsweeper/internal/mines"
)

type fixture struct {
	ui     *UI
	screen tcell.SimulationScreen
	engine *mines.Engine
	hook   *test.Hook
}

// newFixture sets up a 3x3 board:
//
//	X 1 0
//	1 2 1
//	0 1 X
func newFixture(t *testing.T) fixture {
	t.Helper()

	board, err := mines.NewBoardWithMines(3, mines.Coordinate{X: 0, Y: 0}, mines.Coordinate{X: 2, Y: 2})
	require.NoError(t, err)
	engine, err := mines.NewEngine(board, mines.NewRand(1))
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 10)
	t.Cleanup(screen.Fini)

	log, hook := test.NewNullLogger()
	return fixture{
		ui:     New(screen, engine, log),
		screen: screen,
		engine: engine,
		hook:   hook,
	}
}

func (f fixture) press(keys ...rune) {
	for _, r := range keys {
		f.screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

func (f fixture) cellAt(t *testing.T, x, y int) tcell.SimCell {
	t.Helper()
	cells, width, _ := f.screen.GetContents()
	return cells[(boardTop+y)*width+x*cellWidth]
}

func TestRunMovesRevealsAndFlags(t *testing.T) {
	f := newFixture(t)
	f.screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	f.press(' ', 'f')
	f.screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	f.press('f', 'q')

	require.NoError(t, f.ui.Run())

	s := f.engine.Snapshot()
	assert.Equal(t, mines.Coordinate{X: 1, Y: 1}, s.Cursor)
	assert.Equal(t, "1", s.At(mines.Coordinate{X: 1, Y: 0}))
	assert.Equal(t, "F", s.At(mines.Coordinate{X: 1, Y: 1}))
	assert.Equal(t, mines.Playing, s.Status)
}

func TestRunDrawsBoard(t *testing.T) {
	f := newFixture(t)
	f.press('l', 'l', ' ', 'q')

	require.NoError(t, f.ui.Run())

	assert.Equal(t, []rune{'?'}, f.cellAt(t, 0, 0).Runes)
	assert.Equal(t, []rune{'1'}, f.cellAt(t, 1, 0).Runes)
	assert.Equal(t, []rune{'2'}, f.cellAt(t, 1, 1).Runes)
	assert.Equal(t, []rune{'?'}, f.cellAt(t, 2, 2).Runes)

	cursor := f.cellAt(t, 2, 0)
	assert.Equal(t, []rune{' '}, cursor.Runes, "zero is drawn blank")
	_, bg, _ := cursor.Style.Decompose()
	assert.Equal(t, tcell.ColorYellow, bg)
}

func TestRunLoseAndStartOver(t *testing.T) {
	f := newFixture(t)
	f.press(' ')

	f.screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.NoError(t, f.ui.Run())
	require.Equal(t, mines.Lost, f.engine.Status())
	require.NotNil(t, f.hook.LastEntry())
	assert.Equal(t, "game over", f.hook.LastEntry().Message)
	assert.Equal(t, "lost", f.hook.LastEntry().Data["status"])

	f.press('l', 'n', 'q')
	require.NoError(t, f.ui.Run())

	s := f.engine.Snapshot()
	assert.Equal(t, mines.Playing, s.Status)
	assert.Equal(t, mines.Coordinate{}, s.Cursor)
	assert.Equal(t, 2, s.MineCount)
	for _, cell := range s.Cells {
		assert.Equal(t, "?", cell.Glyph)
	}
	assert.Equal(t, logrus.InfoLevel, f.hook.LastEntry().Level)
	assert.Equal(t, "new board", f.hook.LastEntry().Message)
}

func TestRunReplay(t *testing.T) {
	f := newFixture(t)
	f.press('j', 'j', 'l', 'l', ' ', 'r', 'q')

	require.NoError(t, f.ui.Run())

	s := f.engine.Snapshot()
	assert.Equal(t, mines.Playing, s.Status)
	assert.Equal(t, mines.Coordinate{}, s.Cursor)
	for _, cell := range s.Cells {
		assert.Equal(t, "?", cell.Glyph)
	}
}

func TestInterrupt(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ui.Interrupt())
	assert.NoError(t, f.ui.Run())
}
