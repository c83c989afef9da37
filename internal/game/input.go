package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/shadowroom/internal/world"
)

// Command is what a key press asks the game to do.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdReload
	CmdQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveUp:
		return "move_up"
	case CmdMoveDown:
		return "move_down"
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdReload:
		return "reload"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction returns the movement direction of a move command.
func (c Command) Direction() (world.Direction, bool) {
	switch c {
	case CmdMoveUp:
		return world.DirUp, true
	case CmdMoveDown:
		return world.DirDown, true
	case CmdMoveLeft:
		return world.DirLeft, true
	case CmdMoveRight:
		return world.DirRight, true
	default:
		return 0, false
	}
}

// commandFor maps a key event to a command. Letters are case sensitive:
// only lower-case w, a, s, d move.
func commandFor(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		return CmdMoveUp
	case tcell.KeyDown:
		return CmdMoveDown
	case tcell.KeyLeft:
		return CmdMoveLeft
	case tcell.KeyRight:
		return CmdMoveRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			return CmdMoveUp
		case 's':
			return CmdMoveDown
		case 'a':
			return CmdMoveLeft
		case 'd':
			return CmdMoveRight
		case 'r':
			return CmdReload
		case 'q', 'Q':
			return CmdQuit
		}
	}
	return CmdNone
}
