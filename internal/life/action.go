package life

import "fmt"

// ActionKind enumerates the commands the presentation layer can issue.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionTogglePlay
	ActionClear
	ActionReset
	ActionRandomize
	ActionSpeedUp
	ActionSpeedDown
	ActionToggleCell
	ActionStep
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionTogglePlay: "toggle-play",
	ActionClear:      "clear",
	ActionReset:      "reset",
	ActionRandomize:  "randomize",
	ActionSpeedUp:    "speed-up",
	ActionSpeedDown:  "speed-down",
	ActionToggleCell: "toggle-cell",
	ActionStep:       "step",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("action(%d)", uint8(k))
}

// Action is a single user command. Row and Col are only meaningful for
// ActionToggleCell.
type Action struct {
	Kind ActionKind
	Row  int
	Col  int
}

// Do returns an action of the given kind.
func Do(kind ActionKind) Action { return Action{Kind: kind} }

// ToggleCell returns the action that flips the cell at (row, col).
func ToggleCell(row, col int) Action {
	return Action{Kind: ActionToggleCell, Row: row, Col: col}
}

func (a Action) String() string {
	if a.Kind == ActionToggleCell {
		return fmt.Sprintf("%s(%d,%d)", a.Kind, a.Row, a.Col)
	}
	return a.Kind.String()
}
