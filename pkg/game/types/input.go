package types

import "strings"

// Command is a logical input command. Physical keys are mapped to commands by the input source.
type Command uint8

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandAttack
	CommandPause
	CommandRestart

	commandCount
)

var commandNames = [...]string{
	CommandMoveLeft:  "move_left",
	CommandMoveRight: "move_right",
	CommandMoveUp:    "move_up",
	CommandMoveDown:  "move_down",
	CommandAttack:    "attack",
	CommandPause:     "pause",
	CommandRestart:   "restart",
}

func (c Command) String() string {
	if c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand maps a command name to a Command. Unknown names report false.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range commandNames {
		if n == name {
			return Command(i), true
		}
	}
	return 0, false
}

// InputState is the set of commands held during a tick.
type InputState uint16

// NewInputState builds an input state from held commands. Unknown commands are ignored.
func NewInputState(commands ...Command) InputState {
	var s InputState
	for _, c := range commands {
		s = s.With(c)
	}
	return s
}

// With returns the state with the command held.
func (s InputState) With(c Command) InputState {
	if c >= commandCount {
		return s
	}
	return s | 1<<c
}

// Held returns true if the command is held.
func (s InputState) Held(c Command) bool {
	if c >= commandCount {
		return false
	}
	return s&(1<<c) != 0
}

// Pressed returns true if the command is held now but was not held in prev.
func (s InputState) Pressed(prev InputState, c Command) bool {
	return s.Held(c) && !prev.Held(c)
}
