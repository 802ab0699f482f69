package recording

import "github.com/gogpu/seamark"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawMarker CommandType = iota // Draw a marker path
	CmdDrawText                      // Draw a label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawMarker: "DrawMarker",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
// The zero value is a valid reference to the first path (if any).
type PathRef uint32

// InvalidRef marks a reference that points at no resource.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is valid (not InvalidRef).
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// MarkerCommand draws a pooled path at a chart position.
type MarkerCommand struct {
	Position seamark.Point
	Path     PathRef
	Style    seamark.Style
}

// Type implements Command.
func (MarkerCommand) Type() CommandType { return CmdDrawMarker }

// TextCommand draws a label.
type TextCommand struct {
	Label seamark.Label
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdDrawText }
