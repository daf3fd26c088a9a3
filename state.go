package jsonb

// State describes what the builder will accept next at the current
// nesting level.
type State uint8

const (
	// StateValue accepts an object start, an array start, or a bare value.
	StateValue State = iota
	StateObjectKeyOrClose
	StateObjectValue
	StateObjectNextKeyOrClose
	StateArrayValueOrClose
	StateArrayNextValueOrClose
	StateError
	StateDone
)

var stateNames = []string{
	"Value",
	"ObjectKeyOrClose",
	"ObjectValue",
	"ObjectNextKeyOrClose",
	"ArrayValueOrClose",
	"ArrayNextValueOrClose",
	"Error",
	"Done",
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
