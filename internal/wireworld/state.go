package wireworld

// State is the value held by a single Wireworld cell.
type State uint8

const (
	// Empty cells hold no circuit element and never change.
	Empty State = iota
	// Head is the leading edge of an electron pulse.
	Head
	// Tail is the trailing edge of an electron pulse.
	Tail
	// Wire is a conductor that can carry a pulse.
	Wire

	numStates = 4
)

// States lists every cell state in declaration order.
var States = [numStates]State{Empty, Head, Tail, Wire}

var stateNames = [numStates]string{"empty", "head", "tail", "wire"}

func (s State) String() string {
	if !s.Valid() {
		return "invalid"
	}
	return stateNames[s]
}

// Valid reports whether s is one of the four Wireworld states.
func (s State) Valid() bool { return s < numStates }

// Tick returns the next state of a cell currently in state s that has heads
// electron-head cells among its eight neighbours. It is defined for every
// input; counts outside 1..2 never activate a wire, and invalid states decay
// to Empty.
func Tick(s State, heads int) State {
	switch s {
	case Head:
		return Tail
	case Tail:
		return Wire
	case Wire:
		if heads == 1 || heads == 2 {
			return Head
		}
		return Wire
	default:
		return Empty
	}
}
