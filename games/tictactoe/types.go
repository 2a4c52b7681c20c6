package tictactoe

// Mark identifies a player and doubles as cell content.
type Mark uint8

const (
	None   Mark = 0
	Cross  Mark = 1
	Circle Mark = 2
)

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return "."
	}
}

func (m Mark) other() Mark {
	if m == Cross {
		return Circle
	}
	return Cross
}

// How a finished game ended.
type Termination uint8

const (
	TerminationNone Termination = iota
	TerminationCrossWon
	TerminationCircleWon
	TerminationDraw
)

func (t Termination) String() string {
	switch t {
	case TerminationCrossWon:
		return "cross won"
	case TerminationCircleWon:
		return "circle won"
	case TerminationDraw:
		return "draw"
	default:
		return "in progress"
	}
}

// Payoff of a finished game for this player: 1 for a win, 0 for a
// loss, 0.5 for a draw.
func (m Mark) Reward(t Termination) float64 {
	switch t {
	case TerminationCrossWon:
		if m == Cross {
			return 1
		}
		return 0
	case TerminationCircleWon:
		if m == Circle {
			return 1
		}
		return 0
	default:
		return 0.5
	}
}
