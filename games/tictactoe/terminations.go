package tictactoe

// Rows, columns and diagonals as bitboards.
var winningPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// Terminal result of the position, comma-ok. Checked from the
// bitboards on every call, positions carry no cached flag.
func (p Position) EndStatus() (Termination, bool) {
	for _, pattern := range winningPatterns {
		if p.bitboards[0]&pattern == pattern {
			return TerminationCrossWon, true
		}
		if p.bitboards[1]&pattern == pattern {
			return TerminationCircleWon, true
		}
	}

	if p.bitboards[0]|p.bitboards[1] == fullBoard {
		return TerminationDraw, true
	}

	return TerminationNone, false
}
