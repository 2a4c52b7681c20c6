package tictactoe

import (
	"math/bits"
	"strings"
)

const fullBoard uint16 = 0b111111111

// Position is one tic-tac-toe state: a bitboard per player plus whose
// turn it is. It is a plain value, Act copies it, so positions can be
// handed around freely without aliasing.
type Position struct {
	bitboards [2]uint16 // cross, circle
	turn      Mark
}

// The empty board, cross to move.
func New() Position {
	return Position{turn: Cross}
}

func (p Position) Player() Mark {
	return p.turn
}

// Play a mark on the given square for the player to move. Pure, returns
// the successor. The square must be free, see PossibleActions.
func (p Position) Act(sq Square) Position {
	p.bitboards[p.turn-1] |= 1 << sq
	p.turn = p.turn.other()
	return p
}

// Free squares, nil once the game is over.
func (p Position) PossibleActions() []Square {
	if _, over := p.EndStatus(); over {
		return nil
	}

	moves := make([]Square, 0, 9)
	free := uint(fullBoard &^ (p.bitboards[0] | p.bitboards[1]))
	for free != 0 {
		moves = append(moves, Square(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}

// Mark occupying the square.
func (p Position) At(sq Square) Mark {
	switch {
	case p.bitboards[0]&(1<<sq) != 0:
		return Cross
	case p.bitboards[1]&(1<<sq) != 0:
		return Circle
	default:
		return None
	}
}

func (p Position) String() string {
	var b strings.Builder
	for sq := A3; sq <= C1; sq++ {
		b.WriteString(p.At(sq).String())
		if sq%3 == 2 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
