package tictactoe

import "fmt"

// Board squares, row by row from the top-left corner. Rank 3 is the top
// row, files run a to c, chess style.
type Square uint8

const (
	A3 Square = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

func (sq Square) String() string {
	if sq > C1 {
		return fmt.Sprintf("Square(%d)", uint8(sq))
	}
	return string([]byte{'a' + byte(sq%3), '3' - byte(sq/3)})
}

// Parse coordinate notation like "b2". The inverse of Square.String.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("tictactoe: bad square %q", s)
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 2 || rank > 2 {
		return 0, fmt.Errorf("tictactoe: bad square %q", s)
	}
	return Square((2-rank)*3 + file), nil
}
