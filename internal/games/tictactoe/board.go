package tictactoe

import "errors"

// Mark is the content of a board cell.
type Mark int8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Board placement errors.
var (
	ErrOutOfRange = errors.New("tictactoe: position out of range")
	ErrOccupied   = errors.New("tictactoe: cell already occupied")
	ErrFinished   = errors.New("tictactoe: game already finished")
)

// Pos is a board coordinate.
type Pos struct {
	Row, Col int
}

// Board is an N x N grid where K marks in a row win.
type Board struct {
	n, k   int
	cells  []Mark
	turn   Mark
	placed int
	winner Mark
	line   []Pos
}

// DefaultWinLength picks the run length for a board size: the full row on
// 3x3, four on 4x4 and 5x5, five on anything larger.
func DefaultWinLength(n int) int {
	switch {
	case n <= 3:
		return n
	case n <= 5:
		return 4
	default:
		return 5
	}
}

// NewBoard creates an empty n x n board. A k outside [3, n] selects
// DefaultWinLength(n). X moves first.
func NewBoard(n, k int) *Board {
	if n < 1 {
		n = 3
	}
	if k < 3 || k > n {
		k = DefaultWinLength(n)
	}
	return &Board{
		n:     n,
		k:     k,
		cells: make([]Mark, n*n),
		turn:  X,
	}
}

// Size returns N.
func (b *Board) Size() int { return b.n }

// WinLength returns K.
func (b *Board) WinLength() int { return b.k }

// Turn returns the mark that moves next.
func (b *Board) Turn() Mark { return b.turn }

// At returns the mark at (row, col), or Empty when out of range.
func (b *Board) At(row, col int) Mark {
	if !b.inRange(row, col) {
		return Empty
	}
	return b.cells[row*b.n+col]
}

func (b *Board) inRange(row, col int) bool {
	return row >= 0 && row < b.n && col >= 0 && col < b.n
}

// Place puts the current player's mark at (row, col) and passes the turn.
// It is the only way the board is mutated.
func (b *Board) Place(row, col int) error {
	if b.Finished() {
		return ErrFinished
	}
	if !b.inRange(row, col) {
		return ErrOutOfRange
	}
	idx := row*b.n + col
	if b.cells[idx] != Empty {
		return ErrOccupied
	}

	b.cells[idx] = b.turn
	b.placed++
	b.winner, b.line = b.scan()
	b.turn = b.turn.Other()
	return nil
}

// Winner returns the winning mark and the cells of the winning run, or
// Empty and nil.
func (b *Board) Winner() (Mark, []Pos) {
	return b.winner, b.line
}

// Draw reports a full board with no winner.
func (b *Board) Draw() bool {
	return b.winner == Empty && b.placed == len(b.cells)
}

// Finished reports a win or a draw.
func (b *Board) Finished() bool {
	return b.winner != Empty || b.Draw()
}

// directions scanned for runs: horizontal, vertical, both diagonals.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// scan looks for K equal non-empty marks in a line.
func (b *Board) scan() (Mark, []Pos) {
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			m := b.At(r, c)
			if m == Empty {
				continue
			}
			for _, d := range directions {
				endR, endC := r+d[0]*(b.k-1), c+d[1]*(b.k-1)
				if !b.inRange(endR, endC) {
					continue
				}
				run := make([]Pos, 0, b.k)
				for i := 0; i < b.k; i++ {
					p := Pos{Row: r + d[0]*i, Col: c + d[1]*i}
					if b.At(p.Row, p.Col) != m {
						break
					}
					run = append(run, p)
				}
				if len(run) == b.k {
					return m, run
				}
			}
		}
	}
	return Empty, nil
}
