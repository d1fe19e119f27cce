package entity

import (
	"errors"
	"fmt"
	"strings"
)

const BoardSize = 3

// MaxTurns - number of cells on the board, a session with this many turns played is exhausted.
const MaxTurns = BoardSize * BoardSize

var ErrUnknownCell = errors.New("unknown cell value")

// Cell - state of one square. X and O double as the two player marks.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent - the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	if that == Empty {
		return []byte{}, nil
	}

	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", " ":
		*that = Empty
	case "X":
		*that = X
	case "O":
		*that = O
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, text)
	}

	return nil
}

// Board - rows top to bottom, columns left to right, zero-based.
type Board [BoardSize][BoardSize]Cell

// Get panics on out of range indices, callers validate user input first.
func (that *Board) Get(row, col int) Cell {
	return that[row][col]
}

func (that *Board) Set(row, col int, cell Cell) {
	that[row][col] = cell
}

func (that *Board) IsOccupied(row, col int) bool {
	return that[row][col] != Empty
}

// Occupied - number of non-empty cells.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}

	return count
}

// Render - the textual board as it is written to logs.
func (that *Board) Render() string {
	return that.RenderWith(Cell.String)
}

// RenderWith - same layout as Render with a custom cell formatter.
func (that *Board) RenderWith(format func(Cell) string) string {
	var sb strings.Builder

	for i, row := range that {
		if i > 0 {
			sb.WriteString("\n-----------")
		}
		sb.WriteString(fmt.Sprintf("\n %s | %s | %s ", format(row[0]), format(row[1]), format(row[2])))
	}

	return sb.String()
}
