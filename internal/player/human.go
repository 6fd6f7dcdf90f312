package player

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Ofekfa/TicTacToe-Game/internal/entity"
)

// Human relays moves typed on a text stream as "row col" pairs. It keeps
// prompting until the input names an empty in-bounds cell, so the match
// never sees an illegal human move.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Human) ChooseMove(board *entity.Board, mark entity.Mark) (entity.Cell, error) {
	fmt.Fprintf(that.out, "Player %s, type coordinates (row col): ", mark)

	for {
		row, col, err := that.readCoordinates()
		if err != nil {
			return entity.Cell{}, fmt.Errorf("failed to read coordinates: %w", err)
		}

		if !board.InBounds(row, col) {
			fmt.Fprint(that.out, "Invalid mark position. Please choose a valid position: ")
			continue
		}

		if board.At(row, col) != entity.MarkEmpty {
			fmt.Fprint(that.out, "Mark position is already occupied. Please choose a valid position: ")
			continue
		}

		return entity.Cell{Row: row, Col: col}, nil
	}
}

// readCoordinates - reads lines until one parses as two integers.
func (that *Human) readCoordinates() (int, int, error) {
	for {
		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, 0, err
			}

			return 0, 0, ErrInputClosed
		}

		fields := strings.Fields(that.in.Text())
		if len(fields) != 2 {
			fmt.Fprint(that.out, "Type two numbers separated by a space: ")
			continue
		}

		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr != nil || colErr != nil {
			fmt.Fprint(that.out, "Type two numbers separated by a space: ")
			continue
		}

		return row, col, nil
	}
}
