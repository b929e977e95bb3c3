package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rkoenig/twophase/internal/kociemba"
)

// parseMoveIndices turns a comma-separated list of move indices
// ("9,0,11") into Moves. It never accepts algebraic notation ("R2",
// "U'") -- the core only works with 0..17 indices, so that is all any
// command surface here accepts.
func parseMoveIndices(s string) ([]kociemba.Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	moves := make([]kociemba.Move, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing move index %q: %w", f, err)
		}
		if n < 0 || n >= kociemba.NMove {
			return nil, fmt.Errorf("move index %d out of range [0,%d)", n, kociemba.NMove)
		}
		moves = append(moves, kociemba.Move(n))
	}
	return moves, nil
}

func applyMoves(c *kociemba.CubieCube, moves []kociemba.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}
