package kociemba

import "errors"

// ErrCoordOutOfRange is returned by the Set* coordinate methods when
// given a value outside the coordinate's valid range.
var ErrCoordOutOfRange = errors.New("kociemba: coordinate out of range")

// GetTwist returns the corner-orientation coordinate, 0..NTwist-1: the
// base-3 number formed by co[UFR..DBL] (the DBR slot is redundant, fixed
// by the orientation-parity invariant, and is skipped here).
func (c *CubieCube) GetTwist() int {
	total := 0
	for i := 0; i < 7; i++ {
		total = 3*total + c.co[i]
	}
	return total
}

// SetTwist fills co[UFR..DBL] from twist's base-3 digits and derives
// co[DBR] so that the orientation-parity invariant holds.
func (c *CubieCube) SetTwist(twist int) error {
	if twist < 0 || twist >= NTwist {
		return ErrCoordOutOfRange
	}
	sum := 0
	for i := 6; i >= 0; i-- {
		c.co[i] = twist % 3
		sum += c.co[i]
		twist /= 3
	}
	c.co[DBR] = (3 - sum%3) % 3
	return nil
}

// GetFlip returns the edge-orientation coordinate, 0..NFlip-1: the
// base-2 number formed by eo[UR..BL] (the BR slot is redundant and is
// skipped here).
func (c *CubieCube) GetFlip() int {
	total := 0
	for i := 0; i < 11; i++ {
		total = 2*total + c.eo[i]
	}
	return total
}

// SetFlip fills eo[UR..BL] from flip's base-2 digits and derives eo[BR]
// so that the orientation-parity invariant holds.
func (c *CubieCube) SetFlip(flip int) error {
	if flip < 0 || flip >= NFlip {
		return ErrCoordOutOfRange
	}
	sum := 0
	for i := 10; i >= 0; i-- {
		c.eo[i] = flip % 2
		sum += c.eo[i]
		flip /= 2
	}
	c.eo[BR] = (2 - sum%2) % 2
	return nil
}

// isSliceEdge reports whether e is one of the four UD-slice edges
// (FR, FL, BL, BR).
func isSliceEdge(e Edge) bool {
	return e >= FR && e <= BR
}

// GetSliceSorted returns the UD-slice coordinate, 0..NSliceSorted-1,
// encoding both which four slots hold the slice edges (FR, FL, BL, BR)
// and their relative order.
func (c *CubieCube) GetSliceSorted() int {
	a := 0
	x := 0
	var edge4 [4]int

	for j := 11; j >= 0; j-- {
		if isSliceEdge(c.ep[j]) {
			a += BinomialCoeff(11-j, x+1)
			edge4[3-x] = int(c.ep[j])
			x++
		}
	}

	b := 0
	for j := 3; j >= 1; j-- {
		k := 0
		for edge4[j] != j+8 {
			RotateLeft(edge4[:], 0, j)
			k++
		}
		b = (j+1)*b + k
	}

	return 24*a + b
}

// SetSliceSorted inverts GetSliceSorted: it places the four slice edges
// (FR, FL, BL, BR) into the slots and order idx encodes, and fills the
// remaining eight slots with the other edges in canonical order.
func (c *CubieCube) SetSliceSorted(idx int) error {
	if idx < 0 || idx >= NSliceSorted {
		return ErrCoordOutOfRange
	}
	sliceEdge := [4]Edge{FR, FL, BL, BR}
	otherEdge := [8]Edge{UR, UF, UL, UB, DR, DF, DL, DB}

	b := idx % 24
	a := idx / 24

	for i := range c.ep {
		c.ep[i] = EdgeInvalid
	}

	for j := 1; j < 4; j++ {
		k := b % (j + 1)
		b /= j + 1
		for k > 0 {
			RotateRight(sliceEdge[:], 0, j)
			k--
		}
	}

	x := 4
	for j := 0; j < 12; j++ {
		if a-BinomialCoeff(11-j, x) >= 0 {
			c.ep[j] = sliceEdge[4-x]
			a -= BinomialCoeff(11-j, x)
			x--
		}
	}

	x = 0
	for j := 0; j < 12; j++ {
		if c.ep[j] == EdgeInvalid {
			c.ep[j] = otherEdge[x]
			x++
		}
	}
	return nil
}
