package kociemba

import "errors"

// ErrNotImplemented is returned by coordinate functions the two-phase
// search needs but this core does not implement, since search itself is
// out of scope here.
var ErrNotImplemented = errors.New("kociemba: not implemented")

// GetUEdges would return the permutation coordinate of the four U-layer
// edges (UR, UF, UL, UB) used by phase 2 of a full two-phase search:
// range [0,1680) in phase 1, [0,24) once the other eight edges are
// already in the UD slice. The source this spec was distilled from left
// it as a stub (it returns a constant), and building it out requires
// deciding phase-1/phase-2 search semantics this spec does not define,
// so it stays a stub here too.
func (c *CubieCube) GetUEdges() (int, error) {
	return 0, ErrNotImplemented
}

// SetUEdges is the inverse of GetUEdges; see its doc comment.
func (c *CubieCube) SetUEdges(idx int) error {
	return ErrNotImplemented
}
