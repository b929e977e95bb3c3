package kociemba

// CubieCube is a cube state held as four fixed-length arrays: which
// cubie occupies each corner/edge slot, and that cubie's orientation.
//
// Corner orientation is 0 (untwisted), 1 (clockwise) or 2
// (counter-clockwise). Values 3,4,5 are reserved for mirrored corners,
// produced only by symmetry-multiplications; basic moves never produce
// them, but CornerMultiply still has to handle them correctly.
// Edge orientation is 0 (aligned) or 1 (flipped).
type CubieCube struct {
	cp [8]Corner
	co [8]int
	ep [12]Edge
	eo [12]int
}

// solved permutations, corners and edges identity-mapped to their own slot.
var (
	cpSolved = [8]Corner{UFR, UFL, UBL, UBR, DFR, DFL, DBL, DBR}
	epSolved = [12]Edge{UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR}
)

// Solved returns the identity cube.
func Solved() CubieCube {
	return CubieCube{cp: cpSolved, ep: epSolved}
}

// NewCubieCube builds a cube from optional arrays, defaulting any nil
// argument to its solved value. Passing non-nil arrays is the caller's
// responsibility to ensure they satisfy the cube invariants (permutation,
// orientation parity) — this constructor does not validate them.
func NewCubieCube(cp *[8]Corner, co *[8]int, ep *[12]Edge, eo *[12]int) CubieCube {
	c := Solved()
	if cp != nil {
		c.cp = *cp
	}
	if co != nil {
		c.co = *co
	}
	if ep != nil {
		c.ep = *ep
	}
	if eo != nil {
		c.eo = *eo
	}
	return c
}

// CP, CO, EP, EO expose copies of the underlying arrays for read-only
// inspection (rendering, serialization, tests).
func (c *CubieCube) CP() [8]Corner { return c.cp }
func (c *CubieCube) CO() [8]int    { return c.co }
func (c *CubieCube) EP() [12]Edge  { return c.ep }
func (c *CubieCube) EO() [12]int   { return c.eo }

func floorMod(a, n int) int {
	return ((a % n) + n) % n
}

// CornerMultiply sets self = self ∘ b on the corners: do b, then self.
// Orientation follows the D3 (mirror-aware) rule so the result stays
// correct even when self or b carries a mirrored orientation (values
// 3..5); basic moves never introduce mirrors, but multiplication has to
// tolerate them regardless.
func (c *CubieCube) CornerMultiply(b *CubieCube) {
	var perm [8]Corner
	var orie [8]int

	for i := 0; i < 8; i++ {
		perm[i] = c.cp[b.cp[i]]

		a := c.co[b.cp[i]]
		d := b.co[i]

		switch {
		case a < 3 && d < 3:
			orie[i] = (a + d) % 3
		case a < 3 && d >= 3:
			orie[i] = 3 + floorMod(a+(d-3), 3)
		case a >= 3 && d < 3:
			orie[i] = 3 + floorMod((a-3)-d, 3)
		default:
			orie[i] = floorMod((a-3)-(d-3), 3)
		}
	}

	c.cp = perm
	c.co = orie
}

// CornerMultiplyPlain sets self = self ∘ b on the corners combining
// orientation purely mod 3, with no mirror handling. It is only valid
// when both self and b are guaranteed non-mirrored (orientations in
// 0..2), which is always true for basic moves — this is what the
// move-table generator uses, since it is cheaper than CornerMultiply.
func (c *CubieCube) CornerMultiplyPlain(b *CubieCube) {
	var perm [8]Corner
	var orie [8]int

	for i := 0; i < 8; i++ {
		perm[i] = c.cp[b.cp[i]]
		orie[i] = (c.co[b.cp[i]] + b.co[i]) % 3
	}

	c.cp = perm
	c.co = orie
}

// EdgeMultiply sets self = self ∘ b on the edges: do b, then self. Edges
// cannot be mirrored, so orientation combines by straight mod-2 addition.
func (c *CubieCube) EdgeMultiply(b *CubieCube) {
	var perm [12]Edge
	var orie [12]int

	for i := 0; i < 12; i++ {
		perm[i] = c.ep[b.ep[i]]
		orie[i] = (c.eo[b.ep[i]] + b.eo[i]) % 2
	}

	c.ep = perm
	c.eo = orie
}

// basic move cubie data, one quarter-turn clockwise of each face, in
// U, R, F, D, L, B order.
var (
	cpU = [8]Corner{UBR, UFR, UFL, UBL, DFR, DFL, DBL, DBR}
	coU = [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	epU = [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR}
	eoU = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpR = [8]Corner{DFR, UFL, UBL, UFR, DBR, DFL, DBL, UBR}
	coR = [8]int{2, 0, 0, 1, 1, 0, 0, 2}
	epR = [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR}
	eoR = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpF = [8]Corner{UFL, DFL, UBL, UBR, UFR, DFR, DBL, DBR}
	coF = [8]int{1, 2, 0, 0, 2, 1, 0, 0}
	epF = [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR}
	eoF = [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0}

	cpD = [8]Corner{UFR, UFL, UBL, UBR, DFL, DBL, DBR, DFR}
	coD = [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	epD = [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR}
	eoD = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpL = [8]Corner{UFR, UBL, DBL, UBR, DFR, UFL, DFL, DBR}
	coL = [8]int{0, 1, 2, 0, 0, 2, 1, 0}
	epL = [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR}
	eoL = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpB = [8]Corner{UFR, UFL, UBR, DBR, DFR, DFL, UBL, DBL}
	coB = [8]int{0, 0, 1, 2, 0, 0, 2, 1}
	epB = [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB}
	eoB = [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1}
)

// BasicMoves holds one CubieCube per face, the result of applying a
// single clockwise quarter-turn of that face to a solved cube, in
// U, R, F, D, L, B order.
var BasicMoves = [6]CubieCube{
	{cp: cpU, co: coU, ep: epU, eo: eoU},
	{cp: cpR, co: coR, ep: epR, eo: eoR},
	{cp: cpF, co: coF, ep: epF, eo: eoF},
	{cp: cpD, co: coD, ep: epD, eo: eoD},
	{cp: cpL, co: coL, ep: epL, eo: eoL},
	{cp: cpB, co: coB, ep: epB, eo: eoB},
}

// ApplyBasicMove composes self = self ∘ BasicMoves[face] once, using the
// mirror-aware multiply so it stays correct for any cube ApplyBasicMove
// is called on, including ones reached via symmetry operations.
func (c *CubieCube) ApplyBasicMove(face int) {
	m := BasicMoves[face]
	c.CornerMultiply(&m)
	c.EdgeMultiply(&m)
}

// applyBasicMovePlain is the CornerMultiplyPlain-based twin of
// ApplyBasicMove, used by the move-table generator where mirrors never
// occur and the cheaper multiply is safe.
func (c *CubieCube) applyBasicMovePlain(face int) {
	m := BasicMoves[face]
	c.CornerMultiplyPlain(&m)
	c.EdgeMultiply(&m)
}

// ApplyMove composes self = self ∘ BasicMoves[m.Face()] as many times as
// m's quarter-turn count requires.
func (c *CubieCube) ApplyMove(m Move) {
	for i := 0; i <= m.Turn(); i++ {
		c.ApplyBasicMove(m.Face())
	}
}

// Equal reports whether two cubes are component-wise identical.
func (c *CubieCube) Equal(other *CubieCube) bool {
	return c.cp == other.cp && c.co == other.co && c.ep == other.ep && c.eo == other.eo
}
