// Package kociemba implements the cubie-level state representation and
// coordinate/move-table machinery behind Kociemba's two-phase algorithm.
//
// It deliberately stops short of the search itself: callers compose
// CubieCube, the coordinate encodings, and the move tables into whatever
// IDA*/two-phase driver they need.
package kociemba

import "fmt"

// Color is one of the six sticker colors, ordered so it indexes directly
// into the facelet/color tables below.
type Color int

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

func (c Color) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[c]
}

// Corner identifies one of the eight corner cubies, in the fixed order
// the coordinate encodings rely on.
type Corner int

const (
	UFR Corner = iota
	UFL
	UBL
	UBR
	DFR
	DFL
	DBL
	DBR
)

func (c Corner) String() string {
	return [...]string{"UFR", "UFL", "UBL", "UBR", "DFR", "DFL", "DBL", "DBR"}[c]
}

// Edge identifies one of the twelve edge cubies. EdgeInvalid is a
// sentinel used only while decoding the slice-sorted coordinate, to mark
// a slot that hasn't been assigned yet.
type Edge int

const (
	EdgeInvalid Edge = iota - 1
	UR
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

func (e Edge) String() string {
	if e == EdgeInvalid {
		return "INV"
	}
	return [...]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}[e]
}

// Facelet indexes one of the 54 stickers, row-major within each of the
// U, R, F, D, L, B bands of nine.
type Facelet int

const (
	U1 Facelet = iota
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	U9
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	L9
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// NumFacelets is the total sticker count.
const NumFacelets = 54

// CornerColor gives, for each corner in cubie-reference orientation, the
// three facelet colors going clockwise starting from the U/D facelet.
var CornerColor = [8][3]Color{
	{ColorU, ColorR, ColorF},
	{ColorU, ColorF, ColorL},
	{ColorU, ColorL, ColorB},
	{ColorU, ColorB, ColorR},
	{ColorD, ColorF, ColorR},
	{ColorD, ColorL, ColorF},
	{ColorD, ColorB, ColorL},
	{ColorD, ColorR, ColorB},
}

// EdgeColor gives, for each edge in cubie-reference orientation, its two
// facelet colors.
var EdgeColor = [12][2]Color{
	{ColorU, ColorR}, {ColorU, ColorF}, {ColorU, ColorL}, {ColorU, ColorB},
	{ColorD, ColorR}, {ColorD, ColorF}, {ColorD, ColorL}, {ColorD, ColorB},
	{ColorF, ColorR}, {ColorF, ColorL}, {ColorB, ColorL}, {ColorB, ColorR},
}

// CornerFacelet maps each corner slot to its three facelet positions,
// going clockwise starting from the U/D facelet.
var CornerFacelet = [8][3]Facelet{
	{U9, R1, F3}, {U7, F1, L3}, {U1, L1, B3}, {U3, B1, R3},
	{D3, F9, R7}, {D1, L9, F7}, {D7, B9, L7}, {D9, R9, B7},
}

// EdgeFacelet maps each edge slot to its two facelet positions.
var EdgeFacelet = [12][2]Facelet{
	{U6, R2}, {U8, F2}, {U4, L2}, {U2, B2},
	{D6, R8}, {D2, F8}, {D4, L8}, {D8, B8},
	{F6, R4}, {F4, L6}, {B6, L4}, {B4, R6},
}

// Move/coordinate-space sizes.
const (
	NMove        = 18   // 6 faces * 3 quarter-turn counts
	NTwist       = 2187 // 3^7, corner-orientation coordinate
	NFlip        = 2048 // 2^11, edge-orientation coordinate
	NSliceSorted = 11880 // C(12,4) * 4!, UD-slice position+order coordinate
)

// Move is a move index in [0, NMove): face*3 + turn, turn in
// {quarter, half, inverse-quarter}.
type Move int

// Face returns the face index in [0,6) this move turns: U=0, R=1, F=2,
// D=3, L=4, B=5.
func (m Move) Face() int { return int(m) / 3 }

// Turn returns the quarter-turn count in [0,3): 0=quarter, 1=half,
// 2=inverse-quarter.
func (m Move) Turn() int { return int(m) % 3 }

var faceNames = [6]string{"U", "R", "F", "D", "L", "B"}

// String renders the move for display, e.g. "R", "R2", "R'". This is a
// one-way formatter: the core never parses notation back into a Move.
func (m Move) String() string {
	if m < 0 || m >= NMove {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	switch m.Turn() {
	case 0:
		return faceNames[m.Face()]
	case 1:
		return faceNames[m.Face()] + "2"
	default:
		return faceNames[m.Face()] + "'"
	}
}

// NewMove builds the move index for the given face (0..6) and quarter-turn
// count (0..3).
func NewMove(face, turn int) Move {
	return Move(face*3 + turn)
}
