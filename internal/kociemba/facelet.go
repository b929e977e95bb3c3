package kociemba

import "strings"

// FaceletsOf renders a CubieCube as the 54 sticker colors a human would
// see, row-major within each of the U, R, F, D, L, B bands of nine. It
// only reads the cube; it never needs to write one back (the inverse
// problem, decoding a scrambled set of facelets into a CubieCube, is out
// of scope here).
func FaceletsOf(c *CubieCube) [NumFacelets]Color {
	var out [NumFacelets]Color

	// Centers never move: the middle facelet of each band is its own color.
	for f := 0; f < 6; f++ {
		out[9*f+4] = Color(f)
	}

	for i := 0; i < 8; i++ {
		p := c.cp[i]
		o := c.co[i]
		for k := 0; k < 3; k++ {
			out[CornerFacelet[i][(k+o)%3]] = CornerColor[p][k]
		}
	}

	for i := 0; i < 12; i++ {
		p := c.ep[i]
		o := c.eo[i]
		for k := 0; k < 2; k++ {
			out[EdgeFacelet[i][(k+o)%2]] = EdgeColor[p][k]
		}
	}

	return out
}

// muted ANSI colors, one per Color, in the same register as the
// teacher's Color.ColoredString: readable without burning the eyes.
var colorANSI = [6]string{
	"\033[37mU\033[0m", // light gray
	"\033[31mR\033[0m", // muted red
	"\033[32mG\033[0m", // muted green (shown as F's color: green)
	"\033[33mD\033[0m", // muted yellow
	"\033[35mL\033[0m", // muted magenta
	"\033[34mB\033[0m", // muted blue
}

// Render draws the 54 facelets as an unfolded cross: U on top, L F R B
// in a row, D on the bottom.
func Render(faces [NumFacelets]Color, useColor bool) string {
	letter := func(f Facelet) string {
		if useColor {
			return colorANSI[faces[f]]
		}
		return faces[f].String()
	}

	row := func(fs ...Facelet) string {
		var sb strings.Builder
		for _, f := range fs {
			sb.WriteString(letter(f))
			sb.WriteString(" ")
		}
		return sb.String()
	}

	var sb strings.Builder
	indent := "      "

	sb.WriteString(indent + row(U1, U2, U3) + "\n")
	sb.WriteString(indent + row(U4, U5, U6) + "\n")
	sb.WriteString(indent + row(U7, U8, U9) + "\n")

	sb.WriteString(row(L1, L2, L3) + row(F1, F2, F3) + row(R1, R2, R3) + row(B1, B2, B3) + "\n")
	sb.WriteString(row(L4, L5, L6) + row(F4, F5, F6) + row(R4, R5, R6) + row(B4, B5, B6) + "\n")
	sb.WriteString(row(L7, L8, L9) + row(F7, F8, F9) + row(R7, R8, R9) + row(B7, B8, B9) + "\n")

	sb.WriteString(indent + row(D1, D2, D3) + "\n")
	sb.WriteString(indent + row(D4, D5, D6) + "\n")
	sb.WriteString(indent + row(D7, D8, D9) + "\n")

	return sb.String()
}
