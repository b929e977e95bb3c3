package kociemba

import "testing"

func TestSolvedIsIdentity(t *testing.T) {
	c := Solved()
	if c.cp != cpSolved {
		t.Errorf("Solved().cp = %v, want %v", c.cp, cpSolved)
	}
	if c.ep != epSolved {
		t.Errorf("Solved().ep = %v, want %v", c.ep, epSolved)
	}
	for i, o := range c.co {
		if o != 0 {
			t.Errorf("Solved().co[%d] = %d, want 0", i, o)
		}
	}
	for i, o := range c.eo {
		if o != 0 {
			t.Errorf("Solved().eo[%d] = %d, want 0", i, o)
		}
	}
}

func TestNewCubieCubeDefaults(t *testing.T) {
	c := NewCubieCube(nil, nil, nil, nil)
	solved := Solved()
	if !c.Equal(&solved) {
		t.Errorf("NewCubieCube(nil,nil,nil,nil) = %+v, want solved", c)
	}
}

func sumMod(vals []int, mod int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total % mod
}

func isPermutation[T ~int](vals []T, n int) bool {
	seen := make([]bool, n)
	for _, v := range vals {
		if int(v) < 0 || int(v) >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestFaceMoveFourTimesIsIdentity(t *testing.T) {
	solved := Solved()
	for face := 0; face < 6; face++ {
		c := Solved()
		for turn := 0; turn < 4; turn++ {
			c.ApplyBasicMove(face)
		}
		if !c.Equal(&solved) {
			t.Errorf("face %d applied 4 times != solved: %+v", face, c)
		}
	}
}

func TestMoveOrientationAndPermutationInvariants(t *testing.T) {
	c := Solved()
	moves := []Move{NewMove(1, 0), NewMove(0, 1), NewMove(2, 2), NewMove(4, 0), NewMove(5, 1), NewMove(3, 2)}
	for step, m := range moves {
		c.ApplyMove(m)

		if got := sumMod(c.co[:], 3); got != 0 {
			t.Errorf("after move %d: sum(co) mod 3 = %d, want 0", step, got)
		}
		if got := sumMod(c.eo[:], 2); got != 0 {
			t.Errorf("after move %d: sum(eo) mod 2 = %d, want 0", step, got)
		}
		if !isPermutation(c.cp[:], 8) {
			t.Errorf("after move %d: cp %v is not a permutation of 8 corners", step, c.cp)
		}
		if !isPermutation(c.ep[:], 12) {
			t.Errorf("after move %d: ep %v is not a permutation of 12 edges", step, c.ep)
		}
	}
}

func TestRThenRPrimeIsIdentity(t *testing.T) {
	solved := Solved()
	c := Solved()
	c.ApplyMove(NewMove(1, 0)) // R
	c.ApplyMove(NewMove(1, 2)) // R'
	if !c.Equal(&solved) {
		t.Errorf("R R' != solved: %+v", c)
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	solved := Solved()
	c := Solved()
	sequence := []Move{NewMove(1, 0), NewMove(0, 0), NewMove(1, 2), NewMove(0, 2)} // R U R' U'
	for rep := 0; rep < 6; rep++ {
		for _, m := range sequence {
			c.ApplyMove(m)
		}
	}
	if !c.Equal(&solved) {
		t.Errorf("(R U R' U')*6 != solved: %+v", c)
	}
}

func TestCornerMultiplyAssociative(t *testing.T) {
	a := Solved()
	a.ApplyMove(NewMove(1, 0))
	b := Solved()
	b.ApplyMove(NewMove(0, 1))
	c := Solved()
	c.ApplyMove(NewMove(2, 2))

	left := a
	left.CornerMultiply(&b)
	left.CornerMultiply(&c)
	left.EdgeMultiply(&b)
	left.EdgeMultiply(&c)

	bc := b
	bc.CornerMultiply(&c)
	bc.EdgeMultiply(&c)
	right := a
	right.CornerMultiply(&bc)
	right.EdgeMultiply(&bc)

	if left.cp != right.cp || left.co != right.co {
		t.Errorf("(A*B)*C corners = %v/%v, A*(B*C) corners = %v/%v", left.cp, left.co, right.cp, right.co)
	}
	if left.ep != right.ep || left.eo != right.eo {
		t.Errorf("(A*B)*C edges = %v/%v, A*(B*C) edges = %v/%v", left.ep, left.eo, right.ep, right.eo)
	}
}

func TestCornerMultiplyPlainMatchesMirrorAwareWithoutMirrors(t *testing.T) {
	a := Solved()
	a.ApplyMove(NewMove(2, 0))
	b := Solved()
	b.ApplyMove(NewMove(4, 1))

	plain := a
	plain.CornerMultiplyPlain(&b)

	aware := a
	aware.CornerMultiply(&b)

	if plain.cp != aware.cp || plain.co != aware.co {
		t.Errorf("CornerMultiplyPlain = %v/%v, CornerMultiply = %v/%v", plain.cp, plain.co, aware.cp, aware.co)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{NewMove(1, 0), "R"},
		{NewMove(1, 1), "R2"},
		{NewMove(1, 2), "R'"},
		{NewMove(0, 0), "U"},
		{NewMove(5, 2), "B'"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Move(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
