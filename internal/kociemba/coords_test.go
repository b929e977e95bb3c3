package kociemba

import "testing"

func TestTwistRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 2, 69, 420, 1093, 2186} {
		c := Solved()
		c.SetTwist(v)
		if got := c.GetTwist(); got != v {
			t.Errorf("GetTwist(SetTwist(%d)) = %d", v, got)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 2, 69, 420, 1023, 2047} {
		c := Solved()
		c.SetFlip(v)
		if got := c.GetFlip(); got != v {
			t.Errorf("GetFlip(SetFlip(%d)) = %d", v, got)
		}
	}
}

func TestSliceSortedRoundTrip(t *testing.T) {
	for v := 0; v < NSliceSorted; v += 37 {
		c := Solved()
		c.SetSliceSorted(v)
		if got := c.GetSliceSorted(); got != v {
			t.Errorf("GetSliceSorted(SetSliceSorted(%d)) = %d", v, got)
		}
	}
	// exact boundaries
	for _, v := range []int{0, 1, NSliceSorted - 1} {
		c := Solved()
		c.SetSliceSorted(v)
		if got := c.GetSliceSorted(); got != v {
			t.Errorf("GetSliceSorted(SetSliceSorted(%d)) = %d", v, got)
		}
	}
}

func TestSolvedCoordinatesAreZero(t *testing.T) {
	c := Solved()
	if got := c.GetTwist(); got != 0 {
		t.Errorf("Solved().GetTwist() = %d, want 0", got)
	}
	if got := c.GetFlip(); got != 0 {
		t.Errorf("Solved().GetFlip() = %d, want 0", got)
	}
	if got := c.GetSliceSorted(); got != 0 {
		t.Errorf("Solved().GetSliceSorted() = %d, want 0", got)
	}
}

func TestSingleRTurnCoordinates(t *testing.T) {
	c := Solved()
	c.ApplyMove(NewMove(1, 0)) // R

	if got := c.GetTwist(); got != 1494 {
		t.Errorf("R applied to solved: GetTwist() = %d, want 1494", got)
	}
	if got := c.GetFlip(); got != 0 {
		t.Errorf("R applied to solved: GetFlip() = %d, want 0", got)
	}
}

func TestSliceSortedScansBySlotIndex(t *testing.T) {
	// The four UD-slice edges (FR, FL, BL, BR) sit in slots 8..11 on a
	// solved cube, already in canonical order, so the coordinate is 0.
	c := Solved()
	if got := c.GetSliceSorted(); got != 0 {
		t.Errorf("solved GetSliceSorted() = %d, want 0", got)
	}

	// With the slice edges moved to slots 0..3 (slot index no longer equal
	// to the edge's ordinal), the position part comes from the slots:
	// C(8,1)+C(9,2)+C(10,3)+C(11,4) = 494, order part 0, so 24*494.
	ep := [12]Edge{FR, FL, BL, BR, UR, UF, UL, UB, DR, DF, DL, DB}
	moved := NewCubieCube(nil, nil, &ep, nil)
	if got := moved.GetSliceSorted(); got != 24*494 {
		t.Errorf("slice edges in slots 0..3: GetSliceSorted() = %d, want %d", got, 24*494)
	}
}

func TestBinomialCoeff(t *testing.T) {
	tests := []struct{ n, k, want int }{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{11, 4, 330},
		{3, 5, 0}, // n < k
	}
	for _, tt := range tests {
		if got := BinomialCoeff(tt.n, tt.k); got != tt.want {
			t.Errorf("BinomialCoeff(%d,%d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestRotateLeftRight(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5}
	RotateLeft(arr, 1, 3)
	if got := arr; got[1] != 3 || got[2] != 4 || got[3] != 2 {
		t.Errorf("RotateLeft = %v, want [1 3 4 2 5]", got)
	}
	RotateRight(arr, 1, 3)
	if arr[1] != 2 || arr[2] != 3 || arr[3] != 4 {
		t.Errorf("RotateRight undo = %v, want [1 2 3 4 5]", arr)
	}
}
