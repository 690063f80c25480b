package checkers

import (
	"errors"
	"testing"
)

func TestSquareName(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "a8"},
		{7, 0, "a1"},
		{0, 7, "h8"},
		{3, 4, "e5"},
		{5, 2, "c3"},
	}
	for _, tc := range cases {
		if got := SquareName(Sq(tc.row, tc.col)); got != tc.want {
			t.Fatalf("(%d,%d): got=%q want=%q", tc.row, tc.col, got, tc.want)
		}
		sq, err := ParseSquare(tc.want)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.want, err)
		}
		if sq != Sq(tc.row, tc.col) {
			t.Fatalf("parse %q: got=%d want=%d", tc.want, sq, Sq(tc.row, tc.col))
		}
	}
	for _, bad := range []string{"", "i1", "a9", "a0", "e55", "zz"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("expected ErrInvalidSquare for %q, got %v", bad, err)
		}
	}
}

func TestChainNotation(t *testing.T) {
	simple := Chain{{From: Sq(5, 2), To: Sq(4, 3), Captured: NoSquare}}
	if got := simple.Notation(); got != "c3-d4" {
		t.Fatalf("simple: got=%q", got)
	}

	jumps := Chain{
		{From: Sq(5, 2), To: Sq(3, 4), Jump: true, Captured: Sq(4, 3)},
		{From: Sq(3, 4), To: Sq(1, 6), Jump: true, Captured: Sq(2, 5)},
	}
	if got := jumps.Notation(); got != "c3xe5xg7" {
		t.Fatalf("chain: got=%q", got)
	}
	if jumps.From() != Sq(5, 2) || jumps.To() != Sq(1, 6) {
		t.Fatalf("chain endpoints wrong: %d -> %d", jumps.From(), jumps.To())
	}
	if caps := jumps.Captures(); len(caps) != 2 || caps[0] != Sq(4, 3) || caps[1] != Sq(2, 5) {
		t.Fatalf("captures: %v", caps)
	}
	if (Chain{}).Notation() != "" || (Chain{}).From() != NoSquare {
		t.Fatalf("empty chain should have no notation")
	}
}

func TestParsePath(t *testing.T) {
	path, jump, err := ParsePath("c3xe5×g7")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !jump || len(path) != 3 || path[2] != Sq(1, 6) {
		t.Fatalf("got path=%v jump=%v", path, jump)
	}

	path, jump, err = ParsePath(" C3-D4 ")
	if err != nil || jump || len(path) != 2 || path[1] != Sq(4, 3) {
		t.Fatalf("simple: path=%v jump=%v err=%v", path, jump, err)
	}

	for _, bad := range []string{"c3", "c3-d4-e5", "c3xd4-e5", "c3-z9"} {
		if _, _, err := ParsePath(bad); !errors.Is(err, ErrInvalidMove) {
			t.Fatalf("expected ErrInvalidMove for %q, got %v", bad, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("c3-d4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.From != Sq(5, 2) || m.To != Sq(4, 3) || m.Jump || m.Captured != NoSquare {
		t.Fatalf("simple: got %+v", m)
	}

	m, err = ParseMove("C3xE5")
	if err != nil || !m.Jump || m.To != Sq(3, 4) {
		t.Fatalf("jump: got %+v err=%v", m, err)
	}

	for _, bad := range []string{"c3xe5xg7", "c3", "c3-z9"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrInvalidMove) {
			t.Fatalf("expected ErrInvalidMove for %q, got %v", bad, err)
		}
	}
}

func TestParseChain(t *testing.T) {
	c, err := ParseChain("c3xe5xg7")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(c) != 2 || c.Notation() != "c3xe5xg7" {
		t.Fatalf("got %v", c)
	}
	if c[1].From != c[0].To || c[1].Captured != NoSquare {
		t.Fatalf("hops not linked: %+v", c)
	}
	if _, err := ParseChain("c3-d4-e5"); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if PathChain([]int{Sq(5, 2)}, false) != nil {
		t.Fatalf("single square is not a move")
	}
}
