package checkers

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	want := "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/r1r1r1r1/1r1r1r1r/r1r1r1r1 r"
	if got := pos.Encode(); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}

	fen := strings.ReplaceAll(initialBoardString, "\n", "/") + " r"
	decoded, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Board != pos.Board || decoded.SideToMove != Red {
		t.Fatalf("decoded position differs from initial position")
	}
}

func TestDecodeKeepsKingsAndSide(t *testing.T) {
	pos, err := DecodePosition("8/8/8/4B3/8/8/8/R7 b")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if pos.SideToMove != Black {
		t.Fatalf("side to move: got=%v want=black", pos.SideToMove)
	}
	if pos.Board.Squares[Sq(3, 4)] != BlackKing {
		t.Fatalf("e5: got=%v want black king", pos.Board.Squares[Sq(3, 4)])
	}
	if pos.Board.Squares[Sq(7, 0)] != RedKing {
		t.Fatalf("a1: got=%v want red king", pos.Board.Squares[Sq(7, 0)])
	}
	if got := pos.Encode(); got != "8/8/8/4B3/8/8/8/R7 b" {
		t.Fatalf("re-encode: got=%q", got)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"MissingSide":  "8/8/8/8/8/8/8/8",
		"TooFewRows":   "8/8/8/8/8/8/8 r",
		"RowTooLong":   "9/8/8/8/8/8/8/8 r",
		"UnknownPiece": "1q6/8/8/8/8/8/8/8 r",
		"LightSquare":  "b7/8/8/8/8/8/8/8 r",
		"UnknownSide":  "8/8/8/8/8/8/8/8 x",
		"RowTooShort":  "7/8/8/8/8/8/8/8 r",
	}
	for name, fen := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
				t.Fatalf("expected ErrInvalidFEN for %q, got %v", fen, err)
			}
		})
	}
}
