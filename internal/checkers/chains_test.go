package checkers

import "testing"

func TestAllChainsBranches(t *testing.T) {
	// c1 的红王跳 d2 后可以向 b4 或 f4 两个方向继续
	b := boardWith(map[[2]int]Piece{
		{7, 2}: RedKing,
		{6, 3}: BlackMan,
		{4, 3}: BlackMan,
		{4, 5}: BlackMan,
		{0, 7}: BlackMan,
	})
	chains := b.AllChains(Red)
	got := map[string]bool{}
	for _, c := range chains {
		got[c.Notation()] = true
	}
	for _, want := range []string{"c1xe3xc5", "c1xe3xg5"} {
		if !got[want] {
			t.Fatalf("missing chain %s, got %v", want, got)
		}
	}
	if len(chains) != 2 {
		t.Fatalf("got %d chains: %v", len(chains), got)
	}
}

func TestAllChainsSimpleMoves(t *testing.T) {
	b := NewInitialBoard()
	chains := b.AllChains(Red)
	if len(chains) != 7 {
		t.Fatalf("got %d chains want 7", len(chains))
	}
	for _, c := range chains {
		if len(c) != 1 || c.IsJump() {
			t.Fatalf("unexpected chain %s", c)
		}
	}
}
