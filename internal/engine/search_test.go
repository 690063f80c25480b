package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func boardWith(pieces map[[2]int]checkers.Piece) checkers.Board {
	var b checkers.Board
	for rc, pc := range pieces {
		b.Squares[checkers.Sq(rc[0], rc[1])] = pc
	}
	return b
}

func legalFirst(b *checkers.Board, side checkers.Side, m checkers.Move) bool {
	for _, x := range b.AllLegalMoves(side) {
		if x == m {
			return true
		}
	}
	return false
}

func TestEvaluate(t *testing.T) {
	start := checkers.NewInitialBoard()
	require.Equal(t, 0, Evaluate(&start, checkers.Red), "opening should be balanced")
	require.Equal(t, 0, Evaluate(&start, checkers.Black))

	// c3 上的红兵：100 + 前进 2 行 + 中央
	b := boardWith(map[[2]int]checkers.Piece{{5, 2}: checkers.RedMan})
	require.Equal(t, 120, Evaluate(&b, checkers.Red))
	require.Equal(t, -120, Evaluate(&b, checkers.Black))

	// 底线的兵拿守底分，不拿中央分
	b = boardWith(map[[2]int]checkers.Piece{{0, 1}: checkers.BlackMan})
	require.Equal(t, 115, Evaluate(&b, checkers.Black))

	// 王只算子力，和位置无关
	for _, rc := range [][2]int{{0, 1}, {3, 4}, {7, 6}} {
		b = boardWith(map[[2]int]checkers.Piece{rc: checkers.RedKing})
		require.Equal(t, 180, Evaluate(&b, checkers.Red), "king at %v", rc)
	}
}

func TestSearchNoMovesSentinel(t *testing.T) {
	e := NewEngine(Options{Seed: 1})

	onlyBlack := boardWith(map[[2]int]checkers.Piece{{2, 1}: checkers.BlackMan})
	res := e.Search(&onlyBlack, checkers.Red, 3, -scoreInf, scoreInf, true)
	require.Equal(t, -WinScore, res.Score)
	require.Empty(t, res.Best)

	onlyRed := boardWith(map[[2]int]checkers.Piece{{5, 2}: checkers.RedMan})
	res = e.Search(&onlyRed, checkers.Red, 3, -scoreInf, scoreInf, false)
	require.Equal(t, WinScore, res.Score)

	// depth 0 先于无招判断
	res = e.Search(&onlyBlack, checkers.Red, 0, -scoreInf, scoreInf, true)
	require.Equal(t, Evaluate(&onlyBlack, checkers.Red), res.Score)

	_, ok := e.SelectMove(&onlyBlack, checkers.Red, Hard())
	require.False(t, ok)
}

func TestSearchAvoidsHangingPiece(t *testing.T) {
	// 红 d4 走 c5 会被 b6 的黑兵吃掉，走 e5 是安全的
	b := boardWith(map[[2]int]checkers.Piece{
		{4, 3}: checkers.RedMan,
		{2, 1}: checkers.BlackMan,
	})
	for _, parallel := range []bool{false, true} {
		e := NewEngine(Options{Seed: 1, Parallel: parallel})
		for _, depth := range []int{2, 3, 4} {
			res := e.searchRoot(&b, checkers.Red, depth)
			require.Len(t, res.Best, 1)
			require.Equal(t, checkers.Sq(3, 4), res.Best[0].To, "parallel=%v depth=%d", parallel, depth)
		}
	}
}

func TestSearchReturnsWholeChain(t *testing.T) {
	b := boardWith(map[[2]int]checkers.Piece{
		{5, 0}: checkers.RedMan,
		{4, 1}: checkers.BlackMan,
		{2, 3}: checkers.BlackMan,
	})
	e := NewEngine(Options{Seed: 1})

	res := e.Search(&b, checkers.Red, 1, -scoreInf, scoreInf, true)
	require.Equal(t, "a3xc5xe7", res.Best.Notation())

	res, ok := e.Decide(&b, checkers.Red, Hard())
	require.True(t, ok)
	require.Equal(t, SourceForced, res.Source)
	require.Equal(t, "a3xc5xe7", res.Best.Notation())
	require.Equal(t, []int{checkers.Sq(4, 1), checkers.Sq(2, 3)}, res.Best.Captures())
}

func TestDecideForcedMove(t *testing.T) {
	b := boardWith(map[[2]int]checkers.Piece{
		{7, 0}: checkers.RedMan,
		{0, 7}: checkers.BlackMan,
	})
	e := NewEngine(Options{Seed: 1})
	// 随机概率拉满也不影响唯一着法
	res, ok := e.Decide(&b, checkers.Red, Difficulty{Name: "x", Depth: 3, Randomness: 1})
	require.True(t, ok)
	require.Equal(t, SourceForced, res.Source)
	require.Equal(t, "a1-b2", res.Best.Notation())
}

func TestDecideRandomIsLegal(t *testing.T) {
	start := checkers.NewInitialBoard()
	e := NewEngine(Options{Seed: 42})
	wild := Difficulty{Name: "wild", Depth: 3, Randomness: 1}
	for i := 0; i < 20; i++ {
		res, ok := e.Decide(&start, checkers.Red, wild)
		require.True(t, ok)
		require.Equal(t, SourceRandom, res.Source)
		require.Len(t, res.Best, 1)
		require.True(t, legalFirst(&start, checkers.Red, res.Best[0]), "illegal random move %v", res.Best)
	}
}

func TestHardIsDeterministic(t *testing.T) {
	start := checkers.NewInitialBoard()
	a := NewEngine(Options{Seed: 1})
	b := NewEngine(Options{Seed: 99, Parallel: true})

	ca, ok := a.SelectMove(&start, checkers.Red, Hard())
	require.True(t, ok)
	cb, ok := b.SelectMove(&start, checkers.Red, Hard())
	require.True(t, ok)
	require.Equal(t, ca.Notation(), cb.Notation())
	require.True(t, legalFirst(&start, checkers.Red, ca[0]))
}

func TestDepthOneCannotSeeReplyCapture(t *testing.T) {
	// 红 b4：c5 多拿中央分但会被 b6 吃掉，a5 安全
	b := boardWith(map[[2]int]checkers.Piece{
		{4, 1}: checkers.RedMan,
		{2, 1}: checkers.BlackMan,
	})
	hanging, safe := checkers.Sq(3, 2), checkers.Sq(3, 0)

	for _, parallel := range []bool{false, true} {
		e := NewEngine(Options{Seed: 1, Parallel: parallel})

		res := e.searchRoot(&b, checkers.Red, 1)
		require.Equal(t, hanging, res.Best.To(), "parallel=%v depth 1 only sees the static score", parallel)
		require.Equal(t, 20, res.Score)

		for _, depth := range []int{2, 3, 4} {
			res = e.searchRoot(&b, checkers.Red, depth)
			require.Equal(t, safe, res.Best.To(), "parallel=%v depth=%d", parallel, depth)
		}
	}
}

func TestSearchChainPromotesAndContinuesAsKing(t *testing.T) {
	// 红兵 b6 跳到 d8 升王，再以王的身份向后跳到 f6
	b := boardWith(map[[2]int]checkers.Piece{
		{2, 1}: checkers.RedMan,
		{1, 2}: checkers.BlackMan,
		{1, 4}: checkers.BlackMan,
		{6, 7}: checkers.RedMan,
	})
	e := NewEngine(Options{Seed: 1})

	res := e.Search(&b, checkers.Red, 1, -scoreInf, scoreInf, true)
	require.Equal(t, "b6xd8xf6", res.Best.Notation())

	after := b.ApplyChain(res.Best)
	require.Equal(t, checkers.RedKing, after.Squares[checkers.Sq(2, 5)])
	require.Zero(t, after.Count(checkers.Black))
	require.Equal(t, Evaluate(&after, checkers.Red), res.Score)
}

func TestParallelMatchesSequential(t *testing.T) {
	positions := []checkers.Board{
		checkers.NewInitialBoard(),
		boardWith(map[[2]int]checkers.Piece{
			{5, 0}: checkers.RedMan, {5, 4}: checkers.RedMan, {6, 5}: checkers.RedKing,
			{2, 1}: checkers.BlackMan, {2, 5}: checkers.BlackMan, {1, 6}: checkers.BlackKing,
		}),
	}
	seq := NewEngine(Options{Seed: 1})
	par := NewEngine(Options{Seed: 1, Parallel: true})
	for i := range positions {
		for depth := 1; depth <= 4; depth++ {
			want := seq.searchRoot(&positions[i], checkers.Red, depth)
			got := par.searchRoot(&positions[i], checkers.Red, depth)
			require.Equal(t, want.Score, got.Score, "position %d depth %d", i, depth)
			require.Equal(t, want.Best.Notation(), got.Best.Notation(), "position %d depth %d", i, depth)
		}
	}
}

func TestDepthZeroFallsBack(t *testing.T) {
	start := checkers.NewInitialBoard()
	e := NewEngine(Options{Seed: 1, Parallel: true})
	res, ok := e.Decide(&start, checkers.Red, Difficulty{Name: "zero", Depth: 0})
	require.True(t, ok)
	require.Equal(t, SourceFallback, res.Source)
	require.Equal(t, start.AllLegalMoves(checkers.Red)[0], res.Best[0])
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	require.Equal(t, Hard(), d)
	require.Equal(t, 5, d.Depth)
	require.Zero(t, d.Randomness)

	_, err = ParseDifficulty("impossible")
	require.ErrorIs(t, err, ErrUnknownDifficulty)

	require.Equal(t, Medium(), Easy().Next())
	require.Equal(t, Easy(), Hard().Next())
}
