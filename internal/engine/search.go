package engine

import (
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
)

const (
	// 无招可走一方的分数（从 perspective 看是 -WinScore）
	WinScore = 10000

	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000
)

// MoveSource 说明这一手是怎么来的
type MoveSource string

const (
	SourceNone     MoveSource = "none"
	SourceForced   MoveSource = "forced"
	SourceRandom   MoveSource = "random"
	SourceSearch   MoveSource = "search"
	SourceFallback MoveSource = "fallback"
)

// 搜索结果
type SearchResult struct {
	Best     checkers.Chain // 最佳回合（完整连跳）
	Score    int            // 从 player 视角的分数
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
	Source   MoveSource
}

// searcher 每次搜索（根节点并行时每个 goroutine）一份，节点计数不共享
type searcher struct {
	rules  Rules
	player checkers.Side
	nodes  int64
}

// expandChain 从第一步开始沿“第一个”续跳走完整个连跳。
// 搜索不在续跳分支之间做选择。
func expandChain(rules Rules, b *checkers.Board, side checkers.Side, first checkers.Move) (checkers.Chain, checkers.Board) {
	chain := checkers.Chain{first}
	nb := rules.Apply(b, first)
	if !first.Jump {
		return chain, nb
	}
	sq := first.To
	for {
		cont := rules.ContinuationJumps(&nb, sq, side)
		if len(cont) == 0 {
			break
		}
		next := cont[0]
		chain = append(chain, next)
		nb = rules.Apply(&nb, next)
		sq = next.To
	}
	return chain, nb
}

// ExpandChain 用引擎的规则把首步补全成整串
func (e *Engine) ExpandChain(b *checkers.Board, side checkers.Side, first checkers.Move) checkers.Chain {
	chain, _ := expandChain(e.rules, b, side, first)
	return chain
}

// Search 固定深度 minimax + alpha-beta。
// player 是固定的评估视角；maximizing 为真时轮到 player 走，否则轮到对手。
func (e *Engine) Search(b *checkers.Board, player checkers.Side, depth, alpha, beta int, maximizing bool) SearchResult {
	start := time.Now()
	s := &searcher{rules: e.rules, player: player}
	score, best := s.alphaBeta(b, depth, alpha, beta, maximizing)
	return SearchResult{
		Best:     best,
		Score:    score,
		Depth:    depth,
		Nodes:    s.nodes,
		TimeUsed: time.Since(start),
		Source:   SourceSearch,
	}
}

// 内部递归：标准 alpha-beta
func (s *searcher) alphaBeta(b *checkers.Board, depth, alpha, beta int, maximizing bool) (int, checkers.Chain) {
	s.nodes++

	if depth <= 0 {
		return Evaluate(b, s.player), nil
	}

	toMove := s.player
	if !maximizing {
		toMove = s.player.Opposite()
	}
	moves := s.rules.AllLegalMoves(b, toMove)
	if len(moves) == 0 {
		// 没招就是输
		if maximizing {
			return -WinScore, nil
		}
		return WinScore, nil
	}

	var best checkers.Chain
	if maximizing {
		bestScore := -scoreInf
		for _, mv := range moves {
			chain, child := expandChain(s.rules, b, toMove, mv)
			score, _ := s.alphaBeta(&child, depth-1, alpha, beta, false)
			if score > bestScore {
				bestScore = score
				best = chain
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return bestScore, best
	}

	bestScore := scoreInf
	for _, mv := range moves {
		chain, child := expandChain(s.rules, b, toMove, mv)
		score, _ := s.alphaBeta(&child, depth-1, alpha, beta, true)
		if score < bestScore {
			bestScore = score
			best = chain
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return bestScore, best
}

// searchRoot 根节点：先同步生成所有子局面，再按需并行搜索每个子局面。
// 每个子局面全窗口搜索，取第一个最高分，结果与顺序 alpha-beta 一致。
func (e *Engine) searchRoot(b *checkers.Board, player checkers.Side, depth int) SearchResult {
	if !e.parallel || depth <= 1 {
		return e.Search(b, player, depth, -scoreInf, scoreInf, true)
	}

	start := time.Now()
	moves := e.rules.AllLegalMoves(b, player)
	if len(moves) == 0 {
		return SearchResult{Score: -WinScore, Depth: depth, Nodes: 1, TimeUsed: time.Since(start), Source: SourceSearch}
	}

	type childNode struct {
		chain checkers.Chain
		board checkers.Board
	}
	children := make([]childNode, 0, len(moves))
	for _, mv := range moves {
		chain, child := expandChain(e.rules, b, player, mv)
		children = append(children, childNode{chain: chain, board: child})
	}

	scores := make([]int, len(children))
	var nodes int64 = 1

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range children {
		i := i
		g.Go(func() error {
			// 每个 goroutine 用自己的 searcher 和自己的棋盘副本
			local := &searcher{rules: e.rules, player: player}
			scores[i], _ = local.alphaBeta(&children[i].board, depth-1, -scoreInf, scoreInf, false)
			atomic.AddInt64(&nodes, local.nodes)
			return nil
		})
	}
	_ = g.Wait()

	bestIdx := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}

	return SearchResult{
		Best:     children[bestIdx].chain,
		Score:    scores[bestIdx],
		Depth:    depth,
		Nodes:    atomic.LoadInt64(&nodes),
		TimeUsed: time.Since(start),
		Source:   SourceSearch,
	}
}

// Decide 选出 player 这一回合要走的整串，并带上搜索信息。
// ok 为 false 表示无招可走（对调用方来说就是判负）。
func (e *Engine) Decide(b *checkers.Board, player checkers.Side, d Difficulty) (SearchResult, bool) {
	start := time.Now()
	moves := e.rules.AllLegalMoves(b, player)
	if len(moves) == 0 {
		return SearchResult{Source: SourceNone}, false
	}

	// 只有一步可走时不用搜
	if len(moves) == 1 {
		return SearchResult{
			Best:     e.ExpandChain(b, player, moves[0]),
			TimeUsed: time.Since(start),
			Source:   SourceForced,
		}, true
	}

	// 低难度随机走一步；Randomness 为 0 时完全不碰随机数
	if d.Randomness > 0 && e.randFloat() < d.Randomness {
		mv := moves[e.randIntn(len(moves))]
		return SearchResult{
			Best:     e.ExpandChain(b, player, mv),
			TimeUsed: time.Since(start),
			Source:   SourceRandom,
		}, true
	}

	res := e.searchRoot(b, player, d.Depth)
	if len(res.Best) == 0 {
		// 理论上不会走到这里，兜底一下
		res.Best = e.ExpandChain(b, player, moves[0])
		res.Source = SourceFallback
	}
	return res, true
}

// SelectMove 电脑走子的唯一入口
func (e *Engine) SelectMove(b *checkers.Board, player checkers.Side, d Difficulty) (checkers.Chain, bool) {
	res, ok := e.Decide(b, player, d)
	if !ok {
		return nil, false
	}
	return res.Best, true
}
