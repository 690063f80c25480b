package engine

import (
	"math/rand"
	"sync"
	"time"

	"checkers/internal/checkers"
)

// Rules 是搜索需要的最小规则面，搜索层不直接依赖棋盘内部的走法生成
type Rules interface {
	AllLegalMoves(b *checkers.Board, side checkers.Side) []checkers.Move
	ContinuationJumps(b *checkers.Board, sq int, side checkers.Side) []checkers.Move
	Apply(b *checkers.Board, m checkers.Move) checkers.Board
}

type Options struct {
	Rules    Rules // nil 时用标准英式规则
	Seed     int64 // 0 表示按时间取种子
	Parallel bool  // 根节点是否并行
}

type Engine struct {
	rules    Rules
	parallel bool

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewEngine(opts Options) *Engine {
	rules := opts.Rules
	if rules == nil {
		rules = checkers.EnglishRules{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		rules:    rules,
		parallel: opts.Parallel,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) randFloat() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) randIntn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}
