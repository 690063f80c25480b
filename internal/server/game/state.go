package game

import (
	"errors"
	"sync"
	"time"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

var (
	ErrGameOver       = errors.New("game is over")
	ErrNotYourPiece   = errors.New("not your piece")
	ErrNoSelection    = errors.New("no piece selected")
	ErrIllegalMove    = errors.New("illegal move")
	ErrJumpInProgress = errors.New("jump in progress")
	ErrGameNotFound   = errors.New("game not found")
)

// DrawQuietPlies 连续这么多个回合没有吃子、也没有兵走动，判和（每方 40 回合）
const DrawQuietPlies = 80

type Status string

const (
	Playing   Status = "playing"
	RedWins   Status = "red-wins"
	BlackWins Status = "black-wins"
	Draw      Status = "draw"
)

func statusFromOutcome(o checkers.Outcome) Status {
	switch o {
	case checkers.RedWins:
		return RedWins
	case checkers.BlackWins:
		return BlackWins
	}
	return Playing
}

// HistoryEntry 一个回合一条；连跳在同一条里往后追加 "x落点"
type HistoryEntry struct {
	Player   checkers.Side
	Notation string
	From     int
	To       int
}

type GameState struct {
	mu sync.Mutex

	ID     string
	Pos    *checkers.Position
	Status Status

	Selected   int // checkers.NoSquare 表示没选中
	ValidMoves []checkers.Move
	JumpFrom   int // 连跳进行中时，正在跳的那颗子的位置
	History    []HistoryEntry

	RedCount   int
	BlackCount int

	AIEnabled  bool
	AISide     checkers.Side // 电脑固定执黑
	Difficulty engine.Difficulty

	QuietPlies int
	turnActive bool // 本回合有吃子或兵走动

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewGameState(id string, aiEnabled bool, d engine.Difficulty) *GameState {
	now := time.Now()
	g := &GameState{
		ID:         id,
		AIEnabled:  aiEnabled,
		AISide:     checkers.Black,
		Difficulty: d,
		CreatedAt:  now,
	}
	g.reset(now)
	return g
}

func (g *GameState) Lock()   { g.mu.Lock() }
func (g *GameState) Unlock() { g.mu.Unlock() }

func (g *GameState) reset(now time.Time) {
	g.Pos = checkers.NewInitialPosition()
	g.Status = Playing
	g.Selected = checkers.NoSquare
	g.ValidMoves = nil
	g.JumpFrom = checkers.NoSquare
	g.History = nil
	g.RedCount = g.Pos.Board.Count(checkers.Red)
	g.BlackCount = g.Pos.Board.Count(checkers.Black)
	g.QuietPlies = 0
	g.turnActive = false
	g.UpdatedAt = now
}

// Reset 回到开局，保留电脑和难度设置
func (g *GameState) Reset() {
	g.reset(time.Now())
}

func (g *GameState) ToMove() checkers.Side {
	return g.Pos.SideToMove
}

func (g *GameState) JumpInProgress() bool {
	return g.JumpFrom != checkers.NoSquare
}

// AITurn 现在是否该电脑走
func (g *GameState) AITurn() bool {
	return g.AIEnabled && g.Status == Playing && g.Pos.SideToMove == g.AISide
}

func (g *GameState) SetAI(enabled bool) {
	g.AIEnabled = enabled
	g.UpdatedAt = time.Now()
}

func (g *GameState) SetDifficulty(d engine.Difficulty) {
	g.Difficulty = d
	g.UpdatedAt = time.Now()
}

// LegalMoves 走子方当前能走的首步；连跳中只有那颗子的续跳
func (g *GameState) LegalMoves() []checkers.Move {
	if g.Status != Playing {
		return nil
	}
	if g.JumpInProgress() {
		return g.Pos.Board.ContinuationJumps(g.JumpFrom, g.Pos.SideToMove)
	}
	return g.Pos.GenerateLegalMoves()
}
