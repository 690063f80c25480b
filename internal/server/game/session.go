package game

import (
	"fmt"
	"time"

	"checkers/internal/checkers"
)

func (g *GameState) clearSelection() {
	g.Selected = checkers.NoSquare
	g.ValidMoves = nil
}

// Select 选子。连跳中只能选正在跳的那颗子；否则只能选自己能动的子（有吃必吃）。
func (g *GameState) Select(sq int) error {
	if g.Status != Playing {
		return ErrGameOver
	}
	side := g.Pos.SideToMove
	if g.JumpInProgress() {
		if sq != g.JumpFrom {
			return fmt.Errorf("%w: continue with %s", ErrJumpInProgress, checkers.SquareName(g.JumpFrom))
		}
		g.Selected = sq
		g.ValidMoves = g.Pos.Board.ContinuationJumps(sq, side)
		return nil
	}
	if sq < 0 || sq >= checkers.NumSquares {
		return fmt.Errorf("%w: square %d", checkers.ErrInvalidSquare, sq)
	}
	pc := g.Pos.Board.Squares[sq]
	if pc.IsEmpty() || pc.Side() != side {
		return fmt.Errorf("%w: %s", ErrNotYourPiece, checkers.SquareName(sq))
	}
	moves := g.Pos.Board.LegalMoves(side, sq)
	if len(moves) == 0 {
		g.clearSelection()
		return fmt.Errorf("%w: %s cannot move", ErrIllegalMove, checkers.SquareName(sq))
	}
	g.Selected = sq
	g.ValidMoves = moves
	return nil
}

// MoveTo 把选中的子走一步到 sq。跳吃后还能继续跳时回合不结束。
func (g *GameState) MoveTo(sq int) error {
	if g.Status != Playing {
		return ErrGameOver
	}
	if g.Selected == checkers.NoSquare {
		return ErrNoSelection
	}
	var mv checkers.Move
	found := false
	for _, m := range g.ValidMoves {
		if m.To == sq {
			mv, found = m, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s to %s", ErrIllegalMove, checkers.SquareName(g.Selected), checkers.SquareName(sq))
	}

	side := g.Pos.SideToMove
	if mv.Jump || !g.Pos.Board.Squares[mv.From].IsKing() {
		g.turnActive = true
	}
	continuing := g.JumpInProgress()
	g.Pos = g.Pos.ApplyMove(mv)
	g.UpdatedAt = time.Now()

	if continuing && len(g.History) > 0 {
		last := &g.History[len(g.History)-1]
		last.Notation += "x" + checkers.SquareName(mv.To)
		last.To = mv.To
	} else {
		g.History = append(g.History, HistoryEntry{
			Player:   side,
			Notation: mv.String(),
			From:     mv.From,
			To:       mv.To,
		})
	}

	if mv.Jump {
		if more := g.Pos.Board.ContinuationJumps(mv.To, side); len(more) > 0 {
			g.Selected = mv.To
			g.ValidMoves = more
			g.JumpFrom = mv.To
			return nil
		}
	}

	g.clearSelection()
	g.JumpFrom = checkers.NoSquare
	if g.turnActive {
		g.QuietPlies = 0
	} else {
		g.QuietPlies++
	}
	g.turnActive = false
	g.checkGameEnd()
	return nil
}

// Click 点格子：是候选落点就走，否则当成选子
func (g *GameState) Click(sq int) error {
	if g.Status != Playing {
		return ErrGameOver
	}
	for _, m := range g.ValidMoves {
		if m.To == sq {
			return g.MoveTo(sq)
		}
	}
	return g.Select(sq)
}

// PlayChain 整串走完一个回合。先在副本上逐步校验（只比 From/To），全部合法才真正落子。
func (g *GameState) PlayChain(c checkers.Chain) error {
	if g.Status != Playing {
		return ErrGameOver
	}
	if len(c) == 0 {
		return fmt.Errorf("%w: empty move", ErrIllegalMove)
	}
	if err := g.validateChain(c); err != nil {
		return err
	}
	for _, hop := range c {
		if g.Selected != hop.From {
			if err := g.Select(hop.From); err != nil {
				return err
			}
		}
		if err := g.MoveTo(hop.To); err != nil {
			return err
		}
	}
	return nil
}

func (g *GameState) validateChain(c checkers.Chain) error {
	side := g.Pos.SideToMove
	b := g.Pos.Board
	from := g.JumpFrom
	for i, hop := range c {
		var legal []checkers.Move
		if i == 0 && from == checkers.NoSquare {
			legal = b.LegalMoves(side, hop.From)
		} else {
			if hop.From != from {
				return fmt.Errorf("%w: %s must continue from %s", ErrIllegalMove, c.Notation(), checkers.SquareName(from))
			}
			legal = b.ContinuationJumps(hop.From, side)
		}
		var mv checkers.Move
		found := false
		for _, m := range legal {
			if m.From == hop.From && m.To == hop.To {
				mv, found = m, true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrIllegalMove, c.Notation())
		}
		if !mv.Jump && len(c) > 1 {
			return fmt.Errorf("%w: %s continues after a simple move", ErrIllegalMove, c.Notation())
		}
		b = b.Apply(mv)
		from = mv.To
		if i == len(c)-1 && mv.Jump && len(b.ContinuationJumps(mv.To, side)) > 0 {
			return fmt.Errorf("%w: %s leaves a jump unfinished", ErrIllegalMove, c.Notation())
		}
	}
	return nil
}

// checkGameEnd 回合结束后：数子、判负，最后看和棋计数
func (g *GameState) checkGameEnd() {
	g.RedCount = g.Pos.Board.Count(checkers.Red)
	g.BlackCount = g.Pos.Board.Count(checkers.Black)

	if st := statusFromOutcome(g.Pos.Board.Outcome(g.Pos.SideToMove)); st != Playing {
		g.Status = st
		return
	}
	if g.QuietPlies >= DrawQuietPlies {
		g.Status = Draw
	}
}
