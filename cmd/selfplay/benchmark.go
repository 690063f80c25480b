package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/server/game"
)

type PlayerConfig struct {
	Name       string
	Difficulty engine.Difficulty
}

type matchResult struct {
	aWins, bWins, draws int
}

// runMatch a 和 b 轮流执红，打 total 局
func runMatch(e *engine.Engine, a, b PlayerConfig, total, maxPlies int) matchResult {
	var r matchResult
	for g := 0; g < total; g++ {
		red, black := a, b
		redIsA := g%2 == 0
		if !redIsA {
			red, black = b, a
		}

		fmt.Printf("\n=== Game %d: Red [%s] vs Black [%s] ===\n", g+1, red.Name, black.Name)
		st := playGame(e, red, black, maxPlies, false)

		switch st {
		case game.RedWins, game.BlackWins:
			winner, aWon := red, redIsA
			if st == game.BlackWins {
				winner, aWon = black, !redIsA
			}
			if aWon {
				r.aWins++
			} else {
				r.bWins++
			}
			fmt.Printf("Result: %s wins (%s)\n", winner.Name, st)
		default:
			r.draws++
			fmt.Println("Result: draw")
		}
	}
	return r
}

// playGame 用会话层走完整盘，和棋规则也由会话层判
func playGame(e *engine.Engine, red, black PlayerConfig, maxPlies int, trace bool) game.Status {
	g := game.NewGameState("selfplay", false, red.Difficulty)
	for ply := 0; ply < maxPlies && g.Status == game.Playing; ply++ {
		side := g.ToMove()
		d := red.Difficulty
		if side == checkers.Black {
			d = black.Difficulty
		}

		res, ok := e.Decide(&g.Pos.Board, side, d)
		if !ok {
			// 会话层在上一手已经判过负，这里不会走到
			break
		}
		if err := g.PlayChain(res.Best); err != nil {
			log.Error().Err(err).Str("move", res.Best.Notation()).Msg("engine produced an illegal move")
			return game.Draw
		}
		if trace {
			fmt.Printf("%3d. %-5s %-12s score=%-6d nodes=%-8d src=%s time=%v\n",
				ply+1, side, res.Best.Notation(), res.Score, res.Nodes, res.Source, res.TimeUsed)
		}
	}
	if g.Status == game.Playing {
		// 步数上限，按和棋算
		return game.Draw
	}
	return g.Status
}
