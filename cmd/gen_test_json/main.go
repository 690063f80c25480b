package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/checkers"
	"checkers/internal/log2"
)

// TestCase 前端走法生成的对照数据
type TestCase struct {
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"` // 首步
	Chains     []string `json:"chains"`      // 完整回合，连跳每个分支一条
}

func generate(rng *rand.Rand, games, maxPlies int) []TestCase {
	var cases []TestCase
	for g := 0; g < games; g++ {
		pos := checkers.NewInitialPosition()
		// 一局通常没这么多步，主要是防死循环
		for ply := 0; ply < maxPlies; ply++ {
			if pos.Board.Outcome(pos.SideToMove) != checkers.Ongoing {
				break
			}
			moves := pos.GenerateLegalMoves()
			chains := pos.Board.AllChains(pos.SideToMove)

			tc := TestCase{
				Position:   pos.Encode(),
				ToMove:     pos.SideToMove.String(),
				LegalMoves: make([]string, len(moves)),
				Chains:     make([]string, len(chains)),
			}
			for i, m := range moves {
				tc.LegalMoves[i] = m.String()
			}
			for i, c := range chains {
				tc.Chains[i] = c.Notation()
			}
			cases = append(cases, tc)

			// 随机选一步
			pos = pos.ApplyChain(chains[rng.Intn(len(chains))])
		}
	}
	return cases
}

func main() {
	log2.Configure("info", true)

	app := &cli.App{
		Name:  "gen_test_json",
		Usage: "dump random playouts as move generation fixtures",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Value: 10},
			&cli.IntFlag{Name: "max-plies", Value: 200},
			&cli.Int64Flag{Name: "seed", Usage: "0 = time based"},
			&cli.StringFlag{Name: "out", Value: "move_gen_test_data.json"},
		},
		Action: func(cCtx *cli.Context) error {
			seed := cCtx.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			cases := generate(rand.New(rand.NewSource(seed)), cCtx.Int("games"), cCtx.Int("max-plies"))

			data, err := json.MarshalIndent(cases, "", "  ")
			if err != nil {
				return err
			}
			out := cCtx.String("out")
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info().Int("cases", len(cases)).Int64("seed", seed).Msgf("wrote %s", out)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("gen_test_json")
	}
}
