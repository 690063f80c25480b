package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/engine"
	"checkers/internal/log2"
)

func tier(cCtx *cli.Context, flag string) (PlayerConfig, error) {
	d, err := engine.ParseDifficulty(cCtx.String(flag))
	if err != nil {
		return PlayerConfig{}, err
	}
	return PlayerConfig{Name: fmt.Sprintf("%s (depth %d)", d.Name, d.Depth), Difficulty: d}, nil
}

func main() {
	log2.Configure("info", true)

	common := []cli.Flag{
		&cli.Int64Flag{Name: "seed", Usage: "0 = time based"},
		&cli.IntFlag{Name: "max-plies", Value: 400, Usage: "stop and call it a draw after this many turns"},
		&cli.BoolFlag{Name: "sequential", Usage: "search the root on one goroutine"},
	}

	app := &cli.App{
		Name:  "selfplay",
		Usage: "let the engine play itself",
		Commands: []*cli.Command{
			{
				Name:  "match",
				Usage: "play a series between two difficulty tiers",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "a", Value: "hard"},
					&cli.StringFlag{Name: "b", Value: "medium"},
					&cli.IntFlag{Name: "games", Value: 10},
				}, common...),
				Action: func(cCtx *cli.Context) error {
					a, err := tier(cCtx, "a")
					if err != nil {
						return err
					}
					b, err := tier(cCtx, "b")
					if err != nil {
						return err
					}
					e := engine.NewEngine(engine.Options{Seed: cCtx.Int64("seed"), Parallel: !cCtx.Bool("sequential")})
					log2.Infof("match %s vs %s, %d games", a.Name, b.Name, cCtx.Int("games"))
					r := runMatch(e, a, b, cCtx.Int("games"), cCtx.Int("max-plies"))

					fmt.Printf("\n=== Final Score ===\n")
					fmt.Printf("%s: %d\n", a.Name, r.aWins)
					fmt.Printf("%s: %d\n", b.Name, r.bWins)
					fmt.Printf("Draws: %d\n", r.draws)
					return nil
				},
			},
			{
				Name:  "trace",
				Usage: "play one game and print every move with search stats",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "red", Value: "hard"},
					&cli.StringFlag{Name: "black", Value: "hard"},
				}, common...),
				Action: func(cCtx *cli.Context) error {
					red, err := tier(cCtx, "red")
					if err != nil {
						return err
					}
					black, err := tier(cCtx, "black")
					if err != nil {
						return err
					}
					e := engine.NewEngine(engine.Options{Seed: cCtx.Int64("seed"), Parallel: !cCtx.Bool("sequential")})
					st := playGame(e, red, black, cCtx.Int("max-plies"), true)
					log.Info().Str("result", string(st)).Msg("selfplay finished")
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("selfplay")
	}
}
