package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkers/internal/config"
	"checkers/internal/engine"
	"checkers/internal/log2"
	httpserver "checkers/internal/server/http"
	"checkers/internal/tui"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	// 不阻塞；没有图形界面的环境会失败，记一条就行
	if err := cmd.Start(); err != nil {
		log.Debug().Err(err).Msg("open browser")
	}
}

func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	engineFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "difficulty",
			Aliases: []string{"d"},
			Usage:   "easy, medium or hard",
			Value:   cfg.Difficulty.Name,
			EnvVars: []string{config.EnvDifficulty},
		},
		&cli.DurationFlag{
			Name:    "ai-delay",
			Usage:   "pause before the computer plays",
			Value:   cfg.AIDelay,
			EnvVars: []string{config.EnvAIDelay},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for the easier tiers (0 = time based)",
			Value:   cfg.Seed,
			EnvVars: []string{config.EnvSeed},
		},
	}

	app := &cli.App{
		Name:  "checkers-local",
		Usage: "play English draughts against the computer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   cfg.LogLevel,
				EnvVars: []string{config.EnvLogLevel},
			},
		},
		Action: func(*cli.Context) error {
			fmt.Println("--help for more information.")
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the HTTP API and the browser UI",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "listen address",
						Value:   cfg.Addr,
						EnvVars: []string{config.EnvAddr},
					},
					&cli.StringFlag{
						Name:    "web",
						Usage:   "directory with index.html / js / css",
						Value:   cfg.WebDir,
						EnvVars: []string{config.EnvWebDir},
					},
					&cli.BoolFlag{
						Name:    "open-browser",
						Value:   cfg.OpenBrowser,
						EnvVars: []string{config.EnvOpenBrowser},
					},
				}, engineFlags...),
				Action: serve,
			},
			{
				Name:  "play",
				Usage: "play in the terminal",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "no-ai",
						Usage: "two players on one keyboard",
					},
					&cli.StringFlag{
						Name:  "log-file",
						Usage: "write logs here while the board is on screen",
					},
				}, engineFlags...),
				Action: play,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers-local")
	}
}

func difficultyFlag(cCtx *cli.Context) (engine.Difficulty, error) {
	return engine.ParseDifficulty(cCtx.String("difficulty"))
}

func serve(cCtx *cli.Context) error {
	log2.Configure(cCtx.String("log-level"), true)

	d, err := difficultyFlag(cCtx)
	if err != nil {
		return err
	}
	addr := cCtx.String("addr")
	webDir := cCtx.String("web")

	h := httpserver.NewHandler(httpserver.Options{
		Engine:     engine.NewEngine(engine.Options{Seed: cCtx.Int64("seed"), Parallel: true}),
		Difficulty: d,
		AIDelay:    cCtx.Duration("ai-delay"),
	})
	srv := httpserver.NewServer(httpserver.NewMux(h, webDir))
	log2.Debugf("computer delay %s", cCtx.Duration("ai-delay"))

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(addr) }()

	log.Info().Str("web", webDir).Str("difficulty", d.Name).Msgf("open %s", localURL(addr))
	if cCtx.Bool("open-browser") {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser(localURL(addr))
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Close(shutdownCtx)
}

func play(cCtx *cli.Context) error {
	// 棋盘占着终端，日志只能写文件
	out := cCtx.String("log-file")
	if out == "" {
		log2.ConfigureWriter(io.Discard, "disabled", false)
	} else {
		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log2.ConfigureWriter(f, cCtx.String("log-level"), false)
	}

	d, err := difficultyFlag(cCtx)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Engine:     engine.NewEngine(engine.Options{Seed: cCtx.Int64("seed"), Parallel: true}),
		Difficulty: d,
		AIEnabled:  !cCtx.Bool("no-ai"),
		AIDelay:    cCtx.Duration("ai-delay"),
	})
}
