package mobile

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/engine"
	httpserver "checkers/internal/server/http"
)

var (
	mu     sync.Mutex
	server *httpserver.Server
)

var errAlreadyRunning = errors.New("server already running")

// StartServer starts the local HTTP server for an app shell (gomobile bind).
// webDir: physical path to the extracted web assets
// difficulty: default tier for new games ("easy", "medium", "hard")
// port: port to listen on, e.g. "2888"
func StartServer(webDir, difficulty, port string) error {
	d, err := engine.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if server != nil {
		return errAlreadyRunning
	}

	h := httpserver.NewHandler(httpserver.Options{
		Engine:     engine.NewEngine(engine.Options{Parallel: true}),
		Difficulty: d,
		AIDelay:    300 * time.Millisecond,
	})
	// Bind here so a busy port is reported to the caller
	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		return err
	}
	srv := httpserver.NewServer(httpserver.NewMux(h, webDir))
	server = srv

	// Serve in background so it doesn't block the UI thread
	go func() {
		if err := srv.Serve(ln); err != nil {
			log.Error().Err(err).Msg("mobile server")
		}
	}()
	return nil
}

// StopServer shuts the server down; calling it when nothing runs is a no-op.
func StopServer() {
	mu.Lock()
	srv := server
	server = nil
	mu.Unlock()
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("mobile server shutdown")
	}
}
