package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/server/game"
)

var (
	errBadJSON     = errors.New("bad json")
	errNotAITurn   = errors.New("not the computer's turn")
	errMidJump     = errors.New("a jump is still in progress")
	errNoAIMove    = errors.New("computer has no legal move")
	errMissingGame = errors.New("missing game_id")
)

type Options struct {
	Manager    *game.Manager
	Engine     *engine.Engine
	Difficulty engine.Difficulty // 新对局默认难度
	AIDelay    time.Duration     // 电脑落子前的展示延迟
}

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games      *game.Manager
	engine     *engine.Engine
	difficulty engine.Difficulty
	aiDelay    time.Duration
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		games:      opts.Manager,
		engine:     opts.Engine,
		difficulty: opts.Difficulty,
		aiDelay:    opts.AIDelay,
	}
	if h.games == nil {
		h.games = game.NewManager()
	}
	if h.engine == nil {
		h.engine = engine.NewEngine(engine.Options{Parallel: true})
	}
	if h.difficulty.Name == "" {
		h.difficulty = engine.Medium()
	}
	return h
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var fn func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		fn = h.handleNewGame
	case "/api/state":
		fn = h.handleState
	case "/api/click":
		fn = h.handleClick
	case "/api/play":
		fn = h.handlePlay
	case "/api/ai_move":
		fn = h.handleAiMove
	case "/api/reset":
		fn = h.handleReset
	case "/api/settings":
		fn = h.handleSettings
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		writeJSONStatus(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}
	fn(w, r)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadJSON, err)
	}
	return nil
}

// lookup 取对局并加锁；返回的 unlock 必须调用
func (h *Handler) lookup(id string) (*game.GameState, func(), error) {
	if id == "" {
		return nil, nil, errMissingGame
	}
	g, err := h.games.Get(id)
	if err != nil {
		return nil, nil, err
	}
	g.Lock()
	return g, g.Unlock, nil
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 按默认设置开局
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, err)
		return
	}

	d := h.difficulty
	if req.Difficulty != "" {
		parsed, err := engine.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeError(w, err)
			return
		}
		d = parsed
	}
	ai := true
	if req.AIEnabled != nil {
		ai = *req.AIEnabled
	}

	g := h.games.NewGame(ai, d)
	g.Lock()
	defer g.Unlock()
	log.Info().Str("game", g.ID).Bool("ai", ai).Str("difficulty", d.Name).Msg("new game")
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	g, unlock, err := h.lookup(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer unlock()
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	sq, err := checkers.ParseSquare(req.Square)
	if err != nil {
		writeError(w, err)
		return
	}
	g, unlock, err := h.lookup(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer unlock()

	if err := g.Click(sq); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	chain, err := checkers.ParseChain(req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	g, unlock, err := h.lookup(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer unlock()

	if err := g.PlayChain(chain); err != nil {
		writeError(w, err)
		return
	}
	log.Debug().Str("game", g.ID).Str("move", req.Move).Msg("play")
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	g, unlock, err := h.lookup(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	// ===== 1. 加锁取快照 =====
	switch {
	case g.Status != game.Playing:
		err = game.ErrGameOver
	case g.AIEnabled && !g.AITurn():
		err = errNotAITurn
	case g.JumpInProgress():
		err = errMidJump
	}
	if err != nil {
		unlock()
		writeError(w, err)
		return
	}
	board := g.Pos.Board
	side := g.ToMove()
	d := g.Difficulty
	unlock()

	// ===== 2. 只思考不落子，不持锁 =====
	res, ok := h.engine.Decide(&board, side, d)
	if !ok {
		writeError(w, errNoAIMove)
		return
	}

	// ===== 3. 展示延迟，客户端断开就不走了 =====
	if h.aiDelay > 0 {
		t := time.NewTimer(h.aiDelay)
		select {
		case <-t.C:
		case <-r.Context().Done():
			t.Stop()
			log.Debug().Str("game", g.ID).Msg("ai move cancelled by client")
			return
		}
	}

	// ===== 4. 落子；期间局面若被改动，PlayChain 会拒绝 =====
	g.Lock()
	defer g.Unlock()
	if err := g.PlayChain(res.Best); err != nil {
		writeError(w, err)
		return
	}

	log.Info().
		Str("game", g.ID).
		Str("move", res.Best.Notation()).
		Str("source", string(res.Source)).
		Int("score", res.Score).
		Int64("nodes", res.Nodes).
		Dur("took", res.TimeUsed).
		Msg("ai move")

	writeJSON(w, AiMoveResponse{
		StateResponse: stateToDTO(g),
		Move:          res.Best.Notation(),
		Score:         res.Score,
		Depth:         res.Depth,
		Nodes:         res.Nodes,
		TimeMs:        res.TimeUsed.Milliseconds(),
		Source:        string(res.Source),
	})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	g, unlock, err := h.lookup(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer unlock()
	g.Reset()
	writeJSON(w, stateToDTO(g))
}

func (h *Handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var d engine.Difficulty
	if req.Difficulty != "" {
		parsed, err := engine.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeError(w, err)
			return
		}
		d = parsed
	}
	g, unlock, err := h.lookup(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer unlock()

	if req.AIEnabled != nil {
		g.SetAI(*req.AIEnabled)
	}
	if d.Name != "" {
		g.SetDifficulty(d)
	}
	writeJSON(w, stateToDTO(g))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver),
		errors.Is(err, errNotAITurn),
		errors.Is(err, errMidJump),
		errors.Is(err, errNoAIMove):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func writeError(w http.ResponseWriter, err error) {
	writeJSONStatus(w, statusFor(err), ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writeJSON")
	}
}
