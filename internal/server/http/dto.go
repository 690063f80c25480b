package httpserver

import (
	"checkers/internal/checkers"
	"checkers/internal/server/game"
)

// NewGame 请求；ai_enabled 不传时默认开电脑
type NewGameRequest struct {
	AIEnabled  *bool  `json:"ai_enabled"`
	Difficulty string `json:"difficulty"`
}

// state / reset / ai_move 只需要 game_id
type GameRequest struct {
	GameID string `json:"game_id"`
}

type ClickRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"` // 例如 "c3"
}

// Play 请求：move 是 "c3-d4" 或 "c3xe5xg7"
type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type SettingsRequest struct {
	GameID     string `json:"game_id"`
	AIEnabled  *bool  `json:"ai_enabled"`
	Difficulty string `json:"difficulty"`
}

// 前端用的招法结构，格子用坐标名
type MoveDTO struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Jump     bool   `json:"jump"`
	Captured string `json:"captured,omitempty"`
}

type HistoryDTO struct {
	Player   string `json:"player"`
	Notation string `json:"notation"`
}

type StateResponse struct {
	GameID         string       `json:"game_id"`
	Position       string       `json:"position"` // 棋盘文本，见 Position.Encode
	ToMove         string       `json:"to_move"`
	Status         game.Status  `json:"status"`
	Selected       string       `json:"selected"`
	ValidMoves     []MoveDTO    `json:"valid_moves"`
	JumpInProgress bool         `json:"jump_in_progress"`
	History        []HistoryDTO `json:"history"`
	RedPieces      int          `json:"red_pieces"`
	BlackPieces    int          `json:"black_pieces"`
	AIEnabled      bool         `json:"ai_enabled"`
	Difficulty     string       `json:"difficulty"`
	LegalMoves     []MoveDTO    `json:"legal_moves"`
}

type AiMoveResponse struct {
	StateResponse
	Move   string `json:"move"`
	Score  int    `json:"score"`
	Depth  int    `json:"depth"`
	Nodes  int64  `json:"nodes"`
	TimeMs int64  `json:"time_ms"`
	Source string `json:"source"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func squareOrEmpty(sq int) string {
	if sq == checkers.NoSquare {
		return ""
	}
	return checkers.SquareName(sq)
}

func moveToDTO(m checkers.Move) MoveDTO {
	dto := MoveDTO{
		From: checkers.SquareName(m.From),
		To:   checkers.SquareName(m.To),
		Jump: m.Jump,
	}
	if m.Jump {
		dto.Captured = checkers.SquareName(m.Captured)
	}
	return dto
}

func movesToDTO(ms []checkers.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// stateToDTO 调用方需持有 g 的锁
func stateToDTO(g *game.GameState) StateResponse {
	history := make([]HistoryDTO, len(g.History))
	for i, h := range g.History {
		history[i] = HistoryDTO{Player: h.Player.String(), Notation: h.Notation}
	}
	return StateResponse{
		GameID:         g.ID,
		Position:       g.Pos.Encode(),
		ToMove:         g.ToMove().String(),
		Status:         g.Status,
		Selected:       squareOrEmpty(g.Selected),
		ValidMoves:     movesToDTO(g.ValidMoves),
		JumpInProgress: g.JumpInProgress(),
		History:        history,
		RedPieces:      g.RedCount,
		BlackPieces:    g.BlackCount,
		AIEnabled:      g.AIEnabled,
		Difficulty:     g.Difficulty.Name,
		LegalMoves:     movesToDTO(g.LegalMoves()),
	}
}
