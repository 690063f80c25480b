package checkers

import (
	"errors"
	"strings"
)

var ErrInvalidFEN = errors.New("invalid FEN")

var charToPiece = map[rune]Piece{
	'r': RedMan,
	'R': RedKing,
	'b': BlackMan,
	'B': BlackKing,
}

func pieceToChar(p Piece) byte {
	switch p {
	case RedMan:
		return 'r'
	case RedKing:
		return 'R'
	case BlackMan:
		return 'b'
	case BlackKing:
		return 'B'
	}
	return '.'
}

func sideToChar(s Side) byte {
	if s == Black {
		return 'b'
	}
	return 'r'
}

// 简单 FEN-like：8 行用“/”隔开，空位用数字压缩；空格后 r/b 表示轮到谁
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[indexOf(r, c)]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(sideToChar(p.SideToMove))
	return sb.String()
}

// DecodePosition 解析 Encode 的输出；子只能放在深色格上
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece[ch]
			if !ok || !IsDark(r, c) {
				return nil, ErrInvalidFEN
			}
			b.Squares[indexOf(r, c)] = pc
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}
	var stm Side
	switch parts[1] {
	case "r", "w":
		stm = Red
	case "b":
		stm = Black
	default:
		return nil, ErrInvalidFEN
	}
	return &Position{Board: b, SideToMove: stm}, nil
}
