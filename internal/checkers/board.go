package checkers

import "strings"

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols

	NoSquare = -1
)

func indexOf(row, col int) int { return row*Cols + col }

// Sq 把 (row, col) 换成格子下标，不在盘内返回 NoSquare
func Sq(row, col int) int {
	if !OnBoard(row, col) {
		return NoSquare
	}
	return indexOf(row, col)
}

func RowOf(sq int) int { return sq / Cols }
func ColOf(sq int) int { return sq % Cols }

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// IsDark 只有 (row+col) 为奇数的深色格可以放子
func IsDark(row, col int) bool {
	return (row+col)%2 == 1
}

// PromotionRow 升王的那一行
func PromotionRow(side Side) int {
	if side == Red {
		return 0
	}
	return Rows - 1
}

// BackRow 自家底线
func BackRow(side Side) int {
	if side == Red {
		return Rows - 1
	}
	return 0
}

var (
	kingDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	redDirs   = [2][2]int{{-1, -1}, {-1, 1}}
	blackDirs = [2][2]int{{1, -1}, {1, 1}}
)

// 兵只能斜向前，王四个斜向都能走
func directions(p Piece) [][2]int {
	if p.IsKing() {
		return kingDirs[:]
	}
	switch p.Side() {
	case Red:
		return redDirs[:]
	case Black:
		return blackDirs[:]
	}
	return nil
}

// 开局：黑方占 0-2 行深色格，红方占 5-7 行深色格
const initialBoardString = `.b.b.b.b
b.b.b.b.
.b.b.b.b
........
........
r.r.r.r.
.r.r.r.r
r.r.r.r.`

func parseInitialBoard() Board {
	var b Board
	lines := strings.Split(initialBoardString, "\n")
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 8")
	}
	for r, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Cols {
			panic("initialBoardString 列数不为 8")
		}
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece[ch]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[indexOf(r, c)] = pc
		}
	}
	return b
}

func NewInitialBoard() Board {
	return parseInitialBoard()
}

func NewInitialPosition() *Position {
	return &Position{
		Board:      parseInitialBoard(),
		SideToMove: Red, // 红先
	}
}

// At 取 (row, col) 上的子，盘外视为空
func (b *Board) At(row, col int) Piece {
	if !OnBoard(row, col) {
		return Empty
	}
	return b.Squares[indexOf(row, col)]
}

// Count 数某一方还剩多少子
func (b *Board) Count(side Side) int {
	n := 0
	for _, pc := range b.Squares {
		if !pc.IsEmpty() && pc.Side() == side {
			n++
		}
	}
	return n
}
