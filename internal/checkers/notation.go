package checkers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move notation")
)

// SquareName 列字母 a-h（col 0 -> 'a'）+ 行号 8-row（row 0 -> '8'）
func SquareName(sq int) string {
	if sq < 0 || sq >= NumSquares {
		return "-"
	}
	return string([]byte{byte('a' + ColOf(sq)), byte('0' + Rows - RowOf(sq))})
}

func ParseSquare(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	col := int(s[0] - 'a')
	row := Rows - int(s[1]-'0')
	if !OnBoard(row, col) {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return indexOf(row, col), nil
}

func (m Move) String() string {
	sep := "-"
	if m.Jump {
		sep = "x"
	}
	return SquareName(m.From) + sep + SquareName(m.To)
}

func (c Chain) From() int {
	if len(c) == 0 {
		return NoSquare
	}
	return c[0].From
}

func (c Chain) To() int {
	if len(c) == 0 {
		return NoSquare
	}
	return c[len(c)-1].To
}

func (c Chain) IsJump() bool {
	return len(c) > 0 && c[0].Jump
}

// Captures 被吃掉的格子，按跳的顺序
func (c Chain) Captures() []int {
	var out []int
	for _, m := range c {
		if m.Jump {
			out = append(out, m.Captured)
		}
	}
	return out
}

// Notation 普通步 "c3-d4"；连跳每一跳追加 "x落点"，如 "c3xe5xg7"
func (c Chain) Notation() string {
	if len(c) == 0 {
		return ""
	}
	if !c.IsJump() {
		return c[0].String()
	}
	var sb strings.Builder
	sb.WriteString(SquareName(c[0].From))
	for _, m := range c {
		sb.WriteByte('x')
		sb.WriteString(SquareName(m.To))
	}
	return sb.String()
}

func (c Chain) String() string { return c.Notation() }

// ParsePath 解析 "c3-d4" / "c3xe5xg7"（也接受 "×"），返回经过的格子和是否吃子
func ParsePath(s string) ([]int, bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "×", "x")
	jump := strings.Contains(s, "x")
	sep := "-"
	if jump {
		if strings.Contains(s, "-") {
			return nil, false, fmt.Errorf("%w: %q", ErrInvalidMove, s)
		}
		sep = "x"
	}
	parts := strings.Split(s, sep)
	if len(parts) < 2 || (!jump && len(parts) != 2) {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	path := make([]int, 0, len(parts))
	for _, p := range parts {
		sq, err := ParseSquare(p)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
		}
		path = append(path, sq)
	}
	return path, jump, nil
}

// PathChain 把坐标路径变成只带 From/To 的整串；吃子位置留给规则层校验时补上
func PathChain(path []int, jump bool) Chain {
	if len(path) < 2 {
		return nil
	}
	c := make(Chain, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		c = append(c, Move{From: path[i], To: path[i+1], Jump: jump, Captured: NoSquare})
	}
	return c
}

// ParseChain 解析整个回合，"c3-d4" 或 "c3xe5xg7"
func ParseChain(s string) (Chain, error) {
	path, jump, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	return PathChain(path, jump), nil
}

// ParseMove 只解析单步 "c3-d4" / "c3xe5"
func ParseMove(s string) (Move, error) {
	path, jump, err := ParsePath(s)
	if err != nil {
		return Move{}, err
	}
	if len(path) != 2 {
		return Move{}, fmt.Errorf("%w: %q: not a single step", ErrInvalidMove, s)
	}
	return PathChain(path, jump)[0], nil
}
