package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty 难度档：固定搜索深度 + 随机走子概率
type Difficulty struct {
	Name       string
	Depth      int
	Randomness float64
}

var (
	easy   = Difficulty{Name: "easy", Depth: 1, Randomness: 0.40}
	medium = Difficulty{Name: "medium", Depth: 3, Randomness: 0.15}
	hard   = Difficulty{Name: "hard", Depth: 5, Randomness: 0}
)

// 返回值拷贝，表本身改不动
func Easy() Difficulty   { return easy }
func Medium() Difficulty { return medium }
func Hard() Difficulty   { return hard }

// Difficulties 固定的三档，运行时不可扩展
func Difficulties() []Difficulty {
	return []Difficulty{easy, medium, hard}
}

func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties() {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) String() string { return d.Name }

// Next 循环切换到下一档（界面用）
func (d Difficulty) Next() Difficulty {
	all := Difficulties()
	for i, x := range all {
		if x.Name == d.Name {
			return all[(i+1)%len(all)]
		}
	}
	return medium
}
