package engine

import "checkers/internal/checkers"

// ======= 基础子力估值 =======

const (
	manValue  = 100
	kingValue = 180

	advanceBonus = 5  // 兵每向升王行前进一行
	backRowBonus = 15 // 兵守在自家底线
	centerBonus  = 10 // 兵在中央 4x4
)

// Evaluate 从 perspective 一方视角：正数对它有利
// 材料 + “简单位置分” 一起算；王只算子力
func Evaluate(b *checkers.Board, perspective checkers.Side) int {
	score := 0
	for sq, pc := range b.Squares {
		if pc.IsEmpty() {
			continue
		}
		val := manValue
		if pc.IsKing() {
			val = kingValue
		} else {
			val += manPositionalBonus(pc.Side(), checkers.RowOf(sq), checkers.ColOf(sq))
		}
		if pc.Side() == perspective {
			score += val
		} else {
			score -= val
		}
	}
	return score
}

func manPositionalBonus(side checkers.Side, row, col int) int {
	b := advance(side, row) * advanceBonus
	if row == checkers.BackRow(side) {
		b += backRowBonus
	}
	if row >= 2 && row <= 5 && col >= 2 && col <= 5 {
		b += centerBonus
	}
	return b
}

// 自家方向上的“前进距离”，底线为 0
func advance(side checkers.Side, row int) int {
	if side == checkers.Red {
		return checkers.Rows - 1 - row
	}
	return row
}
