package checkers

// EnglishRules 把棋盘方法包成无状态的规则对象，供搜索层通过接口调用
type EnglishRules struct{}

func (EnglishRules) AllLegalMoves(b *Board, side Side) []Move {
	return b.AllLegalMoves(side)
}

func (EnglishRules) ContinuationJumps(b *Board, sq int, side Side) []Move {
	return b.ContinuationJumps(sq, side)
}

func (EnglishRules) Apply(b *Board, m Move) Board {
	return b.Apply(m)
}
