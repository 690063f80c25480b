package checkers

// 单颗子的走法：普通步和吃子步分开返回
func (b *Board) genPieceMoves(from int, moves, jumps *[]Move) {
	pc := b.Squares[from]
	row, col := RowOf(from), ColOf(from)
	side := pc.Side()
	for _, d := range directions(pc) {
		r, c := row+d[0], col+d[1]
		if !OnBoard(r, c) {
			continue
		}
		mid := b.Squares[indexOf(r, c)]
		if mid.IsEmpty() {
			if moves != nil {
				*moves = append(*moves, Move{From: from, To: indexOf(r, c), Captured: NoSquare})
			}
			continue
		}
		if mid.Side() == side {
			continue
		}
		// 隔一子跳吃：落点必须在盘内且为空
		jr, jc := r+d[0], c+d[1]
		if !OnBoard(jr, jc) || !b.Squares[indexOf(jr, jc)].IsEmpty() {
			continue
		}
		*jumps = append(*jumps, Move{
			From:     from,
			To:       indexOf(jr, jc),
			Jump:     true,
			Captured: indexOf(r, c),
		})
	}
}

func (b *Board) owns(side Side, sq int) bool {
	if sq < 0 || sq >= NumSquares {
		return false
	}
	pc := b.Squares[sq]
	return !pc.IsEmpty() && pc.Side() == side
}

// HasAnyCapture 这一方是否有任何一颗子能吃
func (b *Board) HasAnyCapture(side Side) bool {
	var jumps []Move
	for sq := 0; sq < NumSquares; sq++ {
		if !b.owns(side, sq) {
			continue
		}
		b.genPieceMoves(sq, nil, &jumps)
		if len(jumps) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves 生成 sq 上这颗子的合法走法。
// 有吃必吃：本子能吃时只返回吃子步；全盘有吃而本子不能吃时返回空。
func (b *Board) LegalMoves(side Side, sq int) []Move {
	if !b.owns(side, sq) {
		return nil
	}
	var moves, jumps []Move
	b.genPieceMoves(sq, &moves, &jumps)
	if len(jumps) > 0 {
		return jumps
	}
	if b.HasAnyCapture(side) {
		return nil
	}
	return moves
}

// AllLegalMoves 这一方本回合所有合法首步（按格子顺序）。空表示无子可动。
func (b *Board) AllLegalMoves(side Side) []Move {
	var moves, jumps []Move
	for sq := 0; sq < NumSquares; sq++ {
		if !b.owns(side, sq) {
			continue
		}
		b.genPieceMoves(sq, &moves, &jumps)
	}
	if len(jumps) > 0 {
		return jumps
	}
	return moves
}

// ContinuationJumps 跳吃落地后，同一颗子还能继续跳的步（只看落点这颗子）
func (b *Board) ContinuationJumps(sq int, side Side) []Move {
	if !b.owns(side, sq) {
		return nil
	}
	var jumps []Move
	b.genPieceMoves(sq, nil, &jumps)
	return jumps
}

// Apply 应用单步：这里默认传进来的就是合法招（由上层检查）。
// 返回新棋盘，原棋盘不变；落到对方底线的兵立即升王。
func (b *Board) Apply(m Move) Board {
	nb := *b
	if m.From < 0 || m.From >= NumSquares || m.To < 0 || m.To >= NumSquares {
		return nb
	}
	pc := nb.Squares[m.From]
	nb.Squares[m.From] = Empty
	if m.Jump && m.Captured >= 0 && m.Captured < NumSquares {
		nb.Squares[m.Captured] = Empty
	}
	if !pc.IsKing() && RowOf(m.To) == PromotionRow(pc.Side()) {
		pc = pc.Promoted()
	}
	nb.Squares[m.To] = pc
	return nb
}

// ApplyChain 依次应用整串走法
func (b *Board) ApplyChain(c Chain) Board {
	nb := *b
	for _, m := range c {
		nb = nb.Apply(m)
	}
	return nb
}

// Outcome 判断终局：某方没子则对方胜；轮到走的一方有子但无招可走也判负。
// 规则层不产生和棋。
func (b *Board) Outcome(toMove Side) Outcome {
	if b.Count(Red) == 0 {
		return BlackWins
	}
	if b.Count(Black) == 0 {
		return RedWins
	}
	if len(b.AllLegalMoves(toMove)) == 0 {
		return WinnerOutcome(toMove.Opposite())
	}
	return Ongoing
}

// ApplyMove 在局面上走一步并交换走子方；连跳没走完时不换边
func (p *Position) ApplyMove(m Move) *Position {
	np := *p
	np.Board = p.Board.Apply(m)
	if !m.Jump || len(np.Board.ContinuationJumps(m.To, p.SideToMove)) == 0 {
		np.SideToMove = p.SideToMove.Opposite()
	}
	return &np
}

// ApplyChain 走完一整个回合并交换走子方
func (p *Position) ApplyChain(c Chain) *Position {
	np := *p
	np.Board = p.Board.ApplyChain(c)
	np.SideToMove = p.SideToMove.Opposite()
	return &np
}

// GenerateLegalMoves 当前走子方的所有合法首步
func (p *Position) GenerateLegalMoves() []Move {
	return p.Board.AllLegalMoves(p.SideToMove)
}
