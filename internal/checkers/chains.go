package checkers

// AllChains 列出这一方本回合所有完整走法，连跳的每个分支都单独列出
func (b *Board) AllChains(side Side) []Chain {
	var out []Chain
	for _, m := range b.AllLegalMoves(side) {
		if !m.Jump {
			out = append(out, Chain{m})
			continue
		}
		out = b.extendChain(side, Chain{m}, out)
	}
	return out
}

func (b *Board) extendChain(side Side, prefix Chain, out []Chain) []Chain {
	last := prefix[len(prefix)-1]
	nb := b.Apply(last)
	more := nb.ContinuationJumps(last.To, side)
	if len(more) == 0 {
		return append(out, append(Chain(nil), prefix...))
	}
	for _, m := range more {
		out = nb.extendChain(side, append(prefix[:len(prefix):len(prefix)], m), out)
	}
	return out
}
