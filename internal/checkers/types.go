package checkers

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

// Piece 是格子里的值：0=空；>0 红；<0 黑；abs=1 兵，abs=2 王
type Piece int8

const (
	Empty     Piece = 0
	RedMan    Piece = 1
	RedKing   Piece = 2
	BlackMan  Piece = -1
	BlackKing Piece = -2
)

func makePiece(side Side, king bool) Piece {
	var p Piece = 1
	if king {
		p = 2
	}
	switch side {
	case Red:
		return p
	case Black:
		return -p
	}
	return Empty
}

func (p Piece) IsEmpty() bool { return p == Empty }

func (p Piece) Side() Side {
	if p == Empty {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) IsKing() bool { return p == RedKing || p == BlackKing }

// Promoted 返回升王后的棋子；王和空格原样返回（升王只发生一次，不会回退）
func (p Piece) Promoted() Piece {
	switch p {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	}
	return p
}

type Board struct {
	Squares [NumSquares]Piece
}

// Move 是单步（一跳）。Captured 只有 Jump 时有效，否则为 NoSquare。
type Move struct {
	From     int  `json:"from"`
	To       int  `json:"to"`
	Jump     bool `json:"jump"`
	Captured int  `json:"captured"`
}

// Chain 是一个回合内同一颗子的全部步，普通走法只有一步
type Chain []Move

// Position = 棋盘 + 轮到谁走
type Position struct {
	Board      Board
	SideToMove Side
}

type Outcome int8

const (
	Ongoing Outcome = iota
	RedWins
	BlackWins
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red-wins"
	case BlackWins:
		return "black-wins"
	}
	return "ongoing"
}

// WinnerOutcome 把胜方换成结局
func WinnerOutcome(winner Side) Outcome {
	switch winner {
	case Red:
		return RedWins
	case Black:
		return BlackWins
	}
	return Ongoing
}
