package main

import (
	"fmt"
	"os"

	"checkers/internal/checkers"
	"checkers/internal/engine"
)

// 打印一个局面（默认开局）的棋盘文本、合法走法和各档难度的选择
func main() {
	pos := checkers.NewInitialPosition()
	if len(os.Args) > 1 {
		p, err := checkers.DecodePosition(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pos = p
	}

	fmt.Println("Position:", pos.Encode())
	fmt.Println("To move:", pos.SideToMove)
	moves := pos.GenerateLegalMoves()
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		fmt.Println("  ", m)
	}
	fmt.Println("Eval:", engine.Evaluate(&pos.Board, pos.SideToMove))

	e := engine.NewEngine(engine.Options{Seed: 1, Parallel: true})
	for _, d := range engine.Difficulties() {
		res, ok := e.Decide(&pos.Board, pos.SideToMove, d)
		if !ok {
			fmt.Printf("%-6s no move\n", d.Name)
			continue
		}
		fmt.Printf("%-6s %-12s score=%d nodes=%d src=%s time=%v\n",
			d.Name, res.Best.Notation(), res.Score, res.Nodes, res.Source, res.TimeUsed)
	}
}
