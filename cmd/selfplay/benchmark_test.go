package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/engine"
	"checkers/internal/server/game"
)

func TestPlayGameFinishes(t *testing.T) {
	e := engine.NewEngine(engine.Options{Seed: 3})
	easy := PlayerConfig{Name: "easy", Difficulty: engine.Easy()}

	st := playGame(e, easy, easy, 5000, false)
	require.NotEqual(t, game.Playing, st)

	// 步数上限到了按和棋
	st = playGame(e, easy, easy, 2, false)
	require.Equal(t, game.Draw, st)
}

func TestRunMatchCountsEveryGame(t *testing.T) {
	e := engine.NewEngine(engine.Options{Seed: 5})
	a := PlayerConfig{Name: "a", Difficulty: engine.Easy()}
	b := PlayerConfig{Name: "b", Difficulty: engine.Easy()}
	r := runMatch(e, a, b, 4, 60)
	require.Equal(t, 4, r.aWins+r.bWins+r.draws)
}
