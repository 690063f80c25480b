package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/engine"
	"checkers/internal/server/game"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// 电脑回合：先等展示延迟，再在 tea.Cmd 里搜索，UI 循环不阻塞
type aiTickMsg struct{ seq int }

type aiMoveMsg struct {
	seq int
	res engine.SearchResult
	ok  bool
}

type Options struct {
	Engine     *engine.Engine
	Difficulty engine.Difficulty
	AIEnabled  bool
	AIDelay    time.Duration
}

type Model struct {
	g       *game.GameState
	eng     *engine.Engine
	aiDelay time.Duration

	cursor   int
	thinking bool
	seq      int // 开新局或开关电脑时加一，丢掉在途的电脑结果

	m     mode
	input textinput.Model
	keys  keyMap
	help  help.Model

	logLines []string

	width  int
	height int
}

func NewModel(opts Options) Model {
	eng := opts.Engine
	if eng == nil {
		eng = engine.NewEngine(engine.Options{Parallel: true})
	}
	d := opts.Difficulty
	if d.Name == "" {
		d = engine.Medium()
	}

	ti := textinput.New()
	ti.Placeholder = "c3-d4 or c3xe5xg7"
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Width = 30

	return Model{
		g:        game.NewGameState("local", opts.AIEnabled, d),
		eng:      eng,
		aiDelay:  opts.AIDelay,
		cursor:   checkers.Sq(5, 2),
		m:        modeNormal,
		input:    ti,
		keys:     defaultKeyMap(),
		help:     help.New(),
		logLines: []string{"red to move"},
	}
}

func (m Model) Game() *game.GameState { return m.g }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case aiTickMsg:
		if msg.seq != m.seq || !m.g.AITurn() {
			m.thinking = false
			return m, nil
		}
		return m, m.searchCmd()

	case aiMoveMsg:
		return m.applyAIMove(msg)

	case tea.KeyMsg:
		if m.m == modeInput {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, col := checkers.RowOf(m.cursor), checkers.ColOf(m.cursor)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(row-1, col)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(row+1, col)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(row, col-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(row, col+1)
	case key.Matches(msg, m.keys.Click):
		if m.thinking {
			m.appendLog("computer is thinking")
			return m, nil
		}
		if err := m.g.Click(m.cursor); err != nil {
			m.appendLog(err.Error())
			return m, nil
		}
		return m, m.afterHumanMove()
	case key.Matches(msg, m.keys.Input):
		m.m = modeInput
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.NewGame):
		m.seq++
		m.thinking = false
		m.g.Reset()
		m.cursor = checkers.Sq(5, 2)
		m.appendLog("new game")
		return m, nil
	case key.Matches(msg, m.keys.ToggleAI):
		// 切换后在途的电脑结果作废
		m.seq++
		m.thinking = false
		m.g.SetAI(!m.g.AIEnabled)
		m.appendLog(fmt.Sprintf("computer %s", onOff(m.g.AIEnabled)))
		return m, m.scheduleAI()
	case key.Matches(msg, m.keys.Difficulty):
		m.g.SetDifficulty(m.g.Difficulty.Next())
		m.appendLog("difficulty " + m.g.Difficulty.Name)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.m = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.m = modeNormal
		m.input.Blur()
		if line == "" {
			return m, nil
		}
		if m.thinking {
			m.appendLog("computer is thinking")
			return m, nil
		}
		chain, err := checkers.ParseChain(line)
		if err != nil {
			m.appendLog(err.Error())
			return m, nil
		}
		if err := m.g.PlayChain(chain); err != nil {
			m.appendLog(err.Error())
			return m, nil
		}
		return m, m.afterHumanMove()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(row, col int) {
	if checkers.OnBoard(row, col) {
		m.cursor = checkers.Sq(row, col)
	}
}

// afterHumanMove 回合走完时记日志，轮到电脑就排上
func (m *Model) afterHumanMove() tea.Cmd {
	if m.g.JumpInProgress() || m.g.Selected != checkers.NoSquare {
		return nil
	}
	if n := len(m.g.History); n > 0 {
		h := m.g.History[n-1]
		m.appendLog(fmt.Sprintf("%s %s", h.Player, h.Notation))
	}
	m.logStatus()
	return m.scheduleAI()
}

func (m *Model) scheduleAI() tea.Cmd {
	if m.thinking || !m.g.AITurn() || m.g.JumpInProgress() {
		return nil
	}
	m.thinking = true
	seq := m.seq
	return tea.Tick(m.aiDelay, func(time.Time) tea.Msg {
		return aiTickMsg{seq: seq}
	})
}

// searchCmd 拷一份棋盘在后台搜索
func (m Model) searchCmd() tea.Cmd {
	board := m.g.Pos.Board
	side := m.g.ToMove()
	d := m.g.Difficulty
	eng := m.eng
	seq := m.seq
	return func() tea.Msg {
		res, ok := eng.Decide(&board, side, d)
		return aiMoveMsg{seq: seq, res: res, ok: ok}
	}
}

func (m Model) applyAIMove(msg aiMoveMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	m.thinking = false
	if !m.g.AITurn() {
		return m, nil
	}
	if !msg.ok {
		m.logStatus()
		return m, nil
	}
	if err := m.g.PlayChain(msg.res.Best); err != nil {
		log.Warn().Err(err).Str("move", msg.res.Best.Notation()).Msg("computer move rejected")
		m.appendLog(err.Error())
		return m, nil
	}
	log.Debug().
		Str("move", msg.res.Best.Notation()).
		Str("source", string(msg.res.Source)).
		Int("score", msg.res.Score).
		Int64("nodes", msg.res.Nodes).
		Msg("computer move")
	m.appendLog(fmt.Sprintf("%s %s", m.g.AISide, msg.res.Best.Notation()))
	m.logStatus()
	return m, nil
}

func (m *Model) logStatus() {
	if m.g.Status != game.Playing {
		m.appendLog("game over: " + string(m.g.Status))
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	turn := m.g.ToMove().String() + " to move"
	if m.g.Status != game.Playing {
		turn = string(m.g.Status)
	} else if m.thinking {
		turn = "computer thinking..."
	} else if m.g.JumpInProgress() {
		turn += " (continue jump)"
	}
	header := titleStyle.Render(fmt.Sprintf("checkers  [%s]  computer:%s  difficulty:%s",
		turn, onOff(m.g.AIEnabled), m.g.Difficulty.Name))

	board := RenderBoard(m.g, m.cursor)

	// 侧栏：子数 + 最近的记录
	var side strings.Builder
	fmt.Fprintf(&side, "red   %2d\nblack %2d\n\n", m.g.RedCount, m.g.BlackCount)
	histStart := len(m.g.History) - 12
	if histStart < 0 {
		histStart = 0
	}
	for i := histStart; i < len(m.g.History); i++ {
		h := m.g.History[i]
		fmt.Fprintf(&side, "%3d. %-5s %s\n", i+1, h.Player, h.Notation)
	}
	panel := boxStyle.Width(28).Render(strings.TrimRight(side.String(), "\n"))

	logStart := len(m.logLines) - 4
	if logStart < 0 {
		logStart = 0
	}
	logBox := boxStyle.Render(strings.Join(m.logLines[logStart:], "\n"))

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = m.help.View(m.keys)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel)
	return header + "\n" + body + "\n" + logBox + "\n" + inputLine + "\n"
}
