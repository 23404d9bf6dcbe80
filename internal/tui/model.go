package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"momentum/internal/engine"
	"momentum/internal/storage"
)

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	habits  []storage.Habit
	due     map[int64]bool
	earned  int
	total   int

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	habits  []storage.Habit
	due     map[int64]bool
	earned  int
	total   int
	err     error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		due:     map[int64]bool{},
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.ListHabits(m.ctx, false)
		if err != nil {
			return loadedMsg{err: err}
		}

		due := map[int64]bool{}
		now := time.Now()
		for _, h := range habits {
			logs, err := m.svc.LogRepo().ListByHabit(m.ctx, h.ID)
			if err != nil {
				return loadedMsg{err: err}
			}
			due[h.ID] = engine.IsDueToday(h, logs, now)
		}

		statuses, err := m.svc.AchievementStatuses(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		earned := 0
		for _, st := range statuses {
			if st.Unlocked() {
				earned++
			}
		}

		return loadedMsg{profile: p, habits: habits, due: due, earned: earned, total: len(statuses)}
	}
}

func (m dashModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(m.ctx, id, nil)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.habits = msg.habits
		m.due = msg.due
		m.earned = msg.earned
		m.total = msg.total
		if m.selected >= len(m.habits) {
			m.selected = len(m.habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = completionLog(msg.res)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.habits) {
				return m, nil
			}
			h := m.habits[m.selected]
			m.lastLog = fmt.Sprintf("Completing %d…", h.ID)
			return m, m.completeCmd(h.ID)
		}
	}
	return m, nil
}

func completionLog(res *engine.CompleteResult) string {
	line := fmt.Sprintf("Completed %d: +%d XP, streak %d", res.HabitID, res.XPAwarded, res.Streak)
	if res.LevelUp {
		line += fmt.Sprintf(" — level %d → %d", res.LevelBefore, res.LevelAfter)
	}
	if res.StreakRecord {
		line += " — new longest streak!"
	}
	for _, a := range res.Unlocked {
		line += fmt.Sprintf(" — unlocked %q", a.Name)
	}
	return line
}

func (m dashModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	if m.profile == nil {
		return "Momentum — loading…"
	}
	into := engine.XPIntoLevel(*m.profile)
	bracket := engine.XPForNextLevel(m.profile.Level)
	bar := progressBar(into, bracket, 30)
	return fmt.Sprintf("Momentum | Level %d | XP %d %s", m.profile.Level, m.profile.CurrentXP, bar)
}

func (m dashModel) renderSidebar() string {
	if m.profile == nil {
		return "Stats\n\nLoading…"
	}
	dueCount := 0
	for _, isDue := range m.due {
		if isDue {
			dueCount++
		}
	}
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Longest streak: %d", m.profile.LongestStreak))
	lines = append(lines, fmt.Sprintf("- Achievements: %d/%d", m.earned, m.total))
	lines = append(lines, fmt.Sprintf("- Due today: %d", dueCount))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Habits")
	if len(m.habits) == 0 {
		out = append(out, "(none yet — add one with `mmt add`)")
		return strings.Join(out, "\n")
	}
	for i, h := range m.habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := " "
		if m.due[h.ID] {
			mark = "!"
		}
		out = append(out, fmt.Sprintf("%s%s %d %s (%s, streak %d)", cursor, mark, h.ID, h.Name, h.Category, h.CurrentStreak))
	}
	out = append(out, "")
	out = append(out, "`!` marks habits still due in the current period.")
	return strings.Join(out, "\n")
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

func progressBar(value, total, width int) string {
	if total < 1 {
		total = 1
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
