package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"apple1/cpu"
	"apple1/mem"
)

var (
	screenStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(screenCols + 2)
	statusStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// tickMsg drives free-running mode: each tick executes a batch of
// instructions before the next repaint, instead of stepping the CPU once
// per keypress the way paused mode does.
type tickMsg time.Time

// model is the bubbletea program: a CPU wired to an Apple1Harness probe,
// plus the handful of fields that track run state across Update calls.
type model struct {
	cpu     *cpu.CPU
	harness *Apple1Harness

	running bool // free-running (tickMsg-driven) vs single-step
	prevPC  uint16
	lastOp  string
	err     error
}

// Debug loads program into a fresh Bus at offset, points the reset vector
// at offset, and runs the bubbletea debugger against it with an
// Apple1Harness wired to os.Stdin. It blocks until the user quits; a CPU
// halt stops execution but leaves the debugger open.
func Debug(program []byte, offset uint16) error {
	bus := &mem.Bus{}
	bus.LoadImage(program, offset)
	bus.Store16(0xfffc, offset)

	regs := &cpu.Registers{}
	harness := NewApple1Harness(os.Stdin)
	c := cpu.NewCPU(regs, bus, harness)
	c.Reset()

	_, err := tea.NewProgram(newModel(c, harness)).Run()
	return err
}

func newModel(c *cpu.CPU, h *Apple1Harness) model {
	return model{cpu: c, harness: h, prevPC: c.Reg.PC}
}

func (m model) Init() tea.Cmd {
	return nil
}

func tickEvery() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.step()
			return m, nil
		case "r":
			m.running = !m.running
			if m.running {
				return m, tickEvery()
			}
			return m, nil
		}
	case tickMsg:
		if !m.running {
			return m, nil
		}
		for i := 0; i < 200 && !m.cpu.Halted; i++ {
			m.step()
		}
		if m.cpu.Halted {
			m.running = false
			return m, nil
		}
		return m, tickEvery()
	}
	return m, nil
}

func (m *model) step() {
	m.prevPC = m.cpu.Reg.PC
	if op, ok := cpu.Opcodes[m.cpu.Mem.Load(m.cpu.Reg.PC)]; ok {
		m.lastOp = op.Name
	}
	if !m.cpu.Step() {
		m.err = fmt.Errorf("halted at $%04X", m.cpu.Reg.PC)
	}
}

func (m model) View() string {
	changed := m.harness.changedRows()
	changedSet := make(map[int]bool, len(changed))
	for _, i := range changed {
		changedSet[i] = true
	}

	rows := make([]string, screenRows)
	for i := 0; i < screenRows; i++ {
		marker := " "
		if changedSet[i] {
			marker = "*"
		}
		rows[i] = marker + m.harness.rowText(i)
	}
	screen := screenStyle.Render(joinLines(rows))

	statusText := m.cpu.String() + "\nnext: " + m.lastOp + "\n" + spew.Sdump(m.cpu.Reg.P)
	if m.err != nil {
		statusText += "\n" + m.err.Error()
	}
	status := statusStyle.Render(statusText)

	help := helpStyle.Render("space/j: step   r: toggle run   q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, screen, status),
		help,
	)
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
