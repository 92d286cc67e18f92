package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"go8080/cpu"
	"go8080/emulator"
)

// model is the interactive single-step debugger: a paged memory view with
// the current PC highlighted, a register/flag panel, and a dump of the
// next instruction to execute.
type model struct {
	e      *emulator.Emulator
	prevPC uint16
	err    error
}

func newModel(e *emulator.Emulator) model {
	return model{e: e}
}

// Init performs no setup; the ROM and device wiring are already in place by
// the time the debugger starts.
func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			if m.e.CPU.Halted {
				return m, nil
			}
			m.prevPC = m.e.CPU.Reg.PC
			m.e.Step()
		case "c":
			for !m.e.CPU.Halted {
				m.e.Step()
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.e.Mem.Read(addr)
		if addr == m.e.CPU.Reg.PC {
			s += fmt.Sprintf("[%02x]", b)
		} else {
			s += fmt.Sprintf(" %02x ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	lines := []string{"addr | " + strings.Repeat(" xx ", 16)}
	base := m.e.CPU.Reg.PC &^ 0x000F
	for p := -2; p <= 2; p++ {
		start := int(base) + p*16
		if start < 0 || start > 0xFFF0 {
			continue
		}
		lines = append(lines, m.renderPage(uint16(start)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	return fmt.Sprintf(
		"%s\n\nprev PC: %04x\nnext op: %s",
		m.e.CPU, m.prevPC, cpu.OpcodeName(m.e.Mem.Read(m.e.CPU.Reg.PC)),
	)
}

func (m model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), "   ", m.status())
	help := "\nspace/j: step   c: run to halt   q: quit"
	if m.e.CPU.Halted {
		help = "\n[HALTED]" + help
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, help, spew.Sdump(m.e.CPU.Reg))
}
