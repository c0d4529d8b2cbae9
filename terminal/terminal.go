// Package terminal is the host I/O terminal: a bubbletea TUI presenting the
// Apple-1-style 40-column glass teletype. It never touches the bus or the
// CPU directly, only the io.PortIn8/io.PortOut8 callbacks wired onto the
// PIA's ports, so the emulator core stays unaware a terminal exists at all.
package terminal

import (
	"context"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cols = 40
	rows = 24
)

var screenStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("46")).
	Padding(0, 1)

// Terminal owns the 40x24 character grid and the latched keyboard byte. It
// implements io.PortOut8 (display, wired to PIA port A) and io.PortIn8
// (keyboard, wired to PIA port B).
type Terminal struct {
	mu      sync.Mutex
	grid    [rows][cols]byte
	row     int
	col     int
	lastKey atomic.Uint32

	program *tea.Program
}

// New creates an empty terminal, grid blanked to spaces.
func New() *Terminal {
	t := &Terminal{}
	t.clear()
	return t
}

func (t *Terminal) clear() {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t.grid[r][c] = ' '
		}
	}
	t.row, t.col = 0, 0
}

// Output implements io.PortOut8, the Apple-1 DSP convention: the high bit
// of val marks display-ready and is stripped here before interpreting the
// byte. 0x0D (CR) advances to the next line; everything else is appended at
// the cursor and wraps at the 40th column.
func (t *Terminal) Output(val uint8) {
	ch := val &^ 0x80
	t.mu.Lock()
	switch ch {
	case 0x0D:
		t.newline()
	default:
		t.grid[t.row][t.col] = ch
		t.col++
		if t.col >= cols {
			t.newline()
		}
	}
	t.mu.Unlock()

	if t.program != nil {
		t.program.Send(refreshMsg{})
	}
}

// newline must be called with mu held.
func (t *Terminal) newline() {
	t.col = 0
	t.row++
	if t.row >= rows {
		copy(t.grid[:rows-1], t.grid[1:])
		for c := 0; c < cols; c++ {
			t.grid[rows-1][c] = ' '
		}
		t.row = rows - 1
	}
}

// Input implements io.PortIn8, the Apple-1 KBD convention: the last
// keystroke typed, as ASCII with bit 7 set.
func (t *Terminal) Input() uint8 {
	return uint8(t.lastKey.Load())
}

func (t *Terminal) recordKey(b byte) {
	t.lastKey.Store(uint32(b | 0x80))
}

func (t *Terminal) snapshot() [rows]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var lines [rows]string
	for r := 0; r < rows; r++ {
		lines[r] = string(t.grid[r][:])
	}
	return lines
}

type refreshMsg struct{}

type model struct {
	term *Terminal
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.term.recordKey(0x0D)
		case tea.KeyBackspace:
			m.term.recordKey(0x08)
		case tea.KeySpace:
			m.term.recordKey(0x20)
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.term.recordKey(byte(r))
			}
		}
	case refreshMsg:
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	lines := m.term.snapshot()
	body := ""
	for i, l := range lines {
		body += l
		if i != len(lines)-1 {
			body += "\n"
		}
	}
	return screenStyle.Render(body)
}

// Run starts the bubbletea event loop and blocks until the user quits or
// ctx is canceled. It is the one goroutine in this system allowed to drive
// I/O independently of the instruction clock, per the PIA-port concurrency
// carve-out.
func (t *Terminal) Run(ctx context.Context) error {
	p := tea.NewProgram(model{term: t}, tea.WithContext(ctx))
	t.program = p
	_, err := p.Run()
	return err
}
