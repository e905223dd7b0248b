// Package progress shows a spinner on stderr while ggo waits on git.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/ggo/internal/ui/styles"
)

// Spinner animates a message on a terminal until stopped.
type Spinner struct {
	out     io.Writer
	message string

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	running bool
}

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() tea.View {
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), m.message))
}

// NewSpinner creates a spinner that draws message to out once started.
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{out: out, message: message, done: make(chan struct{})}
}

// Start begins the animation. Calling it twice has no effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	model := spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.AccentStyle)),
		message: s.message,
	}
	s.program = tea.NewProgram(model,
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
		tea.WithOutput(s.out),
	)
	s.running = true

	go func() {
		_, _ = s.program.Run()
		close(s.done)
	}()
}

// Stop ends the animation and clears its line. Stop without Start is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.program.Quit()
	select {
	case <-s.done:
	case <-time.After(500 * time.Millisecond):
	}
	fmt.Fprint(s.out, "\r\033[K")
}

// While runs fn, showing the spinner meanwhile when enabled is true.
func While(out io.Writer, enabled bool, message string, fn func() error) error {
	if !enabled {
		return fn()
	}
	s := NewSpinner(out, message)
	s.Start()
	defer s.Stop()
	return fn()
}
