package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/ggo/internal/frecency"
	"github.com/raphi011/ggo/internal/ggoerr"
	"github.com/raphi011/ggo/internal/resolve"
	"github.com/raphi011/ggo/internal/ui/styles"
)

// nameWidth is the branch column width in picker rows.
const nameWidth = 40

type branchItem struct {
	row    string
	branch string
	index  int
}

func (i branchItem) Title() string       { return i.row }
func (i branchItem) Description() string { return "" }
func (i branchItem) FilterValue() string { return i.branch }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// While typing a filter, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering && msg.String() != "ctrl+c" {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(branchItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// FormatRow renders a candidate as a picker row: name, score, usage count
// and last use.
func FormatRow(c resolve.Ranked, now time.Time) string {
	score := "new"
	if c.Score > 0 {
		score = fmt.Sprintf("score: %.1f", c.Score)
	}

	usage := "never used"
	if c.SwitchCount > 0 {
		usage = fmt.Sprintf("%d switches", c.SwitchCount)
	}

	when := "never"
	if !c.LastUsed.IsZero() {
		when = frecency.FormatRelativeTime(c.LastUsed, now)
	}

	return fmt.Sprintf("%s │ %12s │ %12s │ %s",
		padCell(ansi.Truncate(c.Branch, nameWidth, "..."), nameWidth), score, usage, when)
}

// padCell right-pads s with spaces to width terminal cells.
func padCell(s string, width int) string {
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

func newSelectModel(candidates []resolve.Ranked, now time.Time) selectModel {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = branchItem{row: FormatRow(c, now), branch: c.Branch, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = styles.AccentStyle

	l := list.New(items, delegate, 100, min(len(candidates)+6, 20))
	l.Title = fmt.Sprintf("Select a branch (%d matches)", len(candidates))
	l.Styles.Title = styles.TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return selectModel{list: l, selected: -1}
}

// SelectBranch lets the user pick one of candidates, shown in the given
// order. Aborting returns a Cancelled error.
func SelectBranch(candidates []resolve.Ranked, now time.Time) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no branches available for selection")
	}
	if !Interactive() {
		return "", ErrNotInteractive
	}

	p := tea.NewProgram(newSelectModel(candidates, now),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	m := finalModel.(selectModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(candidates) {
		return "", ggoerr.NewCancelled()
	}
	return candidates[m.selected].Branch, nil
}
