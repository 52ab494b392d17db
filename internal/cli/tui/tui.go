package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"TodoList/internal/cli/service"
	"TodoList/internal/cli/ui"
	"TodoList/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	barStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)

// listItem адаптирует model.Item к bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Name }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Name }

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	line := strings.SplitN(ui.ItemLine(it.item), "\n", 2)[0]
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

// сообщения от асинхронных запросов к серверу
type itemsMsg struct{ items []model.Item }
type errMsg struct{ err error }

type inputMode int

const (
	modeList inputMode = iota
	modeAdd
	modeEdit
)

// Model — интерактивный список записей тенанта.
type Model struct {
	ctx      context.Context
	svc      service.ItemService
	tenantID string

	list   list.Model
	ti     textinput.Model
	mode   inputMode
	editID string
	err    string
}

// New собирает модель; записи подгружаются в Init.
func New(ctx context.Context, svc service.ItemService, tenantID string) Model {
	l := list.New(nil, itemDelegate{}, 80, 20)
	l.Title = "Todos (" + tenantID + ")"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = helpStyle
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, toggleBind, delBind} }
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{ctx: ctx, svc: svc, tenantID: tenantID, list: l, ti: ti}
}

// Run запускает TUI до выхода пользователя.
func Run(ctx context.Context, svc service.ItemService, tenantID string) error {
	_, err := tea.NewProgram(New(ctx, svc, tenantID), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.reload() }

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		items, err := m.svc.List(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return itemsMsg{items}
	}
}

// do выполняет действие и перечитывает список
func (m Model) do(action func() error) tea.Cmd {
	return func() tea.Msg {
		if err := action(); err != nil {
			return errMsg{err}
		}
		return m.reload()()
	}
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.item, ok
}

// Items возвращает записи в порядке показа.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.item)
		}
	}
	return out
}

// Err возвращает последнюю ошибку для строки статуса.
func (m Model) Err() string { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil
	case itemsMsg:
		// невыполненные сверху, как в панелях TO DO / DONE
		todo, done := ui.Split(msg.items)
		li := make([]list.Item, 0, len(msg.items))
		for _, it := range append(todo, done...) {
			li = append(li, listItem{item: it})
		}
		m.err = ""
		return m, m.list.SetItems(li)
	case errMsg:
		m.err = msg.err.Error()
		return m, nil
	}

	if m.mode != modeList {
		return m.updateInput(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch k.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				return m, m.do(func() error { _, err := m.svc.Toggle(m.ctx, it.ID); return err })
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				return m, m.do(func() error { return m.svc.Remove(m.ctx, it.ID) })
			}
			return m, nil
		case "a":
			m.mode = modeAdd
			m.ti.SetValue("")
			m.ti.Placeholder = "New item..."
			return m, m.ti.Focus()
		case "e":
			if it, ok := m.selected(); ok {
				m.mode = modeEdit
				m.editID = it.ID
				m.ti.SetValue(it.Name)
				m.ti.CursorEnd()
				return m, m.ti.Focus()
			}
			return m, nil
		case "r":
			return m, m.reload()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.mode = modeList
			m.ti.Blur()
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.ti.Value())
			if name == "" {
				m.err = "Name cannot be empty"
				return m, nil
			}
			mode, id := m.mode, m.editID
			m.mode = modeList
			m.ti.Blur()
			m.ti.SetValue("")
			if mode == modeAdd {
				return m, m.do(func() error { _, err := m.svc.Add(m.ctx, name); return err })
			}
			return m, m.do(func() error {
				_, err := m.svc.Edit(m.ctx, id, model.ItemUpdate{Name: &name})
				return err
			})
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != modeList {
		title := "Add item"
		if m.mode == modeEdit {
			title = "Rename item"
		}
		content += "\n" + barStyle.Render(title+"\n"+m.ti.View())
	}
	if m.err != "" {
		content += "\n" + errorStyle.Render("✖ "+m.err)
	}
	return content
}
