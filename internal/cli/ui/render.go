package ui

import (
	"fmt"
	"strings"
	"time"

	"TodoList/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// OK оформляет строку успешного действия.
func OK(msg string) string {
	return successStyle.Render("✔ " + msg)
}

// Fail оформляет строку ошибки.
func Fail(msg string) string {
	return errorStyle.Render("✖ " + msg)
}

// Split делит записи на невыполненные и выполненные, сохраняя порядок.
func Split(items []model.Item) (todo, done []model.Item) {
	for _, it := range items {
		if it.IsCompleted {
			done = append(done, it)
		} else {
			todo = append(todo, it)
		}
	}
	return todo, done
}

// ItemLine — одна строка списка: чекбокс, имя и id.
func ItemLine(it model.Item) string {
	box := mutedStyle.Render(boxUnchecked)
	name := it.Name
	if it.IsCompleted {
		box = successStyle.Render(boxChecked)
		name = doneStyle.Render(name)
	}
	line := fmt.Sprintf("%s %s  %s", box, name, mutedStyle.Render(it.ID))
	if it.Memo != "" {
		line += "\n    " + mutedStyle.Render(firstLine(it.Memo))
	}
	if it.ImageURL != "" {
		line += "\n    " + accentStyle.Render("[image]")
	}
	return line
}

// ItemsView рисует панели TO DO и DONE со сводкой сверху.
func ItemsView(tenantID string, items []model.Item) string {
	todo, done := Split(items)

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		titleStyle.Render("Todos ("+tenantID+")"),
		pendingStyle.Render("•"), len(todo),
		successStyle.Render("✔"), len(done),
		accentStyle.Render("Total"), len(items),
	)

	return strings.Join([]string{
		header,
		panel("TO DO", todo, "Nothing to do"),
		panel("DONE", done, "Nothing done yet"),
	}, "\n") + "\n"
}

func panel(title string, items []model.Item, empty string) string {
	lines := []string{titleStyle.Render(title)}
	if len(items) == 0 {
		lines = append(lines, mutedStyle.Render(empty))
	}
	for _, it := range items {
		lines = append(lines, ItemLine(it))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// ItemDetail рисует подробную карточку записи.
func ItemDetail(it model.Item) string {
	status := pendingStyle.Render("to do")
	if it.IsCompleted {
		status = successStyle.Render("done")
	}
	updated := "-"
	if it.UpdatedAt != nil {
		updated = it.UpdatedAt.Local().Format(time.DateTime)
	}
	image := "-"
	if it.ImageURL != "" {
		image = shorten(it.ImageURL, 60)
	}
	memo := it.Memo
	if memo == "" {
		memo = "-"
	}

	lines := []string{
		titleStyle.Render(it.Name),
		fmt.Sprintf("id:       %s", it.ID),
		fmt.Sprintf("status:   %s", status),
		fmt.Sprintf("memo:     %s", memo),
		fmt.Sprintf("image:    %s", image),
		fmt.Sprintf("created:  %s", it.CreatedAt.Local().Format(time.DateTime)),
		fmt.Sprintf("updated:  %s", updated),
	}
	return panelStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
