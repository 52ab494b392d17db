package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"TodoList/internal/config"
)

// ErrUsage возвращается командой при неверных аргументах; диспетчер печатает usage.
var ErrUsage = errors.New("usage")

// Command описывает подкоманду CLI.
type Command interface {
	// Name возвращает имя, которое вводит пользователь, например "items".
	Name() string
	Description() string
	// Usage — строка использования, например "item-get <id>".
	Usage() string
	// Run получает аргументы без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI, в тестах подменяется.
var Out io.Writer = os.Stdout

// RegisterCmd вызывается из init() каждой команды.
func RegisterCmd(cmd Command) {
	registry[strings.ToLower(cmd.Name())] = cmd
}

func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List возвращает команды по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("TodoList CLI\n\n")
	b.WriteString("Usage:\n  todo [-base-url <host:port>] [-https] [-tenant-file <path>] <command> [args]\n\n")
	b.WriteString("Commands:\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 3, ' ', 0)
	for _, c := range List() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Usage(), c.Description())
	}
	_ = tw.Flush()

	b.WriteString("\nEnvironment:\n")
	b.WriteString("  BASE_URL, ENABLE_HTTPS, TENANT_FILE, IMAGE_MAX_MB; TODO_DEBUG\n")
	return b.String()
}

// FormatCommandUsage собирает справку по одной команде.
func FormatCommandUsage(c Command) string {
	s := "Usage: " + c.Usage() + "\n"
	if d := c.Description(); d != "" {
		s += "  " + d + "\n"
	}
	return s
}
