package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"TodoList/internal/cli/api"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

// коды выхода
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch запускает команду и возвращает код выхода процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if !flag.Parsed() {
		flag.Parse()
	}
	if wantsHelp(globalArgs(os.Args[1:], args)) {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	if strings.EqualFold(args[0], "help") {
		return help(args[1:])
	}

	c, ok := Get(args[0])
	if !ok {
		return unknown(args[0])
	}

	if len(args) > 1 && wantsHelp(args[1:2]) {
		fmt.Fprint(Out, FormatCommandUsage(c))
		return exitOK
	}

	err := c.Run(ctx, cfg, args[1:])
	if err == nil {
		return exitOK
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(Out, FormatCommandUsage(c))
		return exitUsage
	}
	fmt.Fprintln(Out, ui.Fail(fmt.Sprintf("%s error: %s", c.Name(), describe(err))))
	return exitError
}

// help обрабатывает `todo help [command]`
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(args[0])
	if !ok {
		return unknown(args[0])
	}
	fmt.Fprint(Out, FormatCommandUsage(c))
	return exitOK
}

func unknown(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return exitUsage
}

// globalArgs отрезает от argv команду и её аргументы: значения флагов команды
// вроде `-memo -h` справкой не считаются
func globalArgs(argv, cmdArgs []string) []string {
	n := len(argv) - len(cmdArgs)
	if n < 0 || n > len(argv) {
		return nil
	}
	return argv[:n]
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// describe отдаёт пользователю текст ошибки сервера без служебного префикса
func describe(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return fmt.Sprintf("%s (HTTP %d)", se.Message, se.Code)
	}
	return err.Error()
}
