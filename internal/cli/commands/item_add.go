package commands

import (
	"context"
	"fmt"
	"strings"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить запись"
}
func (itemAddCmd) Usage() string { return "item-add <name...>" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	it, err := s.Items.Add(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, ui.OK("Created"))
	fmt.Fprintf(Out, "  id:   %s\n", it.ID)
	fmt.Fprintf(Out, "  name: %s\n", it.Name)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
