package commands

import (
	"context"
	"fmt"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type itemDoneCmd struct{}

func (itemDoneCmd) Name() string { return "item-done" }
func (itemDoneCmd) Description() string {
	return "Переключить отметку выполнения"
}
func (itemDoneCmd) Usage() string { return "item-done <id>" }

func (itemDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	it, err := s.Items.Toggle(ctx, args[0])
	if err != nil {
		return err
	}
	if it.IsCompleted {
		fmt.Fprintln(Out, ui.OK("Done: "+it.Name))
	} else {
		fmt.Fprintln(Out, ui.OK("Reopened: "+it.Name))
	}
	return nil
}

func init() { RegisterCmd(itemDoneCmd{}) }
