package commands

import (
	"context"
	"fmt"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Удалить запись" }
func (itemRmCmd) Usage() string       { return "item-rm <id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	if err := s.Items.Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, ui.OK("Deleted "+args[0]))
	return nil
}

func init() { RegisterCmd(itemRmCmd{}) }
