package commands

import (
	"context"
	"fmt"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string { return "item-get" }
func (itemGetCmd) Description() string {
	return "Показать запись по id"
}
func (itemGetCmd) Usage() string { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	it, err := s.Items.Get(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(Out, ui.ItemDetail(*it))
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
