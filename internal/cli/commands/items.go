package commands

import (
	"context"
	"fmt"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все записи (TO DO / DONE)"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	list, err := s.Items.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(Out, ui.ItemsView(s.TenantID, list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
