package commands

import (
	"context"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/tui"
	"TodoList/internal/config"
)

type tuiCmd struct{}

func (tuiCmd) Name() string { return "tui" }
func (tuiCmd) Description() string {
	return "Интерактивный список (a/e/space/d, q — выход)"
}
func (tuiCmd) Usage() string { return "tui" }

func (tuiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	return tui.Run(ctx, s.Items, s.TenantID)
}

func init() { RegisterCmd(tuiCmd{}) }
