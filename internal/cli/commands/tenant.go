package commands

import (
	"context"
	"fmt"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type tenantCmd struct{}

func (tenantCmd) Name() string { return "tenant" }
func (tenantCmd) Description() string {
	return "Показать tenant id; new — выдать новый"
}
func (tenantCmd) Usage() string { return "tenant [new]" }

func (tenantCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 || len(args) == 1 && args[0] != "new" {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		fmt.Fprintln(Out, s.TenantID)
		return nil
	}
	id, err := s.Tenants.Rotate()
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, ui.OK("New tenant: "+id))
	return nil
}

func init() { RegisterCmd(tenantCmd{}) }
