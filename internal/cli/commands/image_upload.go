package commands

import (
	"context"
	"fmt"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
)

type imageUploadCmd struct{}

func (imageUploadCmd) Name() string { return "image-upload" }
func (imageUploadCmd) Description() string {
	return "Загрузить картинку (до 5MB) и прикрепить к записи"
}
func (imageUploadCmd) Usage() string { return "image-upload <id> <path>" }

func (imageUploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	it, err := s.Items.AttachImage(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, ui.OK("Image attached to "+it.Name))
	return nil
}

func init() { RegisterCmd(imageUploadCmd{}) }
