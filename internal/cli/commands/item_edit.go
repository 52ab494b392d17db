package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/ui"
	"TodoList/internal/config"
	"TodoList/internal/model"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Изменить имя, заметку или картинку записи"
}
func (itemEditCmd) Usage() string {
	return "item-edit [-name N] [-memo M] [-image-url U] <id>"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	// Парсим флагами: разрешаем только префиксные флаги перед позиционными аргументами
	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "новое имя")
	memo := fs.String("memo", "", "заметка")
	imageURL := fs.String("image-url", "", "URL картинки или data URI")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return ErrUsage
	}

	// отправляем только явно переданные флаги, пустое значение тоже допустимо
	var upd model.ItemUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			upd.Name = name
		case "memo":
			upd.Memo = memo
		case "image-url":
			upd.ImageURL = imageURL
		}
	})
	if upd.IsEmpty() {
		return ErrUsage
	}

	s, err := bootstrap.OpenSession(cfg)
	if err != nil {
		return err
	}
	it, err := s.Items.Edit(ctx, rest[0], upd)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, ui.OK("Updated"))
	fmt.Fprint(Out, ui.ItemDetail(*it))
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
