package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"TodoList/internal/cli/bootstrap"
	"TodoList/internal/cli/commands"
	"TodoList/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("TodoList CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return 0
	}

	logger := newLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()
	bootstrap.Logger = logger.Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}

// newLogger: по умолчанию клиент молчит до Warn, TODO_DEBUG включает debug
func newLogger(debug bool) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
