// Package main - точка входа интерактивного CLI школьного реестра.
//
// Архитектура следует принципам Clean Architecture:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация операций реестра
// - Infrastructure: снимки на диске, импорт/экспорт Excel
// - Interface: интерактивное меню
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/school-hub/school-manager/config"
	"github.com/school-hub/school-manager/internal/application"
	"github.com/school-hub/school-manager/internal/infrastructure/persistence/jsonfile"
	"github.com/school-hub/school-manager/internal/interface/cli"
	"github.com/school-hub/school-manager/internal/seed"
	"github.com/school-hub/school-manager/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		dataFile = flag.String("data", "", "snapshot file path (overrides SCHOOL_DATA_FILE)")
		seedFile = flag.String("seed", "", "YAML seed file applied when the registry is empty")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *dataFile != "" {
		cfg.Storage.DataFile = *dataFile
	}

	level := logger.ParseLevel(cfg.Observability.LogLevel)
	if cfg.App.Debug {
		level = logger.LevelDebug
	}
	log := logger.New(os.Stderr, level).With(
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
	)

	repo := jsonfile.NewSnapshotRepository(cfg.Storage.DataFile)

	mgr, err := application.New(ctx, repo, log)
	if err != nil {
		return err
	}
	log.Info("registry ready", logger.Path(repo.Path()))

	if *seedFile != "" && mgr.IsEmpty() {
		sf, err := seed.Load(*seedFile)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		mgr.ApplySeed(sf)
	}

	menu := cli.New(mgr, os.Stdin, os.Stdout, log)
	return menu.Run(ctx)
}
