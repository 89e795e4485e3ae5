// Package main is the entry point for the mylib-demo application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/thirukguru/mylib-demo/model"
	"github.com/thirukguru/mylib-demo/mylib"
	"github.com/thirukguru/mylib-demo/service/config"
	"github.com/thirukguru/mylib-demo/service/flag"
	"github.com/thirukguru/mylib-demo/service/orchestrator"
	"github.com/thirukguru/mylib-demo/service/output"
	"github.com/thirukguru/mylib-demo/service/storage"
	"github.com/thirukguru/mylib-demo/shared/banner"
	"github.com/thirukguru/mylib-demo/shared/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		log.ErrorMsg("%v", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "calc", "db", "history":
			return runSubcommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	for _, w := range ignoredFlagWarnings(flags) {
		log.WarnMsg("%s", w)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	outputService := output.NewService(flags.Output, flags.OutputFile)

	if flags.Version {
		_, err := orchestrator.NewService(nil, outputService, nil, versionInfo).Orchestrate(context.Background(), flags)
		return err
	}

	cfg, err := config.NewService().Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(&cfg, flags)

	if flags.Output != "json" && !flags.NoBanner {
		banner.DrawBannerTitle("mylib " + mylib.Version())
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	orchestratorService := orchestrator.NewService(registeredDemos(cfg), outputService, storageService, versionInfo)
	_, err = orchestratorService.Orchestrate(ctx, flags)
	return err
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *model.Config, flags model.Flags) {
	if wd := strings.TrimSpace(flags.WorkDir); wd != "" {
		cfg.WorkDir = wd
	}
	if flags.VisionPipeline {
		cfg.Vision.FullPipeline = true
	}
}

// ignoredFlagWarnings lists flags that have no effect with the others given.
func ignoredFlagWarnings(flags model.Flags) []string {
	var out []string
	if flags.OutputFile != "" && flags.Output != "html" {
		out = append(out, "--output-file is ignored unless --output html")
	}
	if flags.DBPath != "" && !flags.Store {
		out = append(out, "--db-path is ignored without --store")
	}
	return out
}

// registeredDemos returns the demos in run order. Each group is provided by
// a build-tagged features file.
func registeredDemos(cfg model.Config) []orchestrator.Demo {
	var demos []orchestrator.Demo
	demos = append(demos, imagingDemos(cfg)...)
	demos = append(demos, fsutilDemos(cfg)...)
	demos = append(demos, visionDemos(cfg)...)
	return demos
}
