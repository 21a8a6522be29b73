package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/leaddesk/internal/config"
	"github.com/csheth/leaddesk/internal/logging"
	"github.com/csheth/leaddesk/internal/seed"
	"github.com/csheth/leaddesk/internal/tui"
)

const envFile = ".env"

type flags struct {
	seed          string
	logFile       string
	debug         bool
	noAltScreen   bool
	desktopNotify bool
	toastDuration time.Duration
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "leaddesk",
		Short: "Terminal forms for call requests and SEO articles",
		Long: `leaddesk shows two lead-capture forms in the terminal: an automated
call request with a chat sidebar, and an SEO article generator with a
history sidebar. Submissions are validated and confirmed locally; nothing
is sent anywhere.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPage(cmd, f, tui.PageCall)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.seed, "seed", "", "path to a YAML fixture with page copy, chat and history")
	pf.StringVar(&f.logFile, "log-file", "", "write structured logs to this file")
	pf.BoolVar(&f.debug, "debug", false, "log at debug level")
	pf.BoolVar(&f.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	pf.BoolVar(&f.desktopNotify, "desktop-notify", false, "mirror notifications to the desktop")
	pf.DurationVar(&f.toastDuration, "toast-duration", config.DefaultToastDuration, "how long notifications stay on screen")

	root.AddCommand(
		&cobra.Command{
			Use:   "call",
			Short: "Open the automated call request page",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPage(cmd, f, tui.PageCall)
			},
		},
		&cobra.Command{
			Use:     "article",
			Aliases: []string{"seo"},
			Short:   "Open the SEO article generator page",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runPage(cmd, f, tui.PageArticle)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Print the active fixture as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := resolveConfig(cmd, f)
				if err != nil {
					return err
				}
				fixture, err := seed.Load(cfg.SeedPath)
				if err != nil {
					return err
				}
				out, err := seed.Marshal(fixture)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
	)
	return root
}

// resolveConfig layers explicitly set flags over the environment.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.SeedPath = f.seed
	}
	if changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	if changed("no-alt-screen") {
		cfg.NoAltScreen = f.noAltScreen
	}
	if changed("desktop-notify") {
		cfg.DesktopNotify = f.desktopNotify
	}
	if changed("toast-duration") {
		cfg.ToastDuration = f.toastDuration
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPage(cmd *cobra.Command, f flags, page tui.PageKind) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fixture, err := seed.Load(cfg.SeedPath)
	if err != nil {
		logger.Error("seed fixture", zap.Error(err))
		return err
	}

	opts := []tea.ProgramOption{}
	if !cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Page:          page,
			Fixture:       fixture,
			Logger:        logger,
			ToastDuration: cfg.ToastDuration,
			DesktopNotify: cfg.DesktopNotify,
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
