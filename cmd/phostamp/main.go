package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"phostamp/internal/app"
	"phostamp/internal/config"
	"phostamp/internal/domain"
	appErrors "phostamp/internal/errors"
	"phostamp/internal/infra/fs"
	"phostamp/internal/infra/settime"
	"phostamp/internal/logging"
	"phostamp/internal/presentation"
	"phostamp/internal/tui"
)

func main() {
	var opts config.Options

	rootCmd := &cobra.Command{
		Use:   "phostamp [folder]",
		Short: "Rewrite image timestamps to match filename order",
		Long: "phostamp assigns evenly spaced modification (and on macOS, creation)\n" +
			"timestamps to the image files in a folder so that chronological order\n" +
			"matches filename order.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				opts.Folder = args[0]
			}
			opts.IncrementSet = cmd.Flags().Changed("increment")
			run(opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.Folder, "folder", "", "Folder with images to update (or set PHOSTAMP_FOLDER)")
	rootCmd.Flags().StringVar(&opts.StartDate, "start-date", "", "Start date as YYYY-MM-DD HH:MM:SS, empty for now (or set PHOSTAMP_START_DATE)")
	rootCmd.Flags().IntVarP(&opts.IncrementMinutes, "increment", "m", 0, "Minutes between consecutive files, default 60 (or set PHOSTAMP_INCREMENT_MINUTES)")
	rootCmd.Flags().StringVar(&opts.Extensions, "ext", "", "Comma-separated extension filter replacing the default set (or set PHOSTAMP_EXTENSIONS)")
	rootCmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "d", false, "Show the planned timestamps without changing anything")
	rootCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Interactive terminal UI")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts config.Options) {
	ctx := context.Background()

	cfg, err := config.Resolve(opts)
	if err != nil {
		exitWithError(appErrors.Wrap(appErrors.InvalidConfig, "config", "", err))
	}

	logger := logging.New(os.Stderr, cfg.Verbose)
	filesystem := fs.OSFS{}

	info, err := filesystem.Stat(cfg.Folder)
	if err != nil {
		exitWithError(appErrors.Wrap(appErrors.NotFound, "stat", cfg.Folder, err))
	}
	if !info.IsDir() {
		exitWithError(appErrors.Wrap(appErrors.InvalidConfig, "stat", cfg.Folder, errors.New(cfg.Folder+" is not a directory")))
	}

	setter := settime.ExecSetter{}
	if !cfg.DryRun {
		if err := setter.Check(); err != nil {
			exitWithError(appErrors.Wrap(appErrors.SetFailure, "check", "", err))
		}
		if !setter.CreationSupported() {
			logger.Warnf("creation times are not supported on this platform; only modification times will be set")
		}
	}

	planner := app.Planner{FS: filesystem, Logger: logger}

	if cfg.Interactive {
		runInteractive(ctx, cfg, planner, setter)
		return
	}

	plan, err := planner.Plan(ctx, cfg.Folder, cfg.Extensions, cfg.Start, cfg.Increment())
	if err != nil {
		exitWithError(appErrors.Wrap(appErrors.Internal, "plan", cfg.Folder, err))
	}

	printer := presentation.Printer{Writer: os.Stdout}

	if len(plan.Items) == 0 {
		printer.PrintEmpty()
		return
	}

	if cfg.DryRun {
		printer.PrintDryRun(plan)
		return
	}

	printer.PrintHeader(plan)

	executor := app.Executor{
		Setter:     setter,
		OnProgress: printer.PrintProgress,
	}
	if err := executor.Apply(ctx, plan); err != nil {
		printer.PrintError(appErrors.UserMessage(err))
		os.Exit(1)
	}

	printer.PrintDone(plan)
}

func runInteractive(ctx context.Context, cfg config.Config, planner app.Planner, setter app.TimestampSetter) {
	var program *tea.Program

	apply := func(plan domain.Plan) tea.Cmd {
		return func() tea.Msg {
			executor := app.Executor{
				Setter: setter,
				OnProgress: func(done, total int, entry domain.FileEntry, at time.Time) {
					program.Send(tui.ApplyProgressMsg{
						Current: done,
						Total:   total,
						File:    entry.Name,
						At:      at,
					})
				},
			}
			if err := executor.Apply(ctx, plan); err != nil {
				return tui.ErrorMsg{Err: err}
			}
			return tui.ApplyDoneMsg{}
		}
	}

	model := tui.NewModel(tui.Config{
		Folder: cfg.Folder,
		DryRun: cfg.DryRun,
		Apply:  apply,
	})

	program = tea.NewProgram(model)

	go func() {
		plan, err := planner.Plan(ctx, cfg.Folder, cfg.Extensions, cfg.Start, cfg.Increment())
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.PlanReadyMsg{Plan: plan})
	}()

	final, err := program.Run()
	if err != nil {
		exitWithError(appErrors.Wrap(appErrors.Internal, "tui", "", err))
	}
	if m, ok := final.(tui.Model); ok && m.Phase == tui.PhaseError {
		os.Exit(1)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
