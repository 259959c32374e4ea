package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/wptools/themeclone/internal/setup"
	"github.com/wptools/themeclone/internal/version"
)

var (
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	green = color.New(color.FgHiGreen).SprintFunc()
	cyan  = color.New(color.FgHiCyan, color.Bold).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:     "themeclone",
	Short:   "Bootstrap a local WordPress themes directory",
	Version: version.Detailed(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fmt.Println(cyan(version.AppName + " " + version.Short()))

		if err := setup.New().Run(cmd.Context()); err != nil {
			// handled failures are reported, never re-raised
			reportFailure(err)
			return nil
		}

		fmt.Println(green("All done!"))
		return nil
	},
}

func main() {
	stdoutHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(stdoutHandler))

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func reportFailure(err error) {
	switch {
	case setup.IsMissingTool(err):
		fmt.Println(red("Missing required tool:"), err)
	case setup.IsCommandFailure(err):
		fmt.Println(red("Command failed:"), err)
	default:
		fmt.Println(red("Unexpected error:"), err)
	}
}
