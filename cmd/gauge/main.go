package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/gaugeview/internal/paths"
	"github.com/garrettladley/gaugeview/internal/version"
)

func main() {
	loadEnv()

	rootCmd := &cobra.Command{
		Use:     "gauge",
		Short:   "Lay out and render a circular tick gauge",
		Version: version.Get(),
	}

	flags := bindGaugeFlags(rootCmd)
	rootCmd.AddCommand(
		renderCmd(flags),
		ticksCmd(flags),
		previewCmd(flags),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

// loadEnv loads ./.env, then the per-user file. godotenv never overrides variables
// already set, so the working directory wins over the user file.
func loadEnv() {
	_ = godotenv.Load()
	if p, err := paths.EnvFile(); err == nil {
		_ = godotenv.Load(p)
	}
}
