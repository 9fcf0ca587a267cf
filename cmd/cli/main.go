package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/icaro/cmd/cli/play"
	"github.com/myrjola/icaro/cmd/cli/portrait"
	"github.com/myrjola/icaro/internal/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "icaro-cli",
		Short:         "Operação Ícaro",
		Long:          `Command line utilities for the Operação Ícaro detective card table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddGroup(play.Group, portrait.Group)
	rootCmd.AddCommand(play.NewCatalogCmd(), play.NewPlayCmd(), portrait.NewPortraitCmd())
	return rootCmd
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
