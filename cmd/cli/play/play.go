package play

import (
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/game"
	"github.com/myrjola/icaro/internal/logging"
	"github.com/myrjola/icaro/internal/random"
	"github.com/myrjola/icaro/internal/tui"
	"github.com/spf13/cobra"
)

// NewPlayCmd opens a table in the terminal.
func NewPlayCmd() *cobra.Command {
	var (
		seed    uint64
		logPath string
	)
	cmd := &cobra.Command{
		Use:     "play",
		GroupID: "play",
		Short:   "Play in the terminal",
		Long: `Opens a same-screen table in the terminal. Pass --seed to replay a deal.

The terminal is taken over by the table so logs are discarded unless --log names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var logSink io.Writer = io.Discard
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:mnd // rw owner
				if err != nil {
					return errors.Wrap(err, "open log file", slog.String("path", logPath))
				}
				defer func() {
					_ = f.Close()
				}()
				logSink = f
			}
			logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
				AddSource:   false,
				Level:       slog.LevelDebug,
				ReplaceAttr: nil,
			})))

			var rng game.RNG = random.Crypto{}
			if seed != 0 {
				rng = random.NewSeeded(seed)
			}
			ctx := logging.WithAttrs(cmd.Context(), slog.Uint64("seed", seed))
			return tui.Run(ctx, game.NewTable(logger, rng))
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "deal reproducibly from this seed, 0 shuffles randomly")
	cmd.Flags().StringVar(&logPath, "log", "", "append logs to this file")
	return cmd
}
