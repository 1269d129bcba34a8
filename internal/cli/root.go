// Package cli implements the compliscan command line: one-shot scans, the web
// UI server and version output.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/raysh454/compliscan/internal/config"
	"github.com/raysh454/compliscan/internal/logging"
)

// Version is the application version, set at build time:
// go build -ldflags "-X github.com/raysh454/compliscan/internal/cli.Version=1.0.0"
var Version = "dev"

// rootState is shared by the subcommands of one invocation.
type rootState struct {
	cfgFile string
	cfg     *config.Config
	logger  *logging.ZapLogger
}

// reportedError wraps an error the user has already been shown, so Execute
// doesn't print it twice.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	st := &rootState{}

	root := &cobra.Command{
		Use:           "compliscan",
		Short:         "Compliance scanner client: submit a site and read its compliance report.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}
	root.SetVersionTemplate(`{{printf "compliscan version %s\n" .Version}}`)
	root.PersistentFlags().StringVarP(&st.cfgFile, "config", "c", "", "config file (default is ./compliscan.yaml)")

	root.AddCommand(newScanCmd(st), newServeCmd(st), newVersionCmd())
	return root
}

// init loads configuration and builds the logger, which writes to logOut.
func (st *rootState) init(logOut io.Writer) error {
	cfg, err := config.Load(st.cfgFile)
	if err != nil {
		return err
	}
	st.cfg = cfg
	st.logger = logging.NewZapLoggerTo(cfg.Logger, zapcore.AddSync(logOut))
	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
