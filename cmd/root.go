package cmd

import (
	"fmt"
	"os"

	"devserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "devserve",
	Short: "Serve the current directory over HTTP",
	Long: `devserve serves the files under the current directory on http://localhost:8000,
with directory listings and a JavaScript MIME override, and opens the page in your browser.
It runs until interrupted.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format keeps CLI failures readable; debug selects zap's development config
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	registerFlags(RootCmd)
}

func registerFlags(c *cobra.Command) {
	c.PersistentFlags().StringP("port", "p", "", "port to listen on (overrides SERVER_PORT, default 8000)")
	c.PersistentFlags().String("root", "", "directory or bucket prefix to serve (overrides SERVER_ROOT)")
	c.PersistentFlags().Bool("no-browser", false, "do not open a browser tab")
}
