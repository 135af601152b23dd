package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devserve/core/config"
	"devserve/core/loader"
	"devserve/core/logger"
	"devserve/core/middleware/mimetype"
	"devserve/core/middleware/rayid"
	"devserve/core/middleware/requestlog"
	"devserve/core/server"
	"devserve/core/storage"
	"devserve/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the file server (same as running without a command)",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, &cfg.Server)
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	overrides, err := mimetype.Parse(cfg.Server.MimeTypes)
	if err != nil {
		return err
	}

	// 3. Resolve the served root
	var store storage.Client
	if cfg.Server.Source == server.SourceBucket {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return err
		}
		logg = logg.With(zap.String("bucket", cfg.Storage.Bucket))
	}
	root, err := static.NewFileSystem(cmd.Context(), cfg.Server, store, cfg.Storage)
	if err != nil {
		return err
	}

	// 4. Initialize Fiber App
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))

	mgr := loader.NewManager(logg)
	mgr.Register(static.NewFeature(root, cfg.Server.Index, overrides, logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	// 5. Serve until interrupted
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, app, logg).Run(ctx)
}

// applyFlags lets explicit command-line flags win over environment and .env values.
func applyFlags(cmd *cobra.Command, cfg *server.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if noBrowser, _ := flags.GetBool("no-browser"); noBrowser {
		cfg.OpenBrowser = false
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
