package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"recetas-cli/internal/config"
	"recetas-cli/internal/format"
	"recetas-cli/internal/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type App struct {
	PlatformLevel int
	Permission    string
	MediaDir      string
	NoThumbnails  bool
	DebugLog      string
	PrettyJSON    bool
}

func NewRootCmd() *cobra.Command {
	// Best-effort: a .env in the working directory supplies RECETAS_* defaults.
	// Must run before flag defaults are read from the environment.
	_ = godotenv.Load()

	app := &App{}

	cmd := &cobra.Command{
		Use:          "recetas",
		Short:        "Recipe list screen (terminal)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the screen
  recetas

  # Pretend to be an older platform and skip thumbnails
  recetas --platform-level 30 --no-thumbnails

  # Show the effective configuration
  recetas config --pretty
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().IntVar(&app.PlatformLevel, "platform-level", 0, "Platform level used to pick the media permission (0: current; env RECETAS_PLATFORM_LEVEL)")
	cmd.PersistentFlags().StringVar(&app.Permission, "permission", "", "How the media permission is answered: probe|grant|deny (env RECETAS_PERMISSION)")
	cmd.PersistentFlags().StringVar(&app.MediaDir, "media-dir", "", "Directory probed for media read access (env RECETAS_MEDIA_DIR)")
	cmd.PersistentFlags().BoolVar(&app.NoThumbnails, "no-thumbnails", false, "Do not load image thumbnails")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr("RECETAS_TUI_DEBUG_LOG", ""), "Append debug records to this file")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// loadConfig resolves config.json + environment, then applies flags that were
// set explicitly.
func loadConfig(cmd *cobra.Command, app *App) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("platform-level") {
		cfg.PlatformLevel = app.PlatformLevel
	}
	if flags.Changed("permission") {
		cfg.Permission = strings.ToLower(strings.TrimSpace(app.Permission))
	}
	if flags.Changed("media-dir") {
		cfg.MediaDir = app.MediaDir
	}
	if app.NoThumbnails {
		off := false
		cfg.Thumbnails.Enabled = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := loadConfig(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	logger, closeLog, err := tui.OpenDebugLog(app.DebugLog)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = closeLog() }()

	return tui.Run(screenOptions(cfg, logger))
}

func screenOptions(cfg *config.Config, logger *log.Logger) tui.Options {
	opts := tui.Options{
		PermissionID: cfg.PermissionID(),
		Requester:    cfg.Requester(),
		ThumbWidth:   cfg.Thumbnails.Width,
		ThumbHeight:  cfg.Thumbnails.Height,
		Logger:       logger,
	}
	if cfg.Thumbnails.IsEnabled() {
		opts.Loader = cfg.Loader()
	}
	return opts
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	if err == nil {
		err = errors.New("unknown error")
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
