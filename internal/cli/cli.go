package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/screenruler/pkg/buildinfo"
	"github.com/matzehuels/screenruler/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "screenruler"

	// Default viewport for headless rendering: a small laptop screen.
	defaultWidth  = 1280
	defaultHeight = 800

	// Upper bounds for display flags. Labels are laid out for the whole
	// viewport, so an unbounded size would exhaust memory before any sink
	// runs. The viewport limit matches the largest PNG side.
	maxViewportSide = 16384
	maxPixelRatio   = 8
	maxRasterScale  = 16
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer // console log destination
	verbose    bool
	configPath string
	logFile    string

	config   fileConfig
	closeLog func() error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Screenruler draws a ruler calibrated to your screen",
		Long: `Screenruler renders centimeter and inch rulers at true physical size,
given the pixel density of the display. The density and unit are stored in a
URL fragment such as "#ppi=110&unit=inch" so a calibration can be shared.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.Close()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/screenruler/config.toml)")
	flags.StringVar(&c.logFile, "log-file", "", "also write logs to this file, rotated at 10MB")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fragmentCommand())
	root.AddCommand(c.calibrateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup runs before every command: it applies the global flags, loads the
// config file and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	level := LogInfo
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	if c.logFile != "" {
		if err := errors.ValidateOutputPath(c.logFile); err != nil {
			return err
		}
		c.closeLog = teeToFile(c.Logger, c.out, c.logFile)
	}

	cfg, path, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if path != "" {
		c.Logger.Debugf("Loaded config %s", path)
	}
	c.config = cfg

	installHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.closeLog == nil {
		return nil
	}
	err := c.closeLog()
	c.closeLog = nil
	c.Logger.SetOutput(c.out)
	return err
}
