package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/libmw/vite/internal/configs"
	logger "github.com/libmw/vite/internal/logging"
	"github.com/libmw/vite/internal/server"
	"github.com/libmw/vite/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	serveHost        string
	servePort        int
	serveStrictPort  bool
	serveHTTPS       bool
	serveCert        string
	serveKey         string
	serveBase        string
	serveLogLevel    string
	serveClearScreen bool
	serveConfigPath  string
)

func init() {
	f := ServeCmd.Flags()
	f.StringVar(&serveHost, "host", "", "hostname to bind; bare --host listens on all interfaces")
	f.Lookup("host").NoOptDefVal = "true"
	f.IntVarP(&servePort, "port", "p", 0, "port to bind (default 5173)")
	f.BoolVar(&serveStrictPort, "strict-port", false, "fail instead of trying the next free port")
	f.BoolVar(&serveHTTPS, "https", false, "serve over TLS")
	f.StringVar(&serveCert, "cert", "", "TLS certificate file")
	f.StringVar(&serveKey, "key", "", "TLS key file")
	f.StringVar(&serveBase, "base", "", "public base path")
	f.StringVarP(&serveLogLevel, "log-level", "l", "", "log level: silent, error, warn, info")
	f.BoolVar(&serveClearScreen, "clear-screen", true, "allow clearing the screen when collapsing repeated log lines")
	f.StringVarP(&serveConfigPath, "config", "c", "", "config file (default vite.toml)")
}

// resetServeState restores flag defaults. Used by tests.
func resetServeState() {
	ServeCmd.Flags().VisitAll(func(fl *pflag.Flag) {
		_ = fl.Value.Set(fl.DefValue)
		fl.Changed = false
	})
}

// ServeCmd starts the static-file dev server.
var ServeCmd = &cobra.Command{
	Use:   "serve [root]",
	Short: "Start the dev server",
	Long: `Starts a static-file dev server and reports the Local and Network
URLs it is reachable on.

The serve root defaults to the working directory. An optional vite.toml
in the working directory supplies defaults; every flag overrides its
config file counterpart.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath := serveConfigPath
	if configPath == "" {
		configPath = configs.DefaultConfigFile
	}
	config, err := configs.Load(configPath)
	if err != nil {
		return err
	}

	opts, level, clearScreen, err := resolveServeOptions(config, cmd, args)
	if err != nil {
		return err
	}

	log := logger.New(level, logger.Options{
		NoClearScreen: !clearScreen,
	})

	spinner, cleanup := startSpinner("Starting dev server...")
	srv, err := server.Listen(opts)
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to start dev server: " + err.Error()
		cleanup()
		return err
	}
	spinner.FinalMSG = ui.Success.Sprint("✓") + " Dev server ready"
	cleanup()

	if level >= logger.LevelInfo {
		printBanner()
	}
	srv.PrintURLs(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Serve(ctx)
}

// resolveServeOptions merges flags over config file values. Flags win
// whenever they were set on the command line.
func resolveServeOptions(config *configs.Config, cmd *cobra.Command, args []string) (server.Options, logger.LogLevel, bool, error) {
	opts := server.Options{
		Port:       config.Server.Port,
		StrictPort: config.Server.StrictPort,
		HTTPS:      config.Server.HTTPS,
		CertFile:   config.Server.CertFile,
		KeyFile:    config.Server.KeyFile,
		Root:       config.Server.Root,
		Base:       config.Server.Base,
	}
	if config.Server.Host != "" {
		host := config.Server.Host
		opts.Host = &host
	}

	f := cmd.Flags()
	if f.Changed("host") {
		host := serveHost
		// Bare --host parses as "true"; it means listen on all interfaces.
		if host == "true" {
			host = ""
		}
		opts.Host = &host
	}
	if f.Changed("port") {
		opts.Port = servePort
	}
	if f.Changed("strict-port") {
		opts.StrictPort = serveStrictPort
	}
	if f.Changed("https") {
		opts.HTTPS = serveHTTPS
	}
	if f.Changed("cert") {
		opts.CertFile = serveCert
	}
	if f.Changed("key") {
		opts.KeyFile = serveKey
	}
	if f.Changed("base") {
		opts.Base = serveBase
	}
	if len(args) > 0 {
		opts.Root = args[0]
	}

	clearScreen := config.ClearScreenEnabled()
	if f.Changed("clear-screen") {
		clearScreen = serveClearScreen
	}

	levelName := config.Logging.Level
	if serveLogLevel != "" {
		levelName = serveLogLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return server.Options{}, level, false, err
	}

	return opts, level, clearScreen, nil
}

func printBanner() {
	banner := figure.NewColorFigure("vite", "", "cyan", true)
	banner.Print()
}
