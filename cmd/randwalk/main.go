package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/randwalk/internal/config"
	"github.com/san-kum/randwalk/internal/registry"
	"github.com/san-kum/randwalk/internal/sketch"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	source     string
	registryAt string
	redisAddr  string
	redisKey   string

	cfg    *config.Config
	logger *zap.Logger
)

// tuiAnnotation marks commands that take over the terminal; their logs go
// to a file under the data directory.
const tuiAnnotation = "tui"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "randwalk [name]",
		Short:             "seeded random walk sketches",
		Args:              cobra.MaximumNArgs(1),
		Annotations:       map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				logger.Sync() // nolint: errcheck
			}
		},
		RunE:          runPlay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info)")
	pf.StringVar(&source, "source", "", "registry source: file, http or redis")
	pf.StringVar(&registryAt, "registry", "", "registry file path or URL")
	pf.StringVar(&redisAddr, "redis-addr", "", "redis address for the registry")
	pf.StringVar(&redisKey, "redis-key", "", "redis key holding the registry document")

	rootCmd.AddCommand(
		playCommand(),
		pickCommand(),
		renderCommand(),
		recordCommand(),
		exportCommand(),
		statsCommand(),
		surveyCommand(),
		seedsCommand(),
		runsCommand(),
		configCommand(),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err = buildLogger(cfg.LogLevel, cfg.DataDir, isTUI(cmd))
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.String("source", cfg.Registry.Source),
		zap.String("data", cfg.DataDir),
		zap.String("theme", cfg.Sketch.Theme))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || c.DataDir == "" {
		c.DataDir = dataDir
	}
	if flags.Changed("log-level") || c.LogLevel == "" {
		c.LogLevel = logLevel
	}
	if flags.Changed("registry") {
		if strings.HasPrefix(registryAt, "http://") || strings.HasPrefix(registryAt, "https://") {
			c.Registry.Source = config.SourceHTTP
			c.Registry.URL = registryAt
		} else {
			c.Registry.Source = config.SourceFile
			c.Registry.Path = registryAt
		}
	}
	if flags.Changed("redis-addr") {
		c.Registry.Source = config.SourceRedis
		c.Registry.RedisAddr = redisAddr
	}
	if flags.Changed("redis-key") {
		c.Registry.RedisKey = redisKey
	}
	if flags.Changed("source") {
		c.Registry.Source = source
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func isTUI(cmd *cobra.Command) bool {
	return cmd.Annotations[tuiAnnotation] == "true"
}

func buildLogger(level, dir string, toFile bool) (*zap.Logger, error) {
	var zc zap.Config
	switch level {
	case "debug":
		zc = zap.NewDevelopmentConfig()
	default:
		zc = zap.NewProductionConfig()
	}

	if toFile {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, "randwalk.log")
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}
	return zc.Build()
}

func newLoader() (*sketch.Loader, error) {
	fetcher, err := registry.NewFetcher(cfg.Registry)
	if err != nil {
		return nil, err
	}
	return sketch.NewLoader(fetcher, logger), nil
}

// loadWalk resolves and generates a walk, returning the load error as is.
func loadWalk(cmd *cobra.Command, name string) (sketch.Outcome, error) {
	loader, err := newLoader()
	if err != nil {
		return sketch.Outcome{}, err
	}
	out := loader.Load(cmd.Context(), name)
	if out.Err != nil {
		return out, fmt.Errorf("%s: %w", sketch.FailureMessage(out.Err), out.Err)
	}
	return out, nil
}

// fetchDocument fetches and parses the configured registry.
func fetchDocument(cmd *cobra.Command) (*registry.Document, error) {
	fetcher, err := registry.NewFetcher(cfg.Registry)
	if err != nil {
		return nil, err
	}
	data, err := fetcher.Fetch(cmd.Context())
	if err != nil {
		return nil, err
	}
	return registry.Parse(data)
}
