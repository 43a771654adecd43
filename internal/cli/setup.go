// Package cli provides the orchestration layer for admonition-check. It wires
// configuration, output, the Hugo wrapper and the check suite together and
// sequences a run: clean the previous build, build the site, validate it.
package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/checks"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/config"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/system"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/ui"
)

// Context holds all dependencies needed for a test run
type Context struct {
	Config *config.Config
	UI     *ui.UI
	Hugo   *system.Hugo
	FS     *system.FileSystem
	Suite  *checks.Suite
	Logger *zap.Logger
	// AssumeYes skips the confirmation before removing the previous build
	AssumeYes bool
}

// Options adjusts how a Context is built
type Options struct {
	ConfigPath     string
	NonInteractive bool
	AssumeYes      bool
	Debug          bool
	// Override is applied to the loaded config before it is validated
	Override func(*config.Config)
}

// NewContextWithOptions loads configuration and initializes every dependency
func NewContextWithOptions(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Override != nil {
		opts.Override(cfg)
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	uiInstance := ui.New()
	if opts.NonInteractive {
		uiInstance.SetNonInteractive(true)
	}

	return &Context{
		Config:    cfg,
		UI:        uiInstance,
		Hugo:      system.NewHugo(system.NewCommandRunner(), cfg.HugoBinary),
		FS:        system.NewFileSystem(),
		Suite:     checks.NewSuite(),
		Logger:    logger,
		AssumeYes: opts.AssumeYes,
	}, nil
}

// newLogger returns a development logger on stderr when debugging, otherwise
// a no-op logger so trace output never mixes with the report
func newLogger(level string, debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
