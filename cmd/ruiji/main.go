// Package main is the ruiji CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hyperjump/ruiji/internal/analyzer"
	"github.com/hyperjump/ruiji/internal/cli"
	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/report"
	"github.com/hyperjump/ruiji/internal/server"
	"github.com/hyperjump/ruiji/internal/watcher"
	"github.com/hyperjump/ruiji/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/ruiji/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used.
// A missing default config yields built-in defaults.
// Returns the config and the path that was actually loaded ("" for defaults).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	var err error
	switch command {
	case "analyze":
		err = runAnalyze(os.Args[2:], os.Stdout, os.Stderr)
	case "server":
		err = runServer(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:], os.Stdout)
	case "version", "--version", "-v":
		fmt.Printf("ruiji version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// argsReorder moves flags that follow positional arguments to the front, so
// "ruiji analyze docs/ -format json" parses the same as "ruiji analyze -format json docs/".
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// components holds what every command needs after config is loaded.
type components struct {
	Config   *config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Analyzer *analyzer.Analyzer
}

func initializeComponents(configPath string, debug bool) (*components, error) {
	cfg, resolved, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	debugMode := cfg.Debug || debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("config loaded", zap.String("config_path", resolved), zap.Bool("debug", debugMode))

	reg := prometheus.NewRegistry()
	a, err := analyzer.New(cfg, logger, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize analyzer: %w", err)
	}
	return &components{Config: cfg, Logger: logger, Registry: reg, Analyzer: a}, nil
}

func runAnalyze(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	format := fs.String("format", "text", "output format: text, table or json")
	sortOrder := fs.String("sort", "", "sort order: similarity or name (default from config)")
	export := fs.String("export", "", "write the JSON report to this file or directory")
	serverURL := fs.String("server", "", "analyze on a running ruiji server instead of locally")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: ruiji analyze [flags] <file|dir>...\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argsReorder(args)); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no files or directories given")
	}
	outFormat, err := cli.ParseOutputFormat(*format)
	if err != nil {
		return err
	}

	c, err := initializeComponents(*configPath, *debug)
	if err != nil {
		return err
	}
	defer c.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rep *report.Report
	if *serverURL != "" {
		docs, loadErrs := c.Analyzer.Loader().Load(ctx, fs.Args())
		printLoadErrors(stderr, loadErrs)
		rep, err = analyzeViaHTTP(*serverURL, &models.AnalyzeRequest{Documents: docs, Sort: *sortOrder})
	} else {
		var loadErrs []error
		rep, loadErrs, err = c.Analyzer.AnalyzePaths(ctx, fs.Args(), *sortOrder)
		printLoadErrors(stderr, loadErrs)
	}
	if err != nil {
		return err
	}

	if err := cli.WriteReport(stdout, rep, outFormat); err != nil {
		return fmt.Errorf("output failed: %w", err)
	}
	if *export != "" {
		path, err := rep.Export(*export)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Report written to %s\n", path)
	}
	return nil
}

func printLoadErrors(w io.Writer, errs []error) {
	for _, err := range errs {
		fmt.Fprintf(w, "Skipped: %v\n", err)
	}
}

func analyzeViaHTTP(serverURL string, req *models.AnalyzeRequest) (*report.Report, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(strings.TrimRight(serverURL, "/")+"/api/v1/analyze", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var rep report.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &rep, nil
}

func runServer(args []string) error {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args)

	c, err := initializeComponents(*configPath, *debug)
	if err != nil {
		return err
	}
	defer c.Logger.Sync()

	srv := server.NewServer(c.Analyzer, &c.Config.Server, c.Registry, c.Logger)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigChan:
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	c.Logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}

func runWatch(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	format := fs.String("format", "text", "output format: text, table or json")
	sortOrder := fs.String("sort", "", "sort order: similarity or name (default from config)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(argsReorder(args))

	outFormat, err := cli.ParseOutputFormat(*format)
	if err != nil {
		return err
	}
	c, err := initializeComponents(*configPath, *debug)
	if err != nil {
		return err
	}
	defer c.Logger.Sync()

	dirs := fs.Args()
	if len(dirs) == 0 {
		dirs = c.Config.Watch.Directories
	}
	if len(dirs) == 0 {
		return errors.New("usage: ruiji watch [flags] <dir>... (or set watch.directories in config)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	analyze := func() {
		mu.Lock()
		defer mu.Unlock()
		rep, loadErrs, err := c.Analyzer.AnalyzePaths(ctx, dirs, *sortOrder)
		for _, le := range loadErrs {
			c.Logger.Warn("document skipped", zap.Error(le))
		}
		if err != nil {
			c.Logger.Warn("analysis failed", zap.Error(err))
			return
		}
		if err := cli.WriteReport(stdout, rep, outFormat); err != nil {
			c.Logger.Warn("output failed", zap.Error(err))
		}
	}

	w := watcher.NewWatcher(dirs, c.Config.Documents.Extensions, c.Config.Watch.RecursiveOrDefault(),
		func(changed []string) {
			c.Logger.Info("documents changed, re-analyzing", zap.Int("files", len(changed)))
			analyze()
		},
		watcher.WithLogger(c.Logger),
	)
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	analyze()
	<-ctx.Done()
	return nil
}

func printUsage() {
	fmt.Println(`ruiji - Document similarity and plagiarism analysis

Usage:
  ruiji analyze [flags] <file|dir>...  Compare every pair of documents
  ruiji server [flags]                 Start the HTTP server
  ruiji watch [flags] [dir]...         Re-analyze directories whenever they change
  ruiji version                        Show version
  ruiji help                           Show this help

Analyze Flags:
  --config string    Config file path (default: /usr/local/etc/ruiji/config.yaml)
  --format string    Output format: text, table or json (default: text)
  --sort string      Sort order: similarity or name (default from config)
  --export string    Write the JSON report to a file, or to a directory as plagiarism-report-<ms>.json
  --server string    Send documents to a running ruiji server instead of analyzing locally
  --debug            Enable debug logging

Server Flags:
  --config string    Config file path
  --debug            Enable debug logging

Watch Flags:
  --config string    Config file path (watch.directories is used when no dir is given)
  --format string    Output format: text, table or json
  --sort string      Sort order: similarity or name
  --debug            Enable debug logging

Examples:
  ruiji analyze essays/
  ruiji analyze --format table --sort name a.docx b.pdf c.txt
  ruiji analyze essays/ --export reports/
  ruiji server
  ruiji watch submissions/`)
}
