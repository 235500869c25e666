package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	mailsniper "github.com/mailsniper/client-go"
	"github.com/mailsniper/client-go/internal/cliconfig"
)

const usageText = `usage: mailsniper [flags] <command> [args]

commands:
  verify [-concurrency N] [email...]   verify addresses (one per line on stdin if none given)
  usage                                show account usage

flags:`

// Config holds the I/O streams of the command.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// mailSniperClient is the subset of *mailsniper.Client used by the commands.
type mailSniperClient interface {
	VerifyEmail(ctx context.Context, email string) (*mailsniper.EmailVerificationResult, error)
	GetUsage(ctx context.Context) (*mailsniper.UsageInfo, error)
}

func run(args []string, cfg *Config) error {
	if len(args) == 0 {
		args = []string{"mailsniper"}
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "mailsniper.yaml", "path to the YAML config file")
	envFile := fs.String("env-file", ".env", "path to a dotenv file")
	baseURL := fs.String("base-url", "", "API base URL")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	timeout := fs.Duration("timeout", 0, "per-request timeout")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("no command given")
	}
	command := rest[0]
	if command != "verify" && command != "usage" {
		return fmt.Errorf("unknown command: %s", command)
	}

	settings, err := cliconfig.Load(*configPath, *envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base-url":
			settings.BaseURL = *baseURL
		case "log-level":
			settings.LogLevel = *logLevel
		case "timeout":
			settings.Timeout = *timeout
		}
	})

	logger, err := newLogger(cfg.Stderr, settings.LogLevel)
	if err != nil {
		return err
	}

	var emails []string
	if command == "verify" {
		vfs := flag.NewFlagSet("verify", flag.ContinueOnError)
		vfs.SetOutput(cfg.Stderr)
		concurrency := vfs.Int("concurrency", settings.Concurrency, "maximum requests in flight")
		if err := vfs.Parse(rest[1:]); err != nil {
			return err
		}
		settings.Concurrency = *concurrency
		emails = vfs.Args()
		if len(emails) == 0 {
			emails, err = readEmails(cfg.Stdin)
			if err != nil {
				return err
			}
		}
		if len(emails) == 0 {
			return errors.New("usage: mailsniper verify [-concurrency N] <email>...")
		}
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	client, err := mailsniper.New(
		settings.APIKey,
		&http.Client{Timeout: settings.Timeout},
		mailsniper.WithBaseURL(settings.BaseURL),
		mailsniper.WithLogger(slog.New(logger)),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if command == "verify" {
		return runVerify(ctx, client, logger, emails, settings.Concurrency, cfg)
	}
	return runUsage(ctx, client, logger, cfg)
}

// newLogger returns a charm logger writing to w. It doubles as the
// slog.Handler handed to the SDK.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "mailsniper",
	}), nil
}

// readEmails reads one address per line, skipping blank lines.
func readEmails(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var emails []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			emails = append(emails, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return emails, nil
}

// runVerify verifies emails with at most concurrency requests in flight and
// prints one JSON object per line in input order. The first failure stops
// scheduling of the remaining addresses; results already obtained are
// still printed. Cancellation of ctx before every address is verified is
// reported as an error.
func runVerify(ctx context.Context, client mailSniperClient, logger *log.Logger, emails []string, concurrency int, cfg *Config) error {
	results := make([]*mailsniper.EmailVerificationResult, len(emails))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, email := range emails {
		if gctx.Err() != nil {
			break
		}
		i, email := i, email
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			result, err := client.VerifyEmail(gctx, email)
			if err != nil {
				logError(logger, "verification failed", err, "email", email)
				return fmt.Errorf("verify %s: %w", email, err)
			}
			results[i] = result
			return nil
		})
	}

	waitErr := g.Wait()
	if waitErr == nil && ctx.Err() != nil && slices.Contains(results, nil) {
		waitErr = fmt.Errorf("verification interrupted: %w", ctx.Err())
	}

	enc := json.NewEncoder(cfg.Stdout)
	for _, result := range results {
		if result == nil {
			continue
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if result.Quota != nil && result.Quota.IsApproachingLimit() {
			logger.Warn("quota is approaching its limit",
				"used", result.Quota.Used,
				"total", result.Quota.Total)
		}
	}

	return waitErr
}

// runUsage prints the account usage as JSON.
func runUsage(ctx context.Context, client mailSniperClient, logger *log.Logger, cfg *Config) error {
	usage, err := client.GetUsage(ctx)
	if err != nil {
		logError(logger, "usage request failed", err)
		return fmt.Errorf("get usage: %w", err)
	}

	if err := json.NewEncoder(cfg.Stdout).Encode(usage); err != nil {
		return fmt.Errorf("encode usage: %w", err)
	}

	if usage.IsApproachingLimit {
		logger.Warn("usage is approaching the quota limit",
			"percentage_used", usage.PercentageUsed,
			"remaining", usage.Remaining)
	}
	return nil
}

func logError(logger *log.Logger, msg string, err error, keyvals ...any) {
	var apiErr *mailsniper.APIError
	if errors.As(err, &apiErr) {
		keyvals = append(keyvals,
			"kind", apiErr.Kind.String(),
			"status", apiErr.StatusCode,
			"code", apiErr.ErrorCode)
	}
	keyvals = append(keyvals, "error", err)
	logger.Error(msg, keyvals...)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
