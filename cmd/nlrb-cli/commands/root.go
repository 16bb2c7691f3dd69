package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"nlrbdata/cmd/nlrb-cli/globals"
	"nlrbdata/lib/configutil"
	"nlrbdata/lib/restyutil"
	"nlrbdata/lib/scrapers/nlrb"
	"nlrbdata/lib/serviceutil"
	"nlrbdata/lib/telemetry"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl          string `json:"base_url"`
	DelayMs          int    `json:"delay_ms"`
	TimeoutMs        int    `json:"timeout_ms"`
	UserAgent        string `json:"user_agent"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

var (
	configPath      string
	baseUrl         string
	delay           time.Duration
	verbose         bool
	dumpDir         string
	enableTelemetry bool
)

var tel *telemetry.Telemetry

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "nlrb.json5", "The json5 config file, <name>.local.json5 overrides it.")
	flags.StringVar(&baseUrl, "base-url", "", "The NLRB website to scrape.")
	flags.DurationVar(&delay, "delay", 0, "The pause after every request (default 1s).")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	flags.StringVar(&dumpDir, "dump", "", "Write raw requests and responses into this directory (needs --verbose).")
	flags.BoolVar(&enableTelemetry, "telemetry", false, "Export traces and metrics as configured in telemetry.json5.")
}

var rootCmd = &cobra.Command{
	Use:           "nlrb-cli",
	Short:         "nlrb-cli scrapes case listings and case records from the NLRB website.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		ctx := cmd.Context()

		if enableTelemetry {
			t, err := telemetry.SetupFromEnv(ctx, "nlrb-cli")
			if err != nil {
				return fmt.Errorf("setup telemetry: %w", err)
			}
			tel = &t
			telemetry.InstrumentPerfStats(ctx, time.Second*30)
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		cmd.SetContext(globals.Set(ctx, &globals.Value{Client: client}))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdownTelemetry()
	},
}

func readConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config](configPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", configPath)
		return Config{}, nil
	}
	return cfg, err
}

func newClient() (*nlrb.Client, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	opts := nlrb.ClientOptions{
		BaseUrl:          cfg.BaseUrl,
		Delay:            time.Duration(cfg.DelayMs) * time.Millisecond,
		Timeout:          time.Duration(cfg.TimeoutMs) * time.Millisecond,
		UserAgent:        cfg.UserAgent,
		CloudflareBypass: cfg.CloudflareBypass,
	}
	if baseUrl != "" {
		opts.BaseUrl = baseUrl
	}
	if delay > 0 {
		opts.Delay = delay
	}
	if dumpDir != "" && !verbose {
		slog.Warn("--dump has no effect without --verbose", "dir", dumpDir)
	}
	if dumpDir != "" && verbose {
		out, err := restyutil.NewFilesystemOutput(dumpDir)
		if err != nil {
			return nil, fmt.Errorf("dump directory: %w", err)
		}
		slog.Debug("dumping requests", "dir", out.Dir())
		opts.Dump = out
	}

	return nlrb.NewClient(opts)
}

// shutdownTelemetry flushes and stops telemetry, it is safe to call more than once.
func shutdownTelemetry() {
	if tel == nil {
		return
	}
	err := tel.Shutdown(context.Background())
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
	tel = nil
}

// run executes the root command. cobra skips PersistentPostRun when a
// command fails, so telemetry is also flushed here.
func run(ctx context.Context) error {
	defer shutdownTelemetry()
	return rootCmd.ExecuteContext(ctx)
}

func ExecuteContext(ctx context.Context) {
	if err := run(ctx); err != nil {
		serviceutil.Fatal("nlrb-cli failed", err)
	}
}
