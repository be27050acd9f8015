package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ednevnik/lib/configutil"
	"ednevnik/lib/osutil"
	"ednevnik/lib/restyutil"
	"ednevnik/lib/telemetry"
	"ednevnik/pkg/ednevnik"

	"github.com/spf13/cobra"
)

const defaultConfigName = "ednevnik.json5"

type Config struct {
	Email          string           `json:"email"`
	Password       string           `json:"password"`
	BaseUrl        string           `json:"base_url"`
	TimeoutSeconds int              `json:"timeout_seconds"`
	BrowserTLS     bool             `json:"browser_tls"`
	Telemetry      telemetry.Config `json:"telemetry"`
}

var (
	configPath string
	verbose    bool
	dumpHttp   string
	jsonOutput bool
)

// filled in by setup
var (
	tel               telemetry.API
	shutdownTelemetry func(context.Context) error
	config            Config
)

var rootCmd = &cobra.Command{
	Use:   "ednevnik-cli",
	Short: "ednevnik-cli reads grades, exams and absences from e-Dnevnik (ocjene.skole.hr).",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shutdownTelemetry == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := shutdownTelemetry(ctx)
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", fmt.Sprintf("Path to the config file, defaults to the closest %s up from the cwd.", defaultConfigName))
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every request.")
	flags.StringVar(&dumpHttp, "dump-http", "", "Write every http exchange to this directory.")
	flags.BoolVar(&jsonOutput, "json", false, "Print results as json instead of tables.")
}

func readConfig() (Config, error) {
	if configPath != "" {
		return configutil.ReadConfig[Config](configPath)
	}
	cfg, err := configutil.ReadRecursively[Config](defaultConfigName)
	if os.IsNotExist(err) {
		return cfg, fmt.Errorf("no %s found in the cwd or any parent directory, pass --config", defaultConfigName)
	}
	return cfg, err
}

// setup reads the config and installs telemetry, it is deferred until a command
// actually talks to the portal so help and completion work without a config.
func setup(ctx context.Context) {
	var err error
	config, err = readConfig()
	if err != nil {
		osutil.Fatal("failed to read config", err)
	}

	otelTel, err := telemetry.Setup(ctx, "ednevnik-cli", config.Telemetry)
	if err != nil {
		osutil.Fatal("failed to setup telemetry", err)
	}
	shutdownTelemetry = otelTel.Shutdown

	otelApi, err := telemetry.NewOtelAPI("ednevnik-cli")
	if err != nil {
		osutil.Fatal("failed to create otel telemetry api", err)
	}
	tel = telemetry.MultiAPI{telemetry.SlogAPI{}, otelApi}
}

// login creates a client from the config and logs in, every subcommand
// starts with it.
func login(ctx context.Context) *ednevnik.Client {
	setup(ctx)

	opts := ednevnik.ClientOptions{
		Email:      config.Email,
		Password:   config.Password,
		BaseUrl:    config.BaseUrl,
		Timeout:    time.Duration(config.TimeoutSeconds) * time.Second,
		BrowserTLS: config.BrowserTLS,
		Telemetry:  tel,
	}
	if dumpHttp != "" {
		output, err := restyutil.NewFilesystemOutput(dumpHttp)
		if err != nil {
			osutil.Fatal("failed to create http dump directory", err)
		}
		opts.HttpOutput = output
	}

	client, err := ednevnik.NewClient(opts)
	if err != nil {
		osutil.Fatal("failed to create client", err)
	}
	err = client.Login(ctx)
	if err != nil {
		osutil.Fatal("failed to login", err)
	}
	return client
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
