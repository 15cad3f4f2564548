package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/assetstore/assetstore"
	"github.com/arthur-debert/assetstore/formats"
	"github.com/arthur-debert/assetstore/internal/telemetry"
	"github.com/arthur-debert/assetstore/types"
)

// CLI is the assetctl command tree with its own viper instance
type CLI struct {
	rootCmd   *cobra.Command
	viperInst *viper.Viper
}

// NewCLI creates the command tree
func NewCLI() *CLI {
	cli := &CLI{viperInst: viper.New()}

	cli.setupViperConfig()
	cli.createRootCommand()
	cli.addCommands()

	return cli
}

// Execute runs the root command
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// setupViperConfig configures defaults, environment variables and config
// file discovery. The file itself is read in PersistentPreRunE, once the
// --config flag is known.
func (cli *CLI) setupViperConfig() {
	v := cli.viperInst

	defaults := types.DefaultConfig()
	v.SetDefault("default_categories", defaults.DefaultCategories)
	v.SetDefault("seed_categories", defaults.SeedCategories)
	v.SetDefault("history_capacity", defaults.HistoryCapacity)
	v.SetDefault("default_value", defaults.DefaultValue)
	v.SetDefault("id_policy", string(defaults.IDPolicy))
	v.SetDefault("time_format", defaults.TimeFormat)

	v.SetConfigName("assetctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.assetctl")
	v.AddConfigPath("/etc/assetctl")

	// Replace dash with underscore in env vars (e.g., --log-level -> ASSETCTL_LOG_LEVEL)
	v.SetEnvPrefix("ASSETCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// readConfigFile loads --config (or ASSETCTL_CONFIG) when given, otherwise
// the first assetctl.yaml found on the search path. Only an explicit file
// is required to exist.
func (cli *CLI) readConfigFile() error {
	v := cli.viperInst
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return NewConfigError("read config file", err, CommonSuggestions.CheckConfig)
		}
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return NewConfigError("read config file", err, CommonSuggestions.CheckConfig)
		}
	}
	return nil
}

func (cli *CLI) createRootCommand() {
	cli.rootCmd = &cobra.Command{
		Use:   "assetctl",
		Short: "assetctl - drive an in-memory asset store",
		Long: `assetctl builds an in-memory asset store and applies operations to it:
categories, assets and their valuations, connections between assets,
sub-asset trees, the tender queue and the recently-accessed history.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (ASSETCTL_*)
3. Configuration files (--config or default locations)
4. Built-in defaults

Configuration File Discovery:
  ./assetctl.yaml
  ~/.assetctl/assetctl.yaml
  /etc/assetctl/assetctl.yaml

Examples:
  # Run the built-in walkthrough
  assetctl demo

  # Apply a script and print the resulting store as markdown
  assetctl run portfolio.yaml --format markdown

  # Show the effective configuration
  ASSETCTL_HISTORY_CAPACITY=5 assetctl config`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.readConfigFile()
		},
	}

	cli.addGlobalFlags()
}

// addGlobalFlags adds persistent flags that apply to all commands
func (cli *CLI) addGlobalFlags() {
	flags := cli.rootCmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path")
	flags.StringP("format", "f", "text", "Report format ("+strings.Join(formats.List(), "|")+")")
	flags.String("log-level", "warn", "Log level (debug|info|warn|error)")
	flags.Bool("metrics", false, "Print operation counters after the report")
	flags.Bool("strict", false, "Stop at the first declined step")

	for _, flag := range []string{"config", "format", "log-level", "metrics", "strict"} {
		_ = cli.viperInst.BindPFlag(flag, flags.Lookup(flag))
	}
}

func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run <script.yaml>",
			Short: "Apply a YAML script of store operations",
			Long: `Apply a YAML script to a fresh store and print the final report.

The script is a list of steps, each naming an operation and its fields:

  steps:
    - {op: add_asset, name: Villa A, category: Rumah}
    - {op: set_value, asset: R0001, value: 250000, maintenance: 5000, tax: 1200}
    - {op: add_sub_asset, asset: R0001, name: Kamar 1}

Supported operations: ` + strings.Join(operationNames(), ", "),
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return &CLIError{
						Operation:  "read script",
						Cause:      err.Error(),
						Underlying: err,
					}
				}
				script, err := parseScript(data)
				if err != nil {
					return WrapError("parse script", err)
				}
				cfg, err := cli.loadConfig()
				if err != nil {
					return err
				}
				return cli.runSteps(cmd, cfg, script.Steps)
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Run the built-in walkthrough",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := cli.loadConfig()
				if err != nil {
					return err
				}
				// The walkthrough creates the categories it needs
				cfg.SeedCategories = false
				return cli.runSteps(cmd, cfg, demoSteps())
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := cli.loadConfig()
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to encode configuration: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
	)
}

// loadConfig resolves the store configuration from defaults, file and env
func (cli *CLI) loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := cli.viperInst.Unmarshal(&cfg); err != nil {
		return cfg, NewConfigError("load configuration", err, CommonSuggestions.CheckConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, NewConfigError("load configuration", err, CommonSuggestions.CheckConfig)
	}
	return cfg, nil
}

// runSteps builds a store session, applies steps and prints the report
func (cli *CLI) runSteps(cmd *cobra.Command, cfg types.Config, steps []Step) error {
	v := cli.viperInst
	format, err := formats.Get(v.GetString("format"))
	if err != nil {
		return NewValidationError("render report", "format", v.GetString("format"),
			"Available formats: "+strings.Join(formats.List(), ", "))
	}

	logger := newRunLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	recorder := telemetry.NewPrometheusRecorder()
	store, err := assetstore.New(
		assetstore.WithConfig(cfg),
		assetstore.WithLogger(logger),
		assetstore.WithRecorder(recorder),
	)
	if err != nil {
		return NewConfigError("create store", err, CommonSuggestions.CheckConfig)
	}
	logger.Info("run started", "steps", len(steps), "id_policy", cfg.IDPolicy)

	r := &runner{store: store, logger: logger, strict: v.GetBool("strict")}
	results, runErr := r.run(steps)

	out := cmd.OutOrStdout()
	if err := writeResults(out, results); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	report, err := format.Render(store.Snapshot())
	if err != nil {
		return WrapError("render report", err)
	}
	if _, err := out.Write(report); err != nil {
		return err
	}

	if v.GetBool("metrics") {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if err := recorder.Dump(out); err != nil {
			return WrapError("dump metrics", err)
		}
	}
	logger.Info("run finished", "declined", countDeclined(results))
	return nil
}

func writeResults(w io.Writer, results []StepResult) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res); err != nil {
			return err
		}
	}
	if len(results) > 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}

func countDeclined(results []StepResult) int {
	n := 0
	for _, res := range results {
		if !res.Applied {
			n++
		}
	}
	return n
}
