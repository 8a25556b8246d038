package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kyaoi/folio/internal/app"
	"github.com/kyaoi/folio/internal/config"
)

// configLoader resolves the configuration for the command being run.
type configLoader func(cmd *cobra.Command) (*config.Config, error)

// NewRootCmd creates the root command for folio.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var opts app.Options

	load := func(cmd *cobra.Command) (*config.Config, error) {
		return loadConfig(cmd, v)
	}

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Browse a developer portfolio in the terminal",
		Long: `folio shows a developer portfolio as one scrolling page: an introduction,
education, projects, skills and contact details.

Content comes from a directory holding portfolio.md and an optional
projects/ folder, or from the built-in portfolio when --content is not
set. Edits to the content files are picked up while folio is running.

The light/dark theme is saved between runs.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return app.Run(cfg, opts)
		},
	}

	// Global flags that apply to all commands
	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/folio/config.yaml)")
	flags.String("content", "", "content directory or portfolio file (default: built-in portfolio)")
	flags.String("prefs", "", "preference backend: file, sqlite or memory")
	flags.String("log-level", "", "write debug logs at this level: debug, info, warn, error")
	_ = v.BindPFlag("content", flags.Lookup("content"))
	_ = v.BindPFlag("preferences.backend", flags.Lookup("prefs"))

	cmd.Flags().StringVarP(&opts.Section, "section", "s", "", "section to open: home, education, projects, skills, contact")
	cmd.Flags().StringVar(&opts.Tech, "tech", "", "only show projects using this technology")

	// Add subcommands
	cmd.AddCommand(NewThemeCmd(load))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// loadConfig reads the config file, the FOLIO_* environment and the flags
// into a validated Config.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	config.SetDefaults(v)

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
	}

	v.SetEnvPrefix("FOLIO")
	// e.g. FOLIO_TUI_NAV_BREAKPOINT for tui.nav_breakpoint
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		v.Set("logging.enabled", true)
		v.Set("logging.level", level)
	}

	return config.Load(v)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
