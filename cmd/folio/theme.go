package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyaoi/folio/internal/app"
	"github.com/kyaoi/folio/internal/page"
)

// NewThemeCmd creates the theme command and its subcommands.
func NewThemeCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved theme",
		Long: `Show the theme folio starts with.

The theme is read from the configured preference store. When nothing has
been saved yet, folio starts dark.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPage(cmd, load, func(p *page.Page) error {
				fmt.Fprintln(cmd.OutOrStdout(), p.Theme())
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPage(cmd, load, func(p *page.Page) error {
				theme, err := p.ToggleTheme()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark>",
		Short: "Save a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := page.ParseTheme(args[0])
			if err != nil {
				return err
			}
			return withPage(cmd, load, func(p *page.Page) error {
				if err := p.SetTheme(theme); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	})

	return cmd
}

// withPage opens the environment, runs fn against a page reading the saved
// preferences and releases the environment.
func withPage(cmd *cobra.Command, load configLoader, fn func(*page.Page) error) (err error) {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	env, err := app.OpenEnv(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := env.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(page.New(env.Store, page.WithLogger(env.Log.WithComponent("page"))))
}
