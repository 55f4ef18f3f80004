package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uzpay-labs/fraudscope/internal/tui"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

func consoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Launch the interactive console",
		Long: `Open the full-screen console: fraud detection form, banking chatbot,
and dataset browser, backed by the configured demo backend.`,
		RunE: runConsole,
	}

	cmd.Flags().String("theme", "default", "color theme (default, light)")
	_ = viper.BindPFlag("console.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runConsole(cmd *cobra.Command, _ []string) error {
	return tui.Run(
		cmd.Context(),
		viper.GetString("backend.url"),
		tui.WithTheme(themes.GetTheme(viper.GetString("console.theme"))),
	)
}
