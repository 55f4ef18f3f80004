package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uzpay-labs/fraudscope/internal/api"
	"github.com/uzpay-labs/fraudscope/internal/cli"
	"github.com/uzpay-labs/fraudscope/internal/model"
)

func dataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Print the backend's transaction dataset",
		RunE:  runData,
	}
}

func runData(cmd *cobra.Command, _ []string) error {
	client := api.New(viper.GetString("backend.url"), stderrNotifier{})

	raw := client.FetchTable(cmd.Context())
	if raw == nil {
		return fmt.Errorf("no response from backend at %s", client.BaseURL())
	}

	table, err := model.ParseTable(raw)
	if err != nil {
		return fmt.Errorf("backend responded without tabular data: %w", err)
	}

	if len(table.Columns) == 0 {
		fmt.Println(cli.FormatWarning("No columns available in CSV."))
		return nil
	}

	widths := make([]int, len(table.Columns))
	for i, col := range table.Columns {
		widths[i] = len(col)
		for _, row := range table.Rows {
			if l := len(model.FormatCell(row[col])); l > widths[i] {
				widths[i] = l
			}
		}
	}

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = cli.TableHeaderStyle.Render(pad(col, widths[i]))
	}
	fmt.Println(strings.Join(header, "  "))

	for _, row := range table.Rows {
		cells := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			cells[i] = cli.TableCellStyle.UnsetPaddingRight().Render(pad(model.FormatCell(row[col]), widths[i]))
		}
		fmt.Println(strings.Join(cells, "  "))
	}

	fmt.Println()
	fmt.Println(cli.FormatSuccess(table.Summary()))
	return nil
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
