package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/weathersynth/cmd/export"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

var (
	exportOut    string
	exportTSV    bool
	exportStdout bool
)

// exportCmd writes the series without starting the interactive view.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate a series and write it as CSV",
	Long: `Generates a series with the configured window and writes it to a file
(default oberursel_weather_30days.csv) or to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := LoadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), settings.LogLevel)

		series, err := weather.NewService().Generate(settings.Params)
		if err != nil {
			return err
		}
		d := weather.Comma
		if exportTSV {
			d = weather.Tab
		}
		if exportStdout {
			if err := weather.WriteDelimited(cmd.OutOrStdout(), series, d); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout())
			return err
		}

		path := exportOut
		if path == "" {
			path = settings.ExportFile
		}
		n, err := export.NewService().SaveFile(path, series, d)
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		logger.Info("export written", "path", path, "bytes", n, "series_id", series.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d days (%s) to %s\n", series.Len(), series.Period(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default from export.file)")
	exportCmd.Flags().BoolVar(&exportTSV, "tsv", false, "tab-separated instead of comma-separated")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "write to stdout instead of a file")
}
