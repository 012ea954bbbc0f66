package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/weathersynth/cmd/export"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// copyCmd places the tab-separated series on the system clipboard.
var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Generate a series and copy it to the clipboard as tab-separated text",
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
		if err := export.NewService().CopyToClipboard(series); err != nil {
			logger.Error("clipboard write failed", "series_id", series.ID, "err", err)
			return fmt.Errorf("failed to copy: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), export.CopiedMessage)
		return nil
	},
}
