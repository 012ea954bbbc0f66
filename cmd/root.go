/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sumwatshade/weathersynth/cmd/export"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Synthesize 30 days of plausible weather data for Oberursel",
	Long: `Generates a fake but plausible daily weather series (temperature, humidity,
vapor pressure deficit, PAR, solar radiation, pressure, wind), shows it with
summary statistics, and exports it as CSV or tab-separated clipboard text.

The numbers are fabricated from a seasonal model; nothing is fetched.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := LoadSettings(viper.GetViper())
		if err != nil {
			return err
		}
		logFile, err := openLogFile(settings.LogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logger := newLogger(logFile, settings.LogLevel)

		p := tea.NewProgram(initialModel(settings, weather.NewService(), export.NewService(), logger), tea.WithAltScreen())

		_, err = p.Run()

		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/."+appName+".yaml)")
	rootCmd.PersistentFlags().String("start", "", "first day of the series (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Int("days", 0, "number of days to generate")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for reproducible output (0 = random)")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "log file used by the interactive view")

	for key, flag := range map[string]string{
		"series.start": "start",
		"series.days":  "days",
		"series.seed":  "seed",
		"log.level":    "log-level",
		"log.file":     "log-file",
	} {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)))
	}

	rootCmd.AddCommand(exportCmd, copyCmd, serveCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	setDefaults(viper.GetViper(), home)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".weathersynth" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName("." + appName)
	}

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
