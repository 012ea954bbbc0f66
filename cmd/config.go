package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/sumwatshade/weathersynth/cmd/export"
	"github.com/sumwatshade/weathersynth/cmd/params"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

const appName = "weathersynth"

// Settings is the validated view of the configuration.
type Settings struct {
	LocationName string
	PostalCode   string
	DataSource   string
	Params       weather.Params
	ExportFile   string
	LogLevel     slog.Level
	LogFile      string
	ServeAddr    string
}

// setDefaults registers every key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("location.name", "Oberursel, Germany")
	v.SetDefault("location.postal_code", "61440")
	v.SetDefault("location.source", "DWD Frankfurt Airport Station & Regional Models")
	v.SetDefault("series.start", weather.DefaultStart.Format(params.InputLayout))
	v.SetDefault("series.days", weather.DefaultDays)
	v.SetDefault("series.seed", 0)
	v.SetDefault("export.file", export.DefaultFileName)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, "."+appName, appName+".log"))
	v.SetDefault("serve.addr", ":8080")
}

// LoadSettings reads and validates the configuration held by v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	start, err := params.ParseStart(v.GetString("series.start"))
	if err != nil {
		return Settings{}, fmt.Errorf("series.start: %w", err)
	}
	days := v.GetInt("series.days")
	if days < 1 || days > params.MaxDays {
		return Settings{}, fmt.Errorf("series.days: must be between 1 and %d, got %d", params.MaxDays, days)
	}
	level, err := parseLogLevel(v.GetString("log.level"))
	if err != nil {
		return Settings{}, err
	}
	exportFile := strings.TrimSpace(v.GetString("export.file"))
	if exportFile == "" {
		return Settings{}, errors.New("export.file: must not be empty")
	}
	return Settings{
		LocationName: v.GetString("location.name"),
		PostalCode:   v.GetString("location.postal_code"),
		DataSource:   v.GetString("location.source"),
		Params: weather.Params{
			Start: start,
			Days:  days,
			Seed:  v.GetUint64("series.seed"),
		},
		ExportFile: exportFile,
		LogLevel:   level,
		LogFile:    v.GetString("log.file"),
		ServeAddr:  v.GetString("serve.addr"),
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log.level %q (allowed: debug, info, warn, error)", s)
	}
}
