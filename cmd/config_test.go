package cmd

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumwatshade/weathersynth/cmd/export"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	setDefaults(v, t.TempDir())
	return v
}

func TestLoadSettingsDefaults(t *testing.T) {
	home := t.TempDir()
	v := viper.New()
	setDefaults(v, home)

	s, err := LoadSettings(v)
	require.NoError(t, err)

	assert.Equal(t, "Oberursel, Germany", s.LocationName)
	assert.Equal(t, "61440", s.PostalCode)
	assert.Equal(t, weather.DefaultParams(), s.Params)
	assert.Equal(t, export.DefaultFileName, s.ExportFile)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, filepath.Join(home, ".weathersynth", "weathersynth.log"), s.LogFile)
	assert.Equal(t, ":8080", s.ServeAddr)
}

func TestLoadSettingsOverrides(t *testing.T) {
	v := newTestViper(t)
	v.Set("series.start", "2024-12-20")
	v.Set("series.days", 14)
	v.Set("series.seed", 99)
	v.Set("log.level", "DEBUG")

	s, err := LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-20", s.Params.Start.Format("2006-01-02"))
	assert.Equal(t, 14, s.Params.Days)
	assert.Equal(t, uint64(99), s.Params.Seed)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("WEATHERSYNTH_SERIES_DAYS", "10")

	v := newTestViper(t)
	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	s, err := LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Params.Days)
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr string
	}{
		{"bad start", "series.start", "17/05/2025", "series.start"},
		{"zero days", "series.days", 0, "series.days"},
		{"too many days", "series.days", 1000, "series.days"},
		{"bad level", "log.level", "loud", "log.level"},
		{"blank export file", "export.file", "  ", "export.file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestViper(t)
			v.Set(tt.key, tt.value)

			_, err := LoadSettings(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" Error ": slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
