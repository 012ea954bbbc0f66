package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// DefaultFileName is the name offered for the CSV download.
const DefaultFileName = "oberursel_weather_30days.csv"

// ErrClipboardUnsupported is returned when no clipboard utility is available
// (e.g. no xclip/xsel/wl-copy on Linux).
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Service writes serialized series to files and the clipboard.
type Service interface {
	// SaveFile writes the series to path using delimiter d and returns the
	// number of bytes written. The file is replaced atomically.
	SaveFile(path string, s weather.Series, d weather.Delimiter) (int, error)
	// CopyToClipboard places the tab-separated series on the clipboard.
	CopyToClipboard(s weather.Series) error
}

var _ Service = (*service)(nil)

type service struct {
	clip Clipboard
}

// NewService returns a Service backed by the system clipboard.
func NewService() Service {
	return &service{clip: systemClipboard{}}
}

// NewServiceWithClipboard returns a Service writing to clip instead of the
// system clipboard.
func NewServiceWithClipboard(clip Clipboard) Service {
	return &service{clip: clip}
}

func (s *service) SaveFile(path string, series weather.Series, d weather.Delimiter) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, errors.New("empty export path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}
	data := []byte(weather.Serialize(series, d))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, err
	}
	return len(data), nil
}

func (s *service) CopyToClipboard(series weather.Series) error {
	return s.clip.WriteAll(weather.Serialize(series, weather.Tab))
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
