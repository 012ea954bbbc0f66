package weather

import (
	"fmt"
	"time"
)

// Params selects the window to synthesize. A zero Seed draws from a
// runtime-seeded source, so every call yields new numbers.
type Params struct {
	Start time.Time
	Days  int
	Seed  uint64
}

// DefaultParams is the window shown on startup.
func DefaultParams() Params {
	return Params{Start: DefaultStart, Days: DefaultDays}
}

// Service produces fresh series for the presentation layer.
type Service interface {
	Generate(p Params) (Series, error)
}

var _ Service = (*generatorService)(nil)

// NewService returns the default Service.
func NewService() Service {
	return &generatorService{}
}

type generatorService struct{}

// Generate builds a new generator for each call so no draws carry over
// between series.
func (s *generatorService) Generate(p Params) (Series, error) {
	var src Source
	if p.Seed != 0 {
		src = NewSeededSource(p.Seed)
	}
	series, err := NewGenerator(src).Series(p.Start, p.Days)
	if err != nil {
		return Series{}, fmt.Errorf("generate %d days from %s: %w", p.Days, p.Start.Format(time.DateOnly), err)
	}
	return series, nil
}
