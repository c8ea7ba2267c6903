package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"etflow/pkg/irrigation/types"
)

// Policy selects how the simulator obtains a day it has no stored value for.
type Policy int

const (
	// PolicyHybrid reads through to the remote sources on a miss.
	PolicyHybrid Policy = iota
	// PolicyStrict fails on the first gap, naming the date.
	PolicyStrict
)

// Prerequisite failures, reported before any simulation work starts.
var (
	ErrMissingSoil    = errors.New("planting has no soil profile")
	ErrMissingStation = errors.New("planting has no precipitation station")
)

// MissingObservationError names the first day the strict policy could not
// resolve, so the user knows exactly which day to backfill.
type MissingObservationError struct {
	Date   string
	Domain string // weather|precipitation
	Err    error
}

func (e *MissingObservationError) Error() string {
	return fmt.Sprintf("missing %s observation for %s", e.Domain, e.Date)
}

func (e *MissingObservationError) Unwrap() error { return e.Err }

// IrrigationService is the core operation surface: a recommendation for
// today, and the reconstructed series for charting.
type IrrigationService interface {
	Recommend(ctx context.Context, plantingID uint, uid string, today time.Time) (*types.RecommendationPayload, error)
	// HistoricalBalance tolerates missing days with a neutral fallback since
	// it serves visualization, not a decision.
	HistoricalBalance(ctx context.Context, plantingID uint, uid string, windowDays int, today time.Time) ([]types.BalanceDay, error)
}
