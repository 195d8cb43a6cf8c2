// Package budget derives monthly totals and budget progress from raw
// expense records.
//
// Everything in this package is a pure function of its inputs. The reference
// instant and the timezone defining the month boundaries are always passed
// in, so callers control the clock and results are reproducible.
package budget

import (
	"time"

	"github.com/ckck22/geumjjok-backend/internal/models"
	"github.com/ckck22/geumjjok-backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Progress is the spending of one participant in one month, measured
// against their monthly target.
type Progress struct {
	Spent      decimal.Decimal `json:"spent" example:"250"`     // Sum of all expenses in the month
	Target     decimal.Decimal `json:"target" example:"800"`    // The configured monthly target
	Remaining  decimal.Decimal `json:"remaining" example:"550"` // Target minus spent. Negative when over budget, never clamped
	Percentage int64           `json:"percentage" example:"31"` // Spent share of the target in percent, rounded. 0 when there is no target
}

// MonthlyTotals computes each participant's total spend in the month of the
// reference instant and their progress against the configured targets.
//
// The month window is the half-open range from local midnight of day 1 in
// the given location up to the same instant of the following month. It is
// computed once from the reference instant, so a record can never flip
// between months during a single pass. Records of unknown participants are
// ignored. Records with a zero attribution instant or a negative amount are
// data-quality defects: they are skipped and logged, the rest of the batch
// is still processed.
func MonthlyTotals(records []models.Expense, targets map[string]decimal.Decimal, reference time.Time, location *time.Location) map[string]Progress {
	month := types.MonthOf(reference.In(location))

	totals := make(map[string]decimal.Decimal, len(targets))
	for name := range targets {
		totals[name] = decimal.Zero
	}

	for _, record := range records {
		total, tracked := totals[record.UserName]
		if !tracked {
			continue
		}

		if record.CreatedAt.IsZero() {
			log.Warn().Uint("id", record.ID).Msg("skipping expense without attribution instant")
			continue
		}

		if record.Amount.IsNegative() {
			log.Warn().Uint("id", record.ID).Str("amount", record.Amount.String()).Msg("skipping expense with negative amount")
			continue
		}

		if month.ContainsInstant(record.CreatedAt) {
			totals[record.UserName] = total.Add(record.Amount)
		}
	}

	progress := make(map[string]Progress, len(targets))
	for name, target := range targets {
		progress[name] = newProgress(totals[name], target)
	}

	return progress
}

func newProgress(spent, target decimal.Decimal) Progress {
	var percentage int64
	if target.IsPositive() {
		percentage = spent.Div(target).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	return Progress{
		Spent:      spent,
		Target:     target,
		Remaining:  target.Sub(spent),
		Percentage: percentage,
	}
}
