package budget

import (
	"sort"

	"github.com/ckck22/geumjjok-backend/internal/models"
	"github.com/ckck22/geumjjok-backend/internal/types"
	"github.com/shopspring/decimal"
)

// Summary describes a set of expense records as a whole.
type Summary struct {
	Total   decimal.Decimal `json:"total" example:"321.50"`  // Sum of all amounts
	Average decimal.Decimal `json:"average" example:"45.93"` // Mean amount, rounded to cents. Zero for an empty set
	Count   int             `json:"count" example:"7"`       // Number of records
}

// CategorySum is the spending in a single category.
type CategorySum struct {
	Category string          `json:"category" example:"cafe"` // The category label
	Total    decimal.Decimal `json:"total" example:"52.50"`   // Sum of all amounts in the category
	Count    int             `json:"count" example:"3"`       // Number of records in the category
	Share    decimal.Decimal `json:"share" example:"16.3"`    // Share of the grand total in percent, one decimal
}

// Summarize computes the overall statistics for a set of records.
func Summarize(records []models.Expense) Summary {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}

	average := decimal.Zero
	if len(records) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
	}

	return Summary{
		Total:   total,
		Average: average,
		Count:   len(records),
	}
}

// Categories buckets records by their category label, largest total first.
// The label set is open: whatever labels the records carry are returned,
// regardless of the configured enumeration.
func Categories(records []models.Expense) []CategorySum {
	buckets := make(map[string]*CategorySum)
	grandTotal := decimal.Zero

	for _, record := range records {
		bucket, ok := buckets[record.Description]
		if !ok {
			bucket = &CategorySum{Category: record.Description, Total: decimal.Zero}
			buckets[record.Description] = bucket
		}

		bucket.Total = bucket.Total.Add(record.Amount)
		bucket.Count++
		grandTotal = grandTotal.Add(record.Amount)
	}

	sums := make([]CategorySum, 0, len(buckets))
	for _, bucket := range buckets {
		if grandTotal.IsPositive() {
			bucket.Share = bucket.Total.Div(grandTotal).Mul(decimal.NewFromInt(100)).Round(1)
		}
		sums = append(sums, *bucket)
	}

	// Sort by total descending, with the label as tie breaker so that the
	// order is stable
	sort.Slice(sums, func(i, j int) bool {
		if !sums[i].Total.Equal(sums[j].Total) {
			return sums[i].Total.GreaterThan(sums[j].Total)
		}
		return sums[i].Category < sums[j].Category
	})

	return sums
}

// FilterMonth returns the records whose attribution instant falls into the
// month.
func FilterMonth(records []models.Expense, month types.Month) []models.Expense {
	var filtered []models.Expense
	for _, record := range records {
		if !record.CreatedAt.IsZero() && month.ContainsInstant(record.CreatedAt) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// FilterUser returns the records of a single participant.
func FilterUser(records []models.Expense, user string) []models.Expense {
	var filtered []models.Expense
	for _, record := range records {
		if record.UserName == user {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
