package report

import (
	"testing"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/expense"
	"github.com/offisbridge/backoffice-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWaterfall(t *testing.T) {
	t.Parallel()

	resp := buildWaterfall("2025-06", 10_000_000, 6_000_000, []expense.CategoryTotal{
		{Category: expense.CategoryOffice, Amount: 500_000},
		{Category: expense.CategoryMeal, Amount: 300_000},
	})

	require.Len(t, resp.Steps, 4)

	assert.Equal(t, report.WaterfallStep{Label: "revenue", Amount: 10_000_000, Subtotal: 10_000_000}, resp.Steps[0])
	assert.Equal(t, report.WaterfallStep{Label: "payroll", Amount: -6_000_000, Subtotal: 4_000_000}, resp.Steps[1])
	assert.Equal(t, report.WaterfallStep{Label: "expense:office", Amount: -500_000, Subtotal: 3_500_000}, resp.Steps[2])
	assert.Equal(t, report.WaterfallStep{Label: "expense:meal", Amount: -300_000, Subtotal: 3_200_000}, resp.Steps[3])

	assert.Equal(t, int64(3_200_000), resp.Net)
}

func TestBuildWaterfall_NoExpenses(t *testing.T) {
	t.Parallel()

	resp := buildWaterfall("2025-06", 5_000_000, 5_500_000, nil)

	require.Len(t, resp.Steps, 2)
	// A loss-making month ends with a negative net.
	assert.Equal(t, int64(-500_000), resp.Net)
	assert.Equal(t, resp.Net, resp.Steps[len(resp.Steps)-1].Subtotal)
}

func TestBuildWaterfall_SubtotalsAreCumulative(t *testing.T) {
	t.Parallel()

	resp := buildWaterfall("2025-01", 1_000, 400, []expense.CategoryTotal{
		{Category: expense.CategoryOther, Amount: 100},
	})

	var running int64
	for _, step := range resp.Steps {
		running += step.Amount
		assert.Equal(t, running, step.Subtotal)
	}
	assert.Equal(t, running, resp.Net)
}
