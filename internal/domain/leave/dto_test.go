package leave

import (
	"testing"

	"github.com/offisbridge/backoffice-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateLeaveRequest_Validate_BadDates(t *testing.T) {
	t.Parallel()

	req := CreateLeaveRequest{
		Type:      "annual",
		StartDate: "2025/07/01",
		EndDate:   "2025-02-30",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "start_date")
	assert.Contains(t, details, "end_date")
}

func TestCreateLeaveRequest_Validate_UnknownType(t *testing.T) {
	t.Parallel()

	req := CreateLeaveRequest{
		Type:      "sabbatical",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
}
