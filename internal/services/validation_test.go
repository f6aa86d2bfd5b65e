package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkEntry_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		reason  string
		message string
	}{
		{"empty body", "", ReasonNoInput, "No input data provided"},
		{"whitespace body", "  \n", ReasonNoInput, "No input data provided"},
		{"json null", "null", ReasonNoInput, "No input data provided"},
		{"empty object", "{}", ReasonNoInput, "No input data provided"},
		{"malformed json", `{"project_number": "P1"`, ReasonInvalidJSON, "Invalid JSON payload"},
		{"array body", `[1, 2]`, ReasonInvalidJSON, "Invalid JSON payload"},
		{"missing project", `{"worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"null project", `{"project_number": null, "worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"empty project", `{"project_number": "", "worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"blank project", `{"project_number": "   ", "worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"object project", `{"project_number": {}, "worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"zero project", `{"project_number": 0, "worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"zero float project", `{"project_number": 0.0, "worker_name": "Alice", "work_time_hours": 1}`, ReasonProjectMissing, "Project number is required"},
		{"zero worker", `{"project_number": "P1", "worker_name": 0, "work_time_hours": 1}`, ReasonWorkerMissing, "Worker name is required"},
		{"missing worker", `{"project_number": "P1", "work_time_hours": 1}`, ReasonWorkerMissing, "Worker name is required"},
		{"empty worker", `{"project_number": "P1", "worker_name": "", "work_time_hours": 1}`, ReasonWorkerMissing, "Worker name is required"},
		{"missing hours", `{"project_number": "P1", "worker_name": "Alice"}`, ReasonHoursMissing, "Work time (hours) is required"},
		{"null hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": null}`, ReasonHoursMissing, "Work time (hours) is required"},
		{"word hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": "abc"}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"empty string hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": ""}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"bool hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": true}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"list hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": [1]}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"nan hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": "NaN"}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"infinite hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": "inf"}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"overflow hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": 1e400}`, ReasonHoursNotNumber, "Work time must be a valid number"},
		{"zero hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": 0}`, ReasonHoursNotPositive, "Work time must be a positive number"},
		{"zero string hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": "0.0"}`, ReasonHoursNotPositive, "Work time must be a positive number"},
		{"negative hours", `{"project_number": "P1", "worker_name": "Alice", "work_time_hours": -2}`, ReasonHoursNotPositive, "Work time must be a positive number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWorkEntry([]byte(tt.body))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestParseWorkEntry_FirstViolationWins(t *testing.T) {
	_, err := ParseWorkEntry([]byte(`{"worker_name": "", "work_time_hours": -1}`))
	require.Error(t, err)
	assert.Equal(t, "Project number is required", err.Error())
}

func TestParseWorkEntry_Accepts(t *testing.T) {
	in, err := ParseWorkEntry([]byte(`{"project_number": "P1", "worker_name": "Alice", "work_time_hours": 3.5}`))
	require.NoError(t, err)
	assert.Equal(t, "P1", in.ProjectNumber)
	assert.Equal(t, "Alice", in.WorkerName)
	assert.Equal(t, 3.5, in.WorkTimeHours)
	assert.Nil(t, in.WorkDetails)

	in, err = ParseWorkEntry([]byte(`{"project_number": 1042, "worker_name": " Bob ", "work_time_hours": " 2.25 ", "work_details": "Roofing"}`))
	require.NoError(t, err)
	assert.Equal(t, "1042", in.ProjectNumber)
	assert.Equal(t, "Bob", in.WorkerName)
	assert.Equal(t, 2.25, in.WorkTimeHours)
	require.NotNil(t, in.WorkDetails)
	assert.Equal(t, "Roofing", *in.WorkDetails)

	in, err = ParseWorkEntry([]byte(`{"project_number": "0", "worker_name": "Alice", "work_time_hours": 1}`))
	require.NoError(t, err)
	assert.Equal(t, "0", in.ProjectNumber)

	in, err = ParseWorkEntry([]byte(`{"project_number": "P1", "worker_name": "Alice", "work_time_hours": 0.0001, "work_details": null}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0001, in.WorkTimeHours)
	assert.Nil(t, in.WorkDetails)
}
