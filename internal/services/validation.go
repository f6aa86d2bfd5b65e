package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"worklog-service/internal/models"
)

// Validation failure reasons, also used as metric labels.
const (
	ReasonNoInput          = "no_input"
	ReasonInvalidJSON      = "invalid_json"
	ReasonProjectMissing   = "project_number_missing"
	ReasonWorkerMissing    = "worker_name_missing"
	ReasonHoursMissing     = "work_time_hours_missing"
	ReasonHoursNotNumber   = "work_time_hours_not_number"
	ReasonHoursNotPositive = "work_time_hours_not_positive"
)

// ValidationError is a client-caused rejection of a work entry submission.
// Message is safe to return to the client as is.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// ParseWorkEntry checks a JSON submission rule by rule and stops at the first
// violation.
func ParseWorkEntry(body []byte) (models.WorkEntryInput, error) {
	var in models.WorkEntryInput

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return in, invalid(ReasonNoInput, "No input data provided")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return in, invalid(ReasonInvalidJSON, "Invalid JSON payload")
	}
	if len(fields) == 0 {
		return in, invalid(ReasonNoInput, "No input data provided")
	}

	project, ok := requiredText(fields["project_number"])
	if !ok {
		return in, invalid(ReasonProjectMissing, "Project number is required")
	}
	worker, ok := requiredText(fields["worker_name"])
	if !ok {
		return in, invalid(ReasonWorkerMissing, "Worker name is required")
	}

	// Zero is a present value; only absence or null counts as missing here.
	rawHours, present := fields["work_time_hours"]
	if !present || isNull(rawHours) {
		return in, invalid(ReasonHoursMissing, "Work time (hours) is required")
	}
	hours, ok := numberValue(rawHours)
	if !ok {
		return in, invalid(ReasonHoursNotNumber, "Work time must be a valid number")
	}
	if hours <= 0 {
		return in, invalid(ReasonHoursNotPositive, "Work time must be a positive number")
	}

	in.ProjectNumber = project
	in.WorkerName = worker
	in.WorkTimeHours = hours
	if details, ok := textValue(fields["work_details"]); ok {
		in.WorkDetails = &details
	}
	return in, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// textValue accepts JSON strings and numbers. Numbers keep their literal text.
func textValue(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), true
	}
	return "", false
}

// requiredText is textValue for mandatory fields: empty text and a numeric
// zero both count as missing.
func requiredText(raw json.RawMessage) (string, bool) {
	s, ok := textValue(raw)
	if !ok || s == "" {
		return "", false
	}
	if raw[0] != '"' {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
			return "", false
		}
	}
	return s, true
}

// numberValue accepts JSON numbers and strings holding a decimal number. NaN
// and infinities are rejected.
func numberValue(raw json.RawMessage) (float64, bool) {
	var f float64
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = v
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if err := json.Unmarshal(raw, &f); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
