package ranking

import (
	"errors"
	"fmt"
)

// ErrNilJob is returned when Match is called without a job posting.
var ErrNilJob = errors.New("job posting is required")

// JobError is a batch-level failure: the job posting itself could not be used.
type JobError struct {
	Message string
	Cause   error
}

func (e *JobError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job error: %s", e.Message)
}

func (e *JobError) Unwrap() error {
	return e.Cause
}

// CandidateError is a per-candidate failure. The candidate is dropped from the batch.
type CandidateError struct {
	CandidateID string
	Message     string
	Cause       error
}

func (e *CandidateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("candidate %s: %s: %v", e.CandidateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("candidate %s: %s", e.CandidateID, e.Message)
}

func (e *CandidateError) Unwrap() error {
	return e.Cause
}
