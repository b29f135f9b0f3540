package pipeline

import "fmt"

// Stage identifies where in the pipeline a run failed.
type Stage string

const (
	// StageFetch covers findings document retrieval.
	StageFetch Stage = "fetch"
	// StageParse covers findings document decoding.
	StageParse Stage = "parse"
	// StageAssess covers extraction, metric synthesis, and report assembly.
	StageAssess Stage = "assess"
	// StageRender covers PDF generation.
	StageRender Stage = "render"
	// StageStore covers report persistence and link issuance.
	StageStore Stage = "store"
)

// StageError wraps a failure with the pipeline stage it occurred in. Callers
// branch on the underlying error with errors.Is; the stage is for logs and
// user-facing translation.
type StageError struct {
	Err   error
	Stage Stage
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline %s stage: %s", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
