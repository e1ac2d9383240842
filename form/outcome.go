package form

import "github.com/saqibullah/medmate/predict"

// Status classifies how a submission ended.
type Status int

const (
	// Skipped means the combined input was empty and nothing was sent.
	Skipped Status = iota
	// Busy means another submission was still in flight.
	Busy
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Busy:
		return "busy"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is what Submit hands back to the view.
type Outcome struct {
	ID       string
	Status   Status
	Symptoms []string
	Result   predict.Result
	Err      error

	// Discarded is set when Reset ran while the request was in flight; the
	// result was not stored.
	Discarded bool
}
