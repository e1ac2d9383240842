package predict

import (
	"fmt"
	"strconv"
)

// Request is the body sent to the prediction service. ID travels as the
// X-Request-ID header and is not part of the JSON payload.
type Request struct {
	ID       string   `json:"-"`
	Symptoms []string `json:"symptoms"`
}

// Result is the single disease/confidence pair returned by the service.
// Confidence is passed through untouched; the service already scales it
// to a percentage.
type Result struct {
	Disease    string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// ConfidenceText formats the confidence in its shortest decimal form.
func (r Result) ConfidenceText() string {
	return strconv.FormatFloat(r.Confidence, 'f', -1, 64)
}

func (r Result) String() string {
	return fmt.Sprintf("Prediction: %s\nConfidence: %s%%", r.Disease, r.ConfidenceText())
}

type response struct {
	Prediction *string  `json:"prediction"`
	Confidence *float64 `json:"confidence"`
}
