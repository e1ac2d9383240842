package form

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/saqibullah/medmate/predict"
	"github.com/saqibullah/medmate/symptom"
)

// FailureNotice is the only message views show for a failed submission.
const FailureNotice = "Something went wrong."

// Predictor performs the network round trip.
type Predictor interface {
	Predict(ctx context.Context, req predict.Request) (predict.Result, error)
}

// State is a point-in-time copy of the form used for rendering.
type State struct {
	Catalog     []string        `json:"catalog"`
	Selected    []string        `json:"selected"`
	CustomInput string          `json:"custom_input"`
	ShowList    bool            `json:"show_list"`
	Loading     bool            `json:"loading"`
	Result      *predict.Result `json:"result,omitempty"`
}

// Form owns the view state of the symptom form. It is safe for concurrent
// use; the lock is released while a prediction is in flight.
type Form struct {
	predictor Predictor
	newID     func() string

	mu       sync.Mutex
	selected symptom.Selection
	custom   string
	showList bool
	loading  bool
	result   *predict.Result

	// generation advances on Reset so late completions can be dropped.
	generation uint64
}

func New(p Predictor) *Form {
	return &Form{
		predictor: p,
		newID:     func() string { return uuid.NewString() },
	}
}

func (f *Form) Toggle(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected.Toggle(s)
}

// SetSelection replaces the selection with names, keeping their order.
func (f *Form) SetSelection(names []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected.Clear()
	for _, s := range names {
		if !f.selected.Has(s) {
			f.selected.Toggle(s)
		}
	}
}

// ToggleList flips visibility of the symptom list. Selection is untouched.
func (f *Form) ToggleList() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showList = !f.showList
}

func (f *Form) SetCustomInput(raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.custom = raw
}

// Combined returns the deduplicated union of selected and typed symptoms.
func (f *Form) Combined() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.combined()
}

func (f *Form) combined() []string {
	return symptom.Combine(f.selected.Items(), symptom.ParseCustom(f.custom))
}

// Submit sends the combined input to the predictor once. An empty input is
// skipped without a request; a failure leaves any previous result in place.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	symptoms := f.combined()
	if len(symptoms) == 0 {
		f.mu.Unlock()
		return Outcome{Status: Skipped}
	}
	if f.loading {
		f.mu.Unlock()
		return Outcome{Status: Busy, Symptoms: symptoms}
	}
	f.loading = true
	gen := f.generation
	f.mu.Unlock()

	out := Outcome{ID: f.newID(), Symptoms: symptoms}
	res, err := f.predictor.Predict(ctx, predict.Request{ID: out.ID, Symptoms: symptoms})

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		out.Discarded = true
	} else {
		f.loading = false
	}
	if err != nil {
		out.Status = Failed
		out.Err = err
		return out
	}
	out.Status = Succeeded
	out.Result = res
	if !out.Discarded {
		f.result = &res
	}
	return out
}

// Snapshot copies the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := State{
		Catalog:     symptom.Catalog(),
		Selected:    f.selected.Items(),
		CustomInput: f.custom,
		ShowList:    f.showList,
		Loading:     f.loading,
	}
	if f.result != nil {
		res := *f.result
		st.Result = &res
	}
	return st
}

// Reset restores the initial state. A submission still in flight keeps
// running but its result is not stored.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected.Clear()
	f.custom = ""
	f.showList = false
	f.loading = false
	f.result = nil
	f.generation++
}

// IsSelected reports whether s was checked in the selector.
func (s State) IsSelected(name string) bool {
	for _, sel := range s.Selected {
		if sel == name {
			return true
		}
	}
	return false
}
