package prompt

import (
	"context"
	"errors"

	"github.com/saqibullah/medmate/form"
	"github.com/saqibullah/medmate/symptom"
)

// Session walks a user through the symptom form in the terminal.
type Session struct {
	driver Driver
	form   *form.Form
	// OnFailure is called with every failed outcome, e.g. for logging.
	OnFailure func(form.Outcome)
}

func NewSession(d Driver, f *form.Form) *Session {
	return &Session{driver: d, form: f}
}

// Run loops until the user declines another prediction. ErrAborted is
// returned when the user interrupts a prompt.
func (s *Session) Run(ctx context.Context) error {
	if err := s.driver.Info(ctx, "Symplify: Real-Time Symptom-to-Disease Prediction"); err != nil {
		return err
	}
	for {
		if err := s.round(ctx); err != nil {
			return err
		}
		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Predict again?"})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) round(ctx context.Context) error {
	if err := s.pickSymptoms(ctx); err != nil {
		return err
	}

	st := s.form.Snapshot()
	custom, err := s.driver.Input(ctx, InputConfig{
		Message: "Other symptoms (comma-separated):",
		Default: st.CustomInput,
		Help:    "e.g. chills, shivering, fatigue",
	})
	if err != nil {
		return err
	}
	s.form.SetCustomInput(custom)

	out := s.form.Submit(ctx)
	switch out.Status {
	case form.Skipped:
		return nil
	case form.Busy:
		return s.driver.Info(ctx, "A prediction is already running.")
	case form.Failed:
		if errors.Is(out.Err, context.Canceled) {
			return out.Err
		}
		if s.OnFailure != nil {
			s.OnFailure(out)
		}
		return s.driver.Info(ctx, form.FailureNotice)
	default:
		return s.driver.Info(ctx, out.Result.String())
	}
}

// pickSymptoms shows the catalog with the current selection pre-checked
// and toggles whatever changed.
func (s *Session) pickSymptoms(ctx context.Context) error {
	st := s.form.Snapshot()
	options := make([]string, len(st.Catalog))
	var defaults []int
	for i, name := range st.Catalog {
		options[i] = symptom.Label(name)
		if st.IsSelected(name) {
			defaults = append(defaults, i)
		}
	}

	picked, err := s.driver.MultiSelect(ctx, MultiSelectConfig{
		Message:  "Select your symptoms:",
		Options:  options,
		Defaults: defaults,
		PageSize: len(options),
	})
	if err != nil {
		return err
	}

	want := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(st.Catalog) {
			want[st.Catalog[idx]] = true
		}
	}
	for _, name := range st.Catalog {
		if st.IsSelected(name) != want[name] {
			s.form.Toggle(name)
		}
	}
	return nil
}
