package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/saqibullah/medmate/predict"
)

type fakePredictor struct {
	mu      sync.Mutex
	calls   []predict.Request
	result  predict.Result
	err     error
	block   chan struct{}
	started chan struct{}
	form    *Form
	loading []bool
}

func (p *fakePredictor) Predict(_ context.Context, req predict.Request) (predict.Result, error) {
	p.mu.Lock()
	p.calls = append(p.calls, req)
	p.mu.Unlock()
	if p.form != nil {
		p.loading = append(p.loading, p.form.Snapshot().Loading)
	}
	if p.started != nil {
		close(p.started)
	}
	if p.block != nil {
		<-p.block
	}
	return p.result, p.err
}

func TestSubmitEmptyIsNoop(t *testing.T) {
	p := &fakePredictor{}
	f := New(p)
	f.SetCustomInput(" , ,  ")

	out := f.Submit(context.Background())
	if out.Status != Skipped {
		t.Fatalf("expected Skipped, got %v", out.Status)
	}
	if len(p.calls) != 0 {
		t.Fatalf("expected no prediction calls, got %d", len(p.calls))
	}
	if f.Snapshot().Loading {
		t.Fatalf("loading set on skipped submission")
	}
}

func TestSubmitSuccess(t *testing.T) {
	p := &fakePredictor{result: predict.Result{Disease: "Flu", Confidence: 87}}
	f := New(p)
	f.newID = func() string { return "sub-1" }
	p.form = f

	f.Toggle("fatigue")
	f.SetCustomInput("Chills, , Fatigue ,fatigue")

	out := f.Submit(context.Background())
	if out.Status != Succeeded {
		t.Fatalf("expected Succeeded, got %v (%v)", out.Status, out.Err)
	}
	want := []predict.Request{{ID: "sub-1", Symptoms: []string{"fatigue", "chills"}}}
	if diff := cmp.Diff(want, p.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true}, p.loading); diff != "" {
		t.Fatalf("loading during call mismatch (-want +got):\n%s", diff)
	}

	st := f.Snapshot()
	if st.Loading {
		t.Fatalf("loading not cleared")
	}
	if st.Result == nil || st.Result.Disease != "Flu" || st.Result.ConfidenceText() != "87" {
		t.Fatalf("unexpected result %+v", st.Result)
	}
}

func TestSubmitFailureKeepsNoResult(t *testing.T) {
	boom := errors.New("connection refused")
	p := &fakePredictor{err: boom}
	f := New(p)
	f.SetCustomInput("cough")

	out := f.Submit(context.Background())
	if out.Status != Failed || !errors.Is(out.Err, boom) {
		t.Fatalf("expected Failed with cause, got %v (%v)", out.Status, out.Err)
	}
	st := f.Snapshot()
	if st.Result != nil {
		t.Fatalf("result set after failure: %+v", st.Result)
	}
	if st.Loading {
		t.Fatalf("loading not cleared after failure")
	}
}

func TestSubmitFailureLeavesPreviousResult(t *testing.T) {
	p := &fakePredictor{result: predict.Result{Disease: "Flu", Confidence: 87}}
	f := New(p)
	f.Toggle("cough")
	f.Submit(context.Background())

	p.err = errors.New("down")
	if out := f.Submit(context.Background()); out.Status != Failed {
		t.Fatalf("expected Failed, got %v", out.Status)
	}
	if st := f.Snapshot(); st.Result == nil || st.Result.Disease != "Flu" {
		t.Fatalf("previous result lost: %+v", st.Result)
	}
}

func TestSubmitWhileLoadingIsBusy(t *testing.T) {
	p := &fakePredictor{
		result:  predict.Result{Disease: "Flu", Confidence: 87},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	f := New(p)
	f.Toggle("nausea")

	done := make(chan Outcome)
	go func() { done <- f.Submit(context.Background()) }()
	<-p.started

	if out := f.Submit(context.Background()); out.Status != Busy {
		t.Fatalf("expected Busy, got %v", out.Status)
	}
	close(p.block)
	if out := <-done; out.Status != Succeeded {
		t.Fatalf("expected Succeeded, got %v", out.Status)
	}
	if len(p.calls) != 1 {
		t.Fatalf("expected one call, got %d", len(p.calls))
	}
}

func TestToggleListKeepsSelection(t *testing.T) {
	f := New(&fakePredictor{})
	f.Toggle("itching")
	before := f.Snapshot()

	f.ToggleList()
	if !f.Snapshot().ShowList {
		t.Fatalf("list should be visible after one toggle")
	}
	f.ToggleList()

	after := f.Snapshot()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("state changed after double toggle (-before +after):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	p := &fakePredictor{result: predict.Result{Disease: "Flu", Confidence: 87}}
	f := New(p)
	f.Toggle("cough")
	f.SetCustomInput("chills")
	f.ToggleList()
	f.Submit(context.Background())

	f.Reset()
	if diff := cmp.Diff(New(p).Snapshot(), f.Snapshot()); diff != "" {
		t.Fatalf("reset mismatch (-want +got):\n%s", diff)
	}
}

func TestStateIsSelected(t *testing.T) {
	f := New(&fakePredictor{})
	f.Toggle("cough")
	st := f.Snapshot()
	if !st.IsSelected("cough") || st.IsSelected("nausea") {
		t.Fatalf("unexpected selection %v", st.Selected)
	}
}

func TestResetDropsInFlightResult(t *testing.T) {
	p := &fakePredictor{
		result:  predict.Result{Disease: "Flu", Confidence: 87},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	f := New(p)
	f.Toggle("cough")

	done := make(chan Outcome)
	go func() { done <- f.Submit(context.Background()) }()
	<-p.started

	f.Reset()
	if st := f.Snapshot(); st.Loading || st.Result != nil {
		t.Fatalf("reset left loading=%v result=%+v", st.Loading, st.Result)
	}

	close(p.block)
	out := <-done
	if out.Status != Succeeded || !out.Discarded {
		t.Fatalf("expected discarded success, got %v discarded=%v", out.Status, out.Discarded)
	}
	if diff := cmp.Diff(New(p).Snapshot(), f.Snapshot()); diff != "" {
		t.Fatalf("late completion changed state (-want +got):\n%s", diff)
	}
}

func TestResetDoesNotClearNewerSubmission(t *testing.T) {
	first := &fakePredictor{
		result:  predict.Result{Disease: "Flu", Confidence: 87},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	f := New(first)
	f.Toggle("cough")

	done := make(chan Outcome)
	go func() { done <- f.Submit(context.Background()) }()
	<-first.started
	f.Reset()

	second := &fakePredictor{
		result:  predict.Result{Disease: "Migraine", Confidence: 64},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	f.predictor = second
	f.Toggle("headache")
	secondDone := make(chan Outcome)
	go func() { secondDone <- f.Submit(context.Background()) }()
	<-second.started

	close(first.block)
	<-done
	if !f.Snapshot().Loading {
		t.Fatalf("stale completion cleared the loading flag of a newer submission")
	}

	close(second.block)
	if out := <-secondDone; out.Discarded {
		t.Fatalf("current submission marked discarded")
	}
	if st := f.Snapshot(); st.Loading || st.Result == nil || st.Result.Disease != "Migraine" {
		t.Fatalf("unexpected state after second submission: %+v", st)
	}
}

func TestSetSelection(t *testing.T) {
	f := New(&fakePredictor{})
	f.Toggle("cough")
	f.Toggle("itching")

	f.SetSelection([]string{"nausea", "itching", "nausea"})
	if diff := cmp.Diff([]string{"nausea", "itching"}, f.Snapshot().Selected); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	f.SetSelection(nil)
	if got := f.Snapshot().Selected; len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}
