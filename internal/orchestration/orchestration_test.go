package orchestration

import (
	"errors"
	"testing"
	"time"

	"github.com/agbru/basecalc/internal/engine"
	apperrors "github.com/agbru/basecalc/internal/errors"
)

// stubEngine returns a canned output or error and records invocations.
type stubEngine struct {
	name   string
	output string
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubEngine) Name() string        { return s.name }
func (s *stubEngine) Description() string { return "stub" }

func (s *stubEngine) Compute(base int, alphabet, z1, z2 string, op byte) (string, error) {
	s.calls++
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.output, s.err
}

func TestExecuteAll(t *testing.T) {
	// The slow engine finishing last must not disturb result ordering.
	slow := &stubEngine{name: "slow", output: "46", delay: 20 * time.Millisecond}
	fast := &stubEngine{name: "fast", output: "46"}
	failing := &stubEngine{name: "failing", err: errors.New("boom")}

	req := Request{Base: 10, Alphabet: "0123456789", Z1: "12", Z2: "34", Operator: '+'}
	results := ExecuteAll([]engine.Engine{slow, fast, failing}, req)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"slow", "fast", "failing"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
	}
	if results[0].Output != "46" || results[1].Output != "46" {
		t.Errorf("unexpected outputs: %q, %q", results[0].Output, results[1].Output)
	}
	if results[2].Err == nil {
		t.Error("failing engine's error was dropped")
	}
	if results[0].Duration < 20*time.Millisecond {
		t.Errorf("slow engine duration %v not recorded", results[0].Duration)
	}
	for _, s := range []*stubEngine{slow, fast, failing} {
		if s.calls != 1 {
			t.Errorf("engine %q called %d times, want 1", s.name, s.calls)
		}
	}
}

func TestCheckConsistency(t *testing.T) {
	t.Run("all agree", func(t *testing.T) {
		results := []EngineResult{
			{Name: "scalar", Output: "46"},
			{Name: "vector", Output: "46"},
			{Name: "naive", Output: "46"},
		}
		if err := CheckConsistency(results); err != nil {
			t.Errorf("CheckConsistency = %v, want nil", err)
		}
	})

	t.Run("mismatch names both engines", func(t *testing.T) {
		results := []EngineResult{
			{Name: "scalar", Output: "46"},
			{Name: "vector", Output: "47"},
		}
		err := CheckConsistency(results)
		var mismatch apperrors.MismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("CheckConsistency = %v, want MismatchError", err)
		}
		if mismatch.EngineA != "scalar" || mismatch.EngineB != "vector" {
			t.Errorf("mismatch pair = %q/%q", mismatch.EngineA, mismatch.EngineB)
		}
		if mismatch.ResultA != "46" || mismatch.ResultB != "47" {
			t.Errorf("mismatch results = %q/%q", mismatch.ResultA, mismatch.ResultB)
		}
	})

	t.Run("failed engines are skipped", func(t *testing.T) {
		results := []EngineResult{
			{Name: "scalar", Err: errors.New("boom")},
			{Name: "vector", Output: "46"},
			{Name: "naive", Output: "46"},
		}
		if err := CheckConsistency(results); err != nil {
			t.Errorf("CheckConsistency = %v, want nil", err)
		}
	})

	t.Run("all engines failed", func(t *testing.T) {
		first := errors.New("first failure")
		results := []EngineResult{
			{Name: "scalar", Err: first},
			{Name: "vector", Err: errors.New("second failure")},
		}
		err := CheckConsistency(results)
		if err == nil || !errors.Is(err, first) {
			t.Errorf("CheckConsistency = %v, want wrap of the first failure", err)
		}
	})

	t.Run("no results", func(t *testing.T) {
		err := CheckConsistency(nil)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("CheckConsistency(nil) = %v, want ConfigError", err)
		}
	})
}
