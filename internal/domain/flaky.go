package domain

import (
	"context"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// FlakyVerdict is the classification a re-run sequence produces.
type FlakyVerdict int

const (
	// NotFlaky means no isolated re-run passed.
	NotFlaky FlakyVerdict = iota
	// PossiblyFlaky means a re-run passed after the original failure.
	PossiblyFlaky
	// Flaky means a confirmation re-run failed again after passing.
	Flaky
)

// FlakyPolicy decides how many isolated re-runs a failed example gets.
type FlakyPolicy struct {
	// Retries bounds the re-runs looking for a first pass. Zero disables re-runs.
	Retries int
	// Confirmations is the number of extra re-runs after a pass.
	Confirmations int
}

// Enabled reports whether failed examples are re-run at all.
func (p FlakyPolicy) Enabled() bool {
	return p.Retries > 0
}

// Attempt runs an example once in isolation.
type Attempt func(ctx context.Context) (m.Outcome, error)

// Evaluate re-runs a failed example according to the policy.
func (p FlakyPolicy) Evaluate(ctx context.Context, attempt Attempt) (FlakyVerdict, error) {
	passed := false

	for range p.Retries {
		outcome, err := attempt(ctx)
		if err != nil {
			return NotFlaky, err
		}

		if outcome == m.Passed {
			passed = true
			break
		}
	}

	if !passed {
		return NotFlaky, nil
	}

	for range p.Confirmations {
		outcome, err := attempt(ctx)
		if err != nil {
			return PossiblyFlaky, err
		}

		if outcome == m.Failed {
			return Flaky, nil
		}
	}

	return PossiblyFlaky, nil
}
