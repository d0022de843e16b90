// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package eval coordinates background evaluations. Each pattern or program
// edit is a cancel-and-restart unit: beginning a new evaluation cancels the
// in-flight one and bumps a generation stamp, so a stale result resolving
// late can be recognized and discarded instead of overwriting the
// rendering.
package eval

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Ticket identifies one evaluation attempt. The generation stamp decides
// whether a finished evaluation is still the latest; the id is for logs.
type Ticket struct {
	ID  string
	Gen uint64
}

// Scheduler issues tickets and contexts for evaluations. Only results
// carrying the current generation may touch shared state; superseded
// evaluations are disregarded, so concurrent attempts never interleave
// writes.
type Scheduler struct {
	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	limiter *rate.Limiter
}

// NewScheduler returns a scheduler that also throttles evaluation bursts
// to perSecond (fast typing schedules many evaluations; most are
// superseded before they run).
func NewScheduler(perSecond float64) *Scheduler {
	return &Scheduler{
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// Begin supersedes any in-flight evaluation: the previous context is
// canceled, the generation advances, and a fresh ticket plus context for
// the new attempt is returned.
func (s *Scheduler) Begin(parent context.Context) (context.Context, Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.gen++

	return ctx, Ticket{ID: uuid.NewString(), Gen: s.gen}
}

// Wait blocks until the rate limiter admits the evaluation or the context
// is canceled (meaning the attempt was already superseded).
func (s *Scheduler) Wait(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}

// IsCurrent reports whether the ticket still represents the latest
// evaluation.
func (s *Scheduler) IsCurrent(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Gen == s.gen
}

// Stop cancels any in-flight evaluation without starting a new one.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
