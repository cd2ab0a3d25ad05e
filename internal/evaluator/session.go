package evaluator

import (
	"context"
	"sync"
)

// Session tracks the latest password submitted by an interactive caller.
//
// Submit publishes a provisional result at once and finishes the oracle
// lookup in the background. Results are published in submission order: a
// lookup that completes after a newer Submit is dropped.
type Session struct {
	ev *Evaluator

	mu      sync.Mutex
	seq     uint64
	current Result
	changed chan struct{}
	wg      sync.WaitGroup
}

// NewSession returns a Session whose current result is Empty().
func NewSession(ev *Evaluator) *Session {
	return &Session{ev: ev, current: Empty(), changed: make(chan struct{})}
}

// Submit records password as the latest input and returns its sequence number.
func (s *Session) Submit(ctx context.Context, password string) uint64 {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	if password == "" {
		r := Empty()
		r.Seq = seq
		s.publish(r)
		return seq
	}

	r := s.ev.local(password)
	r.Seq = seq
	r.Pending = true
	s.publish(r)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.publish(s.ev.settle(ctx, password, r))
	}()
	return seq
}

// Current returns the latest published result.
func (s *Session) Current() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Await blocks until the result of submission seq, or of a newer one, is
// final, and returns the latest result.
func (s *Session) Await(ctx context.Context, seq uint64) (Result, error) {
	for {
		s.mu.Lock()
		cur, changed := s.current, s.changed
		s.mu.Unlock()

		if cur.Seq >= seq && !cur.Pending {
			return cur, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return cur, ctx.Err()
		}
	}
}

// Wait blocks until every background lookup has returned.
func (s *Session) Wait() {
	s.wg.Wait()
}

// publish stores r unless a newer submission exists, and wakes waiters.
func (s *Session) publish(r Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Seq != s.seq {
		return false
	}
	s.current = r
	close(s.changed)
	s.changed = make(chan struct{})
	return true
}

// Generate creates a password with the evaluator's generator and submits it,
// so the published result always describes the generated value.
func (s *Session) Generate(ctx context.Context) (string, uint64, error) {
	pw, err := s.ev.generator.Generate()
	if err != nil {
		s.ev.log.Error(ctx, "password generation failed", "error", err)
		return "", 0, err
	}
	return pw, s.Submit(ctx, pw), nil
}
