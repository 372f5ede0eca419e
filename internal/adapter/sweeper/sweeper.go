// Package sweeper owns the timer that periodically triggers the
// escalation check. The engine only exposes the idempotent sweep; how and
// when it fires is this adapter's concern.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"accounts-payable-service/internal/usecase/workflow"
)

type Sweeper struct {
	engine    *workflow.Engine
	interval  time.Duration
	threshold time.Duration
	log       zerolog.Logger

	mu      sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	running bool
}

func New(engine *workflow.Engine, interval, threshold time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		engine:    engine,
		interval:  interval,
		threshold: threshold,
		log:       log,
	}
}

// Start launches the background ticker. Safe to call once; subsequent
// calls are no-ops until Stop.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stop:
				return
			}
		}
	}()

	s.log.Info().
		Dur("interval", s.interval).
		Dur("threshold", s.threshold).
		Msg("escalation sweeper started")
}

// Stop halts the ticker and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.engine.CheckEscalations(ctx, time.Now().UTC(), s.threshold)
	if err != nil {
		s.log.Error().Err(err).Msg("escalation sweep failed")
		return
	}
	if n > 0 {
		s.log.Info().Int("escalated", n).Msg("escalation sweep finished")
	}
}
