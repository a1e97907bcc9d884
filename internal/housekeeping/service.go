// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"moviecatalog/internal/logging"
	"sync"
	"time"
)

// MinInterval is the minimum time between runs to prevent busy-looping.
const MinInterval = 1 * time.Minute

// Service provides the background worker that keeps the drive history current.
type Service struct {
	Deps     Dependencies
	interval time.Duration
	stopCh   chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// NewService creates a new housekeeping service running every interval.
// Intervals below MinInterval are raised to it.
func NewService(deps Dependencies, interval time.Duration) *Service {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Service{
		Deps:     deps,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Interval returns the time between two runs.
func (s *Service) Interval() time.Duration {
	return s.interval
}

// Start kicks off the background housekeeping service.
func (s *Service) Start() {
	logging.Log.Infof("Starting background housekeeping service (every %v).", s.interval)
	s.started = true
	timer := time.NewTimer(0) // Fire immediately on start

	go func() {
		defer close(s.done)
		for {
			select {
			case <-timer.C:
				s.run()
				timer.Reset(s.interval)
				logging.Log.Debugf("Next housekeeping run scheduled in %v.", s.interval)
			case <-s.stopCh:
				timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background housekeeping service and waits for a run in progress.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		logging.Log.Info("Stopping background housekeeping service.")
		close(s.stopCh)
		if s.started {
			<-s.done
		}
	})
}

func (s *Service) run() {
	report, err := RunOnce(s.Deps)
	if err != nil {
		logging.Log.Errorf("Housekeeping run failed: %v", err)
		return
	}
	logging.Log.Info(report.Message)
}
