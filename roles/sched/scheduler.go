package sched

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ezstd/ezstd"
)

// Scheduler runs jobs on cron expressions or fixed intervals. The caller
// owns its lifecycle: nothing runs until Start and everything drains on
// Stop.
type Scheduler struct {
	cronScheduler *cron.Cron
	parser        cron.Parser
	logger        ezstd.Logger
	entries       map[string]cron.EntryID
	entryMutex    sync.Mutex
	isStarted     bool
	startMutex    sync.Mutex
}

// NewScheduler creates a scheduler using the role's configuration.
func (r *SchedRole) NewScheduler() *Scheduler {
	fields := cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
	var opts []cron.Option
	if r.config.WithSeconds {
		fields |= cron.Second
		opts = append(opts, cron.WithSeconds())
	}
	return &Scheduler{
		cronScheduler: cron.New(opts...),
		parser:        cron.NewParser(fields),
		logger:        r.logger,
		entries:       make(map[string]cron.EntryID),
	}
}

// Validate checks a cron expression against the role's configured field
// layout without scheduling anything.
func (r *SchedRole) Validate(expr string) error {
	fields := cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
	if r.config.WithSeconds {
		fields |= cron.Second
	}
	if _, err := cron.NewParser(fields).Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// Schedule registers a named job on a cron expression. Scheduling the same
// name again replaces the previous entry.
func (s *Scheduler) Schedule(name, expr string, job func()) error {
	if _, err := s.parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}

	s.entryMutex.Lock()
	defer s.entryMutex.Unlock()

	if old, exists := s.entries[name]; exists {
		s.cronScheduler.Remove(old)
	}
	id, err := s.cronScheduler.AddFunc(expr, job)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", name, err)
	}
	s.entries[name] = id
	s.logger.Debug("job scheduled", "job", name, "expr", expr)
	return nil
}

// Every registers a named job on a fixed interval.
func (s *Scheduler) Every(name string, interval time.Duration, job func()) error {
	s.entryMutex.Lock()
	defer s.entryMutex.Unlock()

	if old, exists := s.entries[name]; exists {
		s.cronScheduler.Remove(old)
	}
	id := s.cronScheduler.Schedule(cron.Every(interval), cron.FuncJob(job))
	s.entries[name] = id
	s.logger.Debug("job scheduled", "job", name, "interval", interval)
	return nil
}

// Remove unschedules a named job. Removing an unknown name is a no-op.
func (s *Scheduler) Remove(name string) {
	s.entryMutex.Lock()
	defer s.entryMutex.Unlock()

	if id, exists := s.entries[name]; exists {
		s.cronScheduler.Remove(id)
		delete(s.entries, name)
	}
}

// Start begins running scheduled jobs. Starting twice is a no-op.
func (s *Scheduler) Start() {
	s.startMutex.Lock()
	defer s.startMutex.Unlock()

	if s.isStarted {
		return
	}
	s.cronScheduler.Start()
	s.isStarted = true
	s.logger.Info("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.startMutex.Lock()
	defer s.startMutex.Unlock()

	if !s.isStarted {
		return
	}
	<-s.cronScheduler.Stop().Done()
	s.isStarted = false
	s.logger.Info("scheduler stopped")
}
