package cronjob

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/engineers-planet/site/internal/leads/service"
)

// Scheduler logs a summary of the submission counters on a schedule.
type Scheduler struct {
	spec   string
	logger *zap.Logger
	cron   *cron.Cron
}

// NewScheduler takes a six-field cron spec (seconds first).
func NewScheduler(spec string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{spec: spec, logger: logger}
}

// Start initializes cron tasks
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(s.spec, s.LogSummary); err != nil {
		return fmt.Errorf("failed to create cron job: %w", err)
	}

	s.cron = c
	s.logger.Info("cron scheduler started", zap.String("schedule", s.spec))
	c.Start()
	return nil
}

// Stop stops the scheduler; the returned context is done once a running job finishes.
func (s *Scheduler) Stop() context.Context {
	if s.cron == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return s.cron.Stop()
}

func (s *Scheduler) LogSummary() {
	m := service.GetMetrics()
	s.logger.Info("submission summary",
		zap.Int64("submissions", m.Submissions),
		zap.Int64("rejected", m.Rejected),
		zap.Int64("failures", m.Failures),
		zap.Int64("uploads", m.Uploads),
		zap.Int64("uploaded_bytes", m.UploadedBytes),
		zap.Float64("avg_create_latency_ms", m.AverageCreateLatency()),
	)
}
