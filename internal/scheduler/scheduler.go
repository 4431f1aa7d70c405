package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// jobTimeout bounds a single scheduled run end to end
const jobTimeout = 5 * time.Minute

// Scheduler fires jobs on a cron spec evaluated in a fixed time zone.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func New(loc *time.Location, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		log:  log.With(zap.String("component", "scheduler")),
	}
}

// AddJob registers job under the given cron spec. Each firing gets its own
// bounded context so a hung run cannot outlive the next one by much.
func (s *Scheduler) AddJob(spec string, job func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		job(ctx)
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started", zap.String("location", s.cron.Location().String()))
}

// Stop halts scheduling and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}
