package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs jobs on six-field cron specs (seconds first). Runs of the same
// job may overlap.
type Scheduler struct{ c *cron.Cron }

func NewScheduler(logger zerolog.Logger) *Scheduler {
	return &Scheduler{c: cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{l: logger}))}
}

func (s *Scheduler) Add(spec string, job cron.Job) error {
	_, err := s.c.AddJob(spec, job)
	return err
}

func (s *Scheduler) Start() { s.c.Start() }

// Stop prevents new runs; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context { return s.c.Stop() }

type cronLogger struct{ l zerolog.Logger }

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
