package jobs

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsJob(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	ran := make(chan struct{}, 4)
	require.NoError(t, s.Add("* * * * * *", cron.FuncJob(func() { ran <- struct{}{} })))

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run within 3s")
	}
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	assert.Error(t, s.Add("every ten seconds", cron.FuncJob(func() {})))
	// five-field specs are rejected because the seconds field is required
	assert.Error(t, s.Add("*/10 * * * *", cron.FuncJob(func() {})))
}
