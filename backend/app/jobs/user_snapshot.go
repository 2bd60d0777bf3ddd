package jobs

import (
	"board-guard/backend/app/dto"
	"board-guard/backend/app/models"
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type UserLister interface {
	FindAll(ctx context.Context) ([]models.User, error)
}

// SnapshotSink receives the JSON user list of every run.
type SnapshotSink interface {
	Push(ctx context.Context, payload []byte) error
}

// UserSnapshot lists all users and logs them. It implements cron.Job.
type UserSnapshot struct {
	Users  UserLister
	Sink   SnapshotSink
	Logger zerolog.Logger
}

func (j *UserSnapshot) Run() {
	ctx := context.Background()
	users, err := j.Users.FindAll(ctx)
	if err != nil {
		j.Logger.Error().Err(err).Msg("user snapshot failed")
		return
	}
	summary := dto.SummarizeUsers(users)
	j.Logger.Info().Int("count", len(summary)).Interface("users", summary).Msg("users")

	if j.Sink == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		j.Logger.Error().Err(err).Msg("encode user snapshot")
		return
	}
	if err := j.Sink.Push(ctx, payload); err != nil {
		j.Logger.Warn().Err(err).Msg("push user snapshot")
	}
}

// RedisSink keeps the newest Limit snapshots in the list Key, newest first.
type RedisSink struct {
	Client *redis.Client
	Key    string
	Limit  int64
}

func (s *RedisSink) Push(ctx context.Context, payload []byte) error {
	pipe := s.Client.TxPipeline()
	pipe.LPush(ctx, s.Key, payload)
	if s.Limit > 0 {
		pipe.LTrim(ctx, s.Key, 0, s.Limit-1)
	}
	_, err := pipe.Exec(ctx)
	return err
}
