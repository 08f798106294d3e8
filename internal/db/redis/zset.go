package redis

import (
	"context"

	"github.com/yash171102/shopquery/internal/db"
)

// ZIncrBy atomically increments a sorted-set member's score.
func (s *Store) ZIncrBy(ctx context.Context, key string, incr int64, member string) error {
	cmd := s.b().Zincrby().Key(key).Increment(float64(incr)).Member(member).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpZIncrBy, Err: err}
	}
	return nil
}

// ZTop returns up to n members with the highest scores, descending.
func (s *Store) ZTop(ctx context.Context, key string, n int) ([]db.Member, error) {
	if n <= 0 {
		return nil, nil
	}
	cmd := s.b().Zrevrange().Key(key).Start(0).Stop(int64(n - 1)).Withscores().Build()
	scores, err := s.do(ctx, cmd).AsZScores()
	if err != nil {
		return nil, &db.Error{Op: db.OpZRevRange, Err: err}
	}
	members := make([]db.Member, len(scores))
	for i, z := range scores {
		members[i] = db.Member{Member: z.Member, Score: z.Score}
	}
	return members, nil
}
