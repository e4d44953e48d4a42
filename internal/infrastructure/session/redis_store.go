package session

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func sessionKey(sid string) string {
	return "blog:session:" + sid
}

// RedisStore keeps sessions in Redis hashes with a TTL matching the
// cookie lifetime.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, sess Session) (string, error) {
	sid := uuid.NewString()
	key := sessionKey(sid)
	fields := map[string]any{
		"user_id":    sess.UserID,
		"email":      sess.Email,
		"name":       sess.Name,
		"admin":      strconv.FormatBool(sess.Admin),
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (Session, bool, error) {
	data, err := s.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return Session{}, false, err
	}
	if len(data) == 0 {
		return Session{}, false, nil
	}
	uid, err := strconv.ParseInt(data["user_id"], 10, 64)
	if err != nil {
		return Session{}, false, err
	}
	admin, _ := strconv.ParseBool(data["admin"])
	return Session{
		UserID: uid,
		Email:  data["email"],
		Name:   data["name"],
		Admin:  admin,
	}, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	err := s.client.Del(ctx, sessionKey(sid)).Err()
	if err != nil && err != redis.Nil {
		return err
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
