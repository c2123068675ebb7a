package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"quizforge/internal/domain"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet("verification:registration:a@b.com").SetVal("123456")

		val, err := cache.Get(ctx, "verification:registration:a@b.com")
		assert.NoError(t, err)
		assert.Equal(t, "123456", val)
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet("missing").RedisNil()

		_, err := cache.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectSet("k", "v", 10*time.Minute).SetVal("OK")

	err := cache.Set(context.Background(), "k", "v", 10*time.Minute)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_IncrExpire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectIncr("guest_quota:203.0.113.7").SetVal(1)
	mock.ExpectExpire("guest_quota:203.0.113.7", 24*time.Hour).SetVal(true)

	n, err := cache.Incr(ctx, "guest_quota:203.0.113.7")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = cache.Expire(ctx, "guest_quota:203.0.113.7", 24*time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)

	mock.ExpectDel("k").SetVal(1)

	err := cache.Delete(context.Background(), "k")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
