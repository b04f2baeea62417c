package redis

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"quiz-game/internal/domain"
)

// BankLoader fetches a question bank from its backing store (e.g., Postgres).
type BankLoader interface {
	LoadBank(ctx context.Context, source string) (domain.Bank, error)
}

// BankRepository caches question banks in Redis (hash per bank) and falls back to a loader on cache miss.
// Banks are stored as: HSET quiz:bank:{source} limit {seconds} questions {json}
type BankRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBankRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context, source string) (domain.Bank, error) {
	key := r.key(source)

	if bank, ok := r.fromCache(ctx, key); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(source, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.fromCache(ctx, key); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx, source)
		if err != nil {
			return domain.Bank{}, err
		}

		questions, err := json.Marshal(bank.Questions)
		if err != nil {
			return domain.Bank{}, err
		}
		pipe := r.client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, "limit", bank.TimeLimitSeconds, "questions", questions)
		if ttl := r.ttlWithJitter(); ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("cache bank %q: %v", source, err)
		}

		return bank, nil
	})
	if err != nil {
		return domain.Bank{}, err
	}
	return result.(domain.Bank), nil
}

func (r *BankRepository) key(source string) string {
	return "quiz:bank:" + source
}

func (r *BankRepository) fromCache(ctx context.Context, key string) (domain.Bank, bool) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil || len(fields) == 0 {
		return domain.Bank{}, false
	}
	bank, err := buildBankFromCache(fields)
	if err != nil {
		log.Printf("discard cached bank %q: %v", key, err)
		return domain.Bank{}, false
	}
	return bank, true
}

func buildBankFromCache(fields map[string]string) (domain.Bank, error) {
	bank := domain.Bank{TimeLimitSeconds: domain.DefaultTimeLimitSeconds}
	if raw, ok := fields["limit"]; ok {
		limit, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return domain.Bank{}, err
		}
		if limit > uint64(domain.MaxTimeLimitSeconds) {
			return domain.Bank{}, domain.ErrInvalidTimeLimit
		}
		bank.TimeLimitSeconds = uint(limit)
	}
	if err := json.Unmarshal([]byte(fields["questions"]), &bank.Questions); err != nil {
		return domain.Bank{}, err
	}
	return bank, nil
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
