package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caiolopes/pdv-api/internal/domain/entity"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type memIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemIdempotencyRepo() *memIdempotencyRepo {
	return &memIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memIdempotencyRepo) GetByKey(_ context.Context, key, session string) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key+"|"+session]
	if !ok {
		return nil, nil
	}
	cp := *ikey
	return &cp, nil
}

func (r *memIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	cp := *ikey
	r.keys[ikey.Key+"|"+ikey.RegisterSession] = &cp
	return nil
}

func (r *memIdempotencyRepo) DeleteExpired(_ context.Context) error {
	for k, ikey := range r.keys {
		if ikey.IsExpired() {
			delete(r.keys, k)
		}
	}
	return nil
}

func newIdempotencyRouter(repo *memIdempotencyRepo, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RegisterSession())
	router.POST("/checkout", Idempotency(IdempotencyConfig{Repo: repo}), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusCreated, gin.H{"hit": *hits})
	})
	return router
}

func doCheckout(router *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyCachesFreshResponse(t *testing.T) {
	repo := newMemIdempotencyRepo()
	hits := 0
	router := newIdempotencyRouter(repo, &hits)

	w := doCheckout(router, "key-1")

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, hits)
	require.Empty(t, w.Header().Get("X-Idempotency-Replayed"))

	stored, err := repo.GetByKey(context.Background(), "key-1", DefaultRegisterSession)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, http.StatusCreated, stored.ResponseCode)
	require.Equal(t, w.Body.String(), stored.ResponseBody)
	require.True(t, stored.ExpiresAt.After(time.Now()))
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	repo := newMemIdempotencyRepo()
	hits := 0
	router := newIdempotencyRouter(repo, &hits)

	first := doCheckout(router, "key-1")
	second := doCheckout(router, "key-1")

	require.Equal(t, 1, hits)
	require.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	require.Equal(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyExpiredKeyReexecutesAndRecaches(t *testing.T) {
	repo := newMemIdempotencyRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.IdempotencyKey{
		Key:             "key-1",
		RegisterSession: DefaultRegisterSession,
		Endpoint:        "POST /checkout",
		ResponseCode:    http.StatusCreated,
		ResponseBody:    `{"hit":0}`,
		ExpiresAt:       time.Now().Add(-time.Hour),
	}))

	hits := 0
	router := newIdempotencyRouter(repo, &hits)

	// Expired key must not replay the stale body; the handler runs again
	// and the fresh response takes the old row's place.
	w := doCheckout(router, "key-1")

	require.Equal(t, 1, hits)
	require.Empty(t, w.Header().Get("X-Idempotency-Replayed"))

	stored, err := repo.GetByKey(context.Background(), "key-1", DefaultRegisterSession)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, w.Body.String(), stored.ResponseBody)
	require.True(t, stored.ExpiresAt.After(time.Now()))

	// A retry of the same key now replays the re-cached response
	retry := doCheckout(router, "key-1")
	require.Equal(t, 1, hits)
	require.Equal(t, "true", retry.Header().Get("X-Idempotency-Replayed"))
	require.Equal(t, w.Body.String(), retry.Body.String())
}

func TestIdempotencyScopedPerRegisterSession(t *testing.T) {
	repo := newMemIdempotencyRepo()
	hits := 0
	router := newIdempotencyRouter(repo, &hits)

	w1 := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req1.Header.Set(IdempotencyKeyHeader, "key-1")
	req1.Header.Set(RegisterSessionHeader, "reg-1")
	router.ServeHTTP(w1, req1)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req2.Header.Set(IdempotencyKeyHeader, "key-1")
	req2.Header.Set(RegisterSessionHeader, "reg-2")
	router.ServeHTTP(w2, req2)

	// Same key from another register is a different sale
	require.Equal(t, 2, hits)
	require.Empty(t, w2.Header().Get("X-Idempotency-Replayed"))
}

func TestDeleteExpiredKeepsLiveKeys(t *testing.T) {
	repo := newMemIdempotencyRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.IdempotencyKey{
		Key:             "stale",
		RegisterSession: DefaultRegisterSession,
		ExpiresAt:       time.Now().Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(context.Background(), &entity.IdempotencyKey{
		Key:             "live",
		RegisterSession: DefaultRegisterSession,
		ExpiresAt:       time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteExpired(context.Background()))

	stale, err := repo.GetByKey(context.Background(), "stale", DefaultRegisterSession)
	require.NoError(t, err)
	require.Nil(t, stale)

	live, err := repo.GetByKey(context.Background(), "live", DefaultRegisterSession)
	require.NoError(t, err)
	require.NotNil(t, live)
}
