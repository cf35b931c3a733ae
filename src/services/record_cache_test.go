package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stallingRecordRepository is an in-memory repository whose next Load can be
// held after it has taken its snapshot.
type stallingRecordRepository struct {
	mu      sync.Mutex
	sets    map[string]*models.RecordSet
	hold    chan struct{}
	holding chan struct{}
}

func newStallingRecordRepository() *stallingRecordRepository {
	return &stallingRecordRepository{sets: make(map[string]*models.RecordSet)}
}

// holdNextLoad makes the next Load signal on the returned channel once it has
// read, then wait for release to be closed.
func (r *stallingRecordRepository) holdNextLoad() (holding <-chan struct{}, release chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hold = make(chan struct{})
	r.holding = make(chan struct{})
	return r.holding, r.hold
}

func (r *stallingRecordRepository) Load(_ context.Context, memberID string) (*models.RecordSet, error) {
	r.mu.Lock()
	var snapshot *models.RecordSet
	if set := r.sets[memberID]; set != nil {
		snapshot = copyRecordSet(set)
	}
	hold, holding := r.hold, r.holding
	r.hold, r.holding = nil, nil
	r.mu.Unlock()

	if hold != nil {
		close(holding)
		<-hold
	}
	return snapshot, nil
}

func (r *stallingRecordRepository) Save(_ context.Context, memberID string, set *models.RecordSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[memberID] = copyRecordSet(set)
	return nil
}

func (r *stallingRecordRepository) Delete(_ context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, memberID)
	return nil
}

func TestCachedRecordRepositoryIgnoresLoadRacingASave(t *testing.T) {
	ctx := context.Background()
	inner := newStallingRecordRepository()
	require.NoError(t, inner.Save(ctx, "m1", &models.RecordSet{Commodity: &models.CommodityRecord{PremiumPaid: 100}}))
	repo := NewCachedRecordRepository(inner, cache.New(time.Minute, time.Minute))

	holding, release := inner.holdNextLoad()
	done := make(chan *models.RecordSet)
	go func() {
		set, _ := repo.Load(ctx, "m1")
		done <- set
	}()
	<-holding

	updated := &models.RecordSet{
		Commodity: &models.CommodityRecord{PremiumPaid: 100},
		Cash:      cashRecord(20000),
	}
	require.NoError(t, repo.Save(ctx, "m1", updated))

	close(release)
	stale := <-done
	assert.Nil(t, stale.Cash)

	after, err := repo.Load(ctx, "m1")
	require.NoError(t, err)
	assert.NotNil(t, after.Cash)
}

func TestCachedRecordRepositoryServesFromCache(t *testing.T) {
	ctx := context.Background()
	inner := newStallingRecordRepository()
	require.NoError(t, inner.Save(ctx, "m1", &models.RecordSet{Cash: cashRecord(1)}))
	repo := NewCachedRecordRepository(inner, cache.New(time.Minute, time.Minute))

	_, err := repo.Load(ctx, "m1")
	require.NoError(t, err)

	// A write that bypasses the cache is not seen until invalidation.
	require.NoError(t, inner.Delete(ctx, "m1"))
	cached, err := repo.Load(ctx, "m1")
	require.NoError(t, err)
	assert.NotNil(t, cached)

	repo.(*cachedRecordRepository).InvalidateMember("m1")
	fresh, err := repo.Load(ctx, "m1")
	require.NoError(t, err)
	assert.Nil(t, fresh)
}
