package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/patrickmn/go-cache"
)

const (
	ckMemberRecords        = "records_member_%s"
	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

// cachedRecordRepository is a read-through cache in front of a
// RecordRepository. Writes invalidate the member's entry so the next Load
// reflects them.
type cachedRecordRepository struct {
	next        RecordRepository
	recordCache *cache.Cache

	// versions counts invalidations per key. A miss only fills the cache
	// when no invalidation happened while it was reading.
	mu       sync.Mutex
	versions map[string]uint64
}

func NewCachedRecordRepository(next RecordRepository, recordCache *cache.Cache) RecordRepository {
	return &cachedRecordRepository{next: next, recordCache: recordCache, versions: make(map[string]uint64)}
}

func (r *cachedRecordRepository) Load(ctx context.Context, memberID string) (*models.RecordSet, error) {
	key := fmt.Sprintf(ckMemberRecords, memberID)
	if cached, found := r.recordCache.Get(key); found {
		return copyRecordSet(cached.(*models.RecordSet)), nil
	}

	r.mu.Lock()
	version := r.versions[key]
	r.mu.Unlock()

	set, err := r.next.Load(ctx, memberID)
	if err != nil || set == nil {
		return set, err
	}

	r.mu.Lock()
	if r.versions[key] == version {
		r.recordCache.SetDefault(key, set)
	}
	r.mu.Unlock()
	return copyRecordSet(set), nil
}

func (r *cachedRecordRepository) Save(ctx context.Context, memberID string, set *models.RecordSet) error {
	defer r.InvalidateMember(memberID)
	return r.next.Save(ctx, memberID, set)
}

func (r *cachedRecordRepository) Delete(ctx context.Context, memberID string) error {
	defer r.InvalidateMember(memberID)
	return r.next.Delete(ctx, memberID)
}

func (r *cachedRecordRepository) InvalidateMember(memberID string) {
	key := fmt.Sprintf(ckMemberRecords, memberID)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[key]++
	r.recordCache.Delete(key)
}

// Callers replace whole records in the set and never edit a cached record
// in place, so copying the slots is enough.
func copyRecordSet(set *models.RecordSet) *models.RecordSet {
	cp := *set
	return &cp
}
