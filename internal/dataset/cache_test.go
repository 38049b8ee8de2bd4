package dataset

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jobdeck/jobdeck/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPersister records cache traffic and can serve a canned dataset.
type countingPersister struct {
	mu     sync.Mutex
	gets   int
	saves  int
	canned *Dataset
}

func (p *countingPersister) GetDataset(_ context.Context, _ Key) (*Dataset, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gets++
	return p.canned, nil
}

func (p *countingPersister) SaveDataset(_ context.Context, _ Key, ds *Dataset) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	p.canned = ds
	return nil
}

func TestCache_RepeatedLoadsAreFree(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	p := &countingPersister{}
	cache := NewCache(p)
	ctx := context.Background()

	ds1, err := cache.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, ds1.Records, 3)

	ds2, err := cache.Load(ctx, path)
	require.NoError(t, err)

	// Same pointer: the second load never touched disk or the persister.
	assert.Same(t, ds1, ds2)
	assert.Equal(t, 1, p.gets)
	assert.Equal(t, 1, p.saves)
}

func TestCache_ModTimeChangeIsAMiss(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	cache := NewCache(nil)
	ctx := context.Background()

	ds1, err := cache.Load(ctx, path)
	require.NoError(t, err)

	// Rewrite with one fewer row and a bumped mtime.
	shorter := `,Job Title,Salary Estimate,Rating,Company Name,Location,Size,Revenue,Sector
0,Data Scientist,"$80K-$120K",4.0,Acme Corp,NY,Large,Unknown,Tech
`
	require.NoError(t, os.WriteFile(path, []byte(shorter), 0600))
	bumped := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, bumped, bumped))

	ds2, err := cache.Load(ctx, path)
	require.NoError(t, err)
	assert.NotSame(t, ds1, ds2)
	assert.Len(t, ds2.Records, 1)
}

func TestCache_PersistentHitSkipsParse(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	canned := &Dataset{RawCount: 42}
	cache := NewCache(&countingPersister{canned: canned})

	ds, err := cache.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Same(t, canned, ds)
}

func TestCache_MissingFile(t *testing.T) {
	cache := NewCache(nil)
	_, err := cache.Load(context.Background(), "/does/not/exist.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestCache_InvalidateForcesReload(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	p := &countingPersister{}
	cache := NewCache(p)
	ctx := context.Background()

	_, err := cache.Load(ctx, path)
	require.NoError(t, err)

	cache.Invalidate(path)

	_, err = cache.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, p.gets)
}
