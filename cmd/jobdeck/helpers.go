package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"
	"github.com/jobdeck/jobdeck/internal/storage"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
)

// newProvider wires the dataset cache for the configured source path,
// with the sqlite second level when cache.db is set. The returned cleanup
// closes the store.
func newProvider(path string) (provider func(ctx context.Context) (*dataset.Dataset, error), cleanup func(), err error) {
	var persister dataset.Persister
	cleanup = func() {}

	if dbPath := viper.GetString(config.KeyCacheDB); dbPath != "" {
		store, err := storage.NewSQLiteStore(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening cache db: %w", err)
		}
		if err := store.Migrate(context.Background()); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("migrating cache db: %w", err)
		}
		persister = store
		cleanup = func() { _ = store.Close() }
	}

	cache := dataset.NewCache(persister)
	provider = func(ctx context.Context) (*dataset.Dataset, error) {
		return cache.Load(ctx, path)
	}
	return provider, cleanup, nil
}

// loadCleaned loads and cleans the dataset once, with a progress spinner
// for large files. Used by the one-shot commands.
func loadCleaned(path string) (*dataset.Dataset, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Loading job postings..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	raw, err := dataset.LoadWithOptions(path, dataset.LoadOptions{
		Progress: func(int) { _ = bar.Add(1) },
	})
	_ = bar.Finish()
	if err != nil {
		return nil, err
	}
	return dataset.Clean(raw), nil
}

// dataPath resolves the source CSV path from flag, config, or env.
func dataPath() string {
	return viper.GetString(config.KeyDataPath)
}

// criteriaFromFlags builds filter criteria from the shared filter flags,
// falling back to the dataset-derived defaults.
func criteriaFromFlags(ds *dataset.Dataset, sectors, sizes []string, minRating float64) model.FilterCriteria {
	if len(sectors) == 0 {
		sectors = config.DefaultSectors(ds.Sectors())
	}
	if len(sizes) == 0 {
		sizes = config.DefaultSizes(ds.Sizes())
	}
	return model.NewFilterCriteria(sectors, sizes, minRating)
}
