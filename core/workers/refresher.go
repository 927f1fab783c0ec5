// ABOUTME: Feed refresher polls the feed source and publishes new documents
// ABOUTME: Provides a managed background loop with Start/Stop lifecycle

package workers

import (
	"context"
	"sync"
	"time"

	"newsboard-api/core/domain"
	"newsboard-api/core/interfaces"
)

// FeedFetcher loads the current feed document
type FeedFetcher interface {
	FetchWithFlags(ctx context.Context) (domain.FeedDocument, error)
}

// FeedPublisher receives freshly fetched documents
type FeedPublisher interface {
	Publish(doc domain.FeedDocument)
}

// RefresherConfig holds configuration for the feed refresher
type RefresherConfig struct {
	// Interval between fetches
	Interval time.Duration

	// Timeout bounds a single fetch
	Timeout time.Duration
}

// DefaultRefresherConfig returns the default refresher configuration
func DefaultRefresherConfig() RefresherConfig {
	return RefresherConfig{
		Interval: 5 * time.Minute,
		Timeout:  30 * time.Second,
	}
}

// FeedRefresher keeps the published feed current
type FeedRefresher struct {
	fetcher   FeedFetcher
	publisher FeedPublisher
	logger    interfaces.Logger
	config    RefresherConfig

	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
}

// NewFeedRefresher creates a new feed refresher
func NewFeedRefresher(fetcher FeedFetcher, publisher FeedPublisher, logger interfaces.Logger, config RefresherConfig) *FeedRefresher {
	if config.Interval <= 0 {
		config.Interval = DefaultRefresherConfig().Interval
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultRefresherConfig().Timeout
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &FeedRefresher{
		fetcher:   fetcher,
		publisher: publisher,
		logger:    logger,
		config:    config,
	}
}

// Start begins polling. The first fetch happens immediately. Values carried
// by ctx, such as the feature flag manager, are visible to every fetch.
func (r *FeedRefresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}

	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	go r.run(loopCtx)

	r.running = true
	return nil
}

// Stop stops polling and waits for an in-flight fetch to finish
func (r *FeedRefresher) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return nil
	}

	r.cancel()
	r.wg.Wait()

	r.running = false
	return nil
}

// Refresh fetches once and publishes the result. On error the current
// feed stays published.
func (r *FeedRefresher) Refresh(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	doc, err := r.fetcher.FetchWithFlags(fetchCtx)
	if err != nil {
		r.logger.Error("Feed refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	r.publisher.Publish(doc)
	return nil
}

// run is the polling loop
func (r *FeedRefresher) run(ctx context.Context) {
	defer r.wg.Done()

	_ = r.Refresh(ctx)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = r.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}
