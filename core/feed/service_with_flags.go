// ABOUTME: Feed fetching with feature flag support
// ABOUTME: Lets operators bypass the last-good document cache at runtime

package feed

import (
	"context"

	"newsboard-api/core/domain"
	"newsboard-api/pkg/featureflags"
)

// FetchWithFlags fetches the feed, honouring the feed cache feature flag
// carried by ctx
func (s *FeedService) FetchWithFlags(ctx context.Context) (domain.FeedDocument, error) {
	if featureflags.IsEnabled(ctx, featureflags.FeedCacheDisabled) {
		s.deps.Logger.Debug("Feed cache disabled by feature flag", map[string]interface{}{
			"source":  s.source,
			"feature": string(featureflags.FeedCacheDisabled),
		})
		return s.FetchFresh(ctx)
	}
	return s.Fetch(ctx)
}
