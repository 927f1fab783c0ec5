// Package core contains the business logic of the Newsboard API.
// It is framework-agnostic and can be used without the HTTP layer; the
// newsctl command drives it directly.
//
// The core package is organized into several sub-packages:
//
// - domain: NewsItem, FavoriteEntry and FeedDocument
// - category: canonical category keys and the label table
// - media: publisher logo lookup
// - listengine: the per-client list engine (filter, search, window, favorites, archive)
// - feed: feed document decoding and fetching
// - session: one engine per client session over a shared feed
// - workers: periodic feed refresh
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (store, HTTP, logger)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - The list engine is synchronous and owned by one caller at a time
// - Persistence failures are logged, never surfaced to rendering
//
// # Usage Example
//
//	import (
//	    "newsboard-api/core/feed"
//	    "newsboard-api/core/interfaces"
//	    "newsboard-api/core/listengine"
//	)
//
//	deps := interfaces.Dependencies{
//	    Store:      myStore,      // implements interfaces.Store
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	doc, err := feed.NewFeedService(deps, "https://example.com/data.json", 0).Fetch(ctx)
//
//	engine := listengine.New(listengine.DefaultConfig(), deps.Store, deps.Logger)
//	engine.LoadFavorites(ctx)
//	engine.Load(doc)
//	engine.SetCategoryFilter("politics")
//	page := engine.Projection()
package core
