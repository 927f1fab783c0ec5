// ABOUTME: Root command and shared state for newsctl
// ABOUTME: Opens the SQLite store under the XDG data directory and builds one list engine

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"newsboard-api/core/feed"
	"newsboard-api/core/interfaces"
	"newsboard-api/core/listengine"
	"newsboard-api/infrastructure/cache"
	stdhttp "newsboard-api/infrastructure/http/standard"
	logruslogger "newsboard-api/infrastructure/logger/logrus"
	"newsboard-api/pkg/config"
)

const defaultSource = "data.json"

// app holds what every subcommand shares
type app struct {
	source   string
	store    string
	verbose  bool
	timezone string

	// now is replaced in tests
	now func() time.Time
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{now: time.Now})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "newsctl",
		Short:        "Browse the news feed from the terminal",
		Long:         "newsctl loads the published news feed, lists it by category or search, browses the date archive and keeps favorites in a local store.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.source, "source", envOr("FEED_URL", defaultSource), "feed URL, file:// URL or local path")
	root.PersistentFlags().StringVar(&a.store, "store", "", "SQLite store path (default $XDG_DATA_HOME/newsboard/store.db)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&a.timezone, "tz", envOr("ARCHIVE_TIMEZONE", ""), "IANA timezone for archive dates (default local)")

	root.AddCommand(
		newListCmd(a),
		newArchiveCmd(a),
		newCalendarCmd(a),
		newFavCmd(a),
		newCategoriesCmd(a),
	)
	return root
}

// session is an engine bound to an open store
type session struct {
	engine *listengine.Engine
	feed   *feed.FeedService
	logger interfaces.Logger
	close  func() error
}

// open builds the engine and loads favorites. The feed is loaded on demand.
func (a *app) open(ctx context.Context, errOut io.Writer) (*session, error) {
	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logger := logruslogger.New(logruslogger.Options{Level: level, Output: errOut})

	path := a.store
	if path == "" {
		var err error
		path, err = xdg.DataFile("newsboard/store.db")
		if err != nil {
			return nil, fmt.Errorf("resolving store path: %w", err)
		}
	}

	store, closeStore, err := cache.Open(ctx, config.StoreConfig{Type: config.StoreSQLite, SQLitePath: path}, logger)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	lc := config.ListConfig{ArchiveTimezone: a.timezone}
	loc, err := lc.Location()
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	cfg := listengine.DefaultConfig()
	cfg.Location = loc
	engine := listengine.New(cfg, store, logger)
	engine.LoadFavorites(ctx)

	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: stdhttp.NewStandardHTTPClient(30 * time.Second),
		Logger:     logger,
	}

	logger.Debug("Opened store", map[string]interface{}{"path": path, "favorites": engine.FavoriteCount()})

	return &session{
		engine: engine,
		feed:   feed.NewFeedService(deps, a.source, 0),
		logger: logger,
		close:  closeStore,
	}, nil
}

// loadFeed fetches the feed into the engine. A failed fetch falls back to
// the last copy kept in the store.
func (s *session) loadFeed(ctx context.Context) error {
	doc, err := s.feed.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("loading feed from %s: %w", s.feed.Source(), err)
	}
	s.engine.Load(doc)
	return nil
}

// withSession runs fn on an opened session and closes it afterwards
func (a *app) withSession(cmd *cobra.Command, loadFeed bool, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := a.open(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	if loadFeed {
		if err := s.loadFeed(ctx); err != nil {
			return err
		}
	}
	return fn(ctx, s)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
