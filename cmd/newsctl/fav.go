// ABOUTME: fav command group manages the favorites kept in the local store
// ABOUTME: Toggling needs the feed only when adding a new favorite

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newFavCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorites",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorites, most recently added first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSession(cmd, false, func(ctx context.Context, s *session) error {
					out := cmd.OutOrStdout()
					e := s.engine
					favorites := e.Favorites()
					if len(favorites) == 0 {
						fmt.Fprintln(out, "No favorites yet.")
						return nil
					}
					for _, fav := range favorites {
						printItem(out, e, fav.NewsItem, !fav.IsRead)
					}
					fmt.Fprintf(out, "\n%d favorites, %d unread\n", e.FavoriteCount(), e.UnreadFavoriteCount())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "toggle LINK",
			Short: "Add an item from the feed to favorites, or remove it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				link := args[0]
				return a.withSession(cmd, false, func(ctx context.Context, s *session) error {
					e := s.engine
					out := cmd.OutOrStdout()

					for _, fav := range e.Favorites() {
						if fav.Link == link {
							e.ToggleFavorite(ctx, fav.NewsItem)
							fmt.Fprintf(out, "Removed %s\n", link)
							return nil
						}
					}

					if err := s.loadFeed(ctx); err != nil {
						return err
					}
					item, ok := e.FindItem(link)
					if !ok {
						return fmt.Errorf("no item with link %s in the feed", link)
					}
					e.ToggleFavorite(ctx, item)
					fmt.Fprintf(out, "Added %s\n", item.Title)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "read LINK",
			Short: "Mark a favorite as read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSession(cmd, false, func(ctx context.Context, s *session) error {
					if !s.engine.MarkFavoriteRead(ctx, args[0]) {
						return fmt.Errorf("%s is not a favorite", args[0])
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as read\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete LINK...",
			Short: "Remove favorites by link",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				links := make(map[string]struct{}, len(args))
				for _, link := range args {
					links[link] = struct{}{}
				}
				return a.withSession(cmd, false, func(ctx context.Context, s *session) error {
					removed := s.engine.BulkDeleteFavorites(ctx, links)
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %d favorites\n", removed)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all favorites",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSession(cmd, false, func(ctx context.Context, s *session) error {
					n := s.engine.FavoriteCount()
					s.engine.ClearFavorites(ctx)
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %d favorites\n", n)
					return nil
				})
			},
		},
	)
	return cmd
}
