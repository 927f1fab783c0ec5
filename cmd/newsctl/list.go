// ABOUTME: list and categories commands
// ABOUTME: Print the filtered, searched, newest-first news window

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"newsboard-api/core/category"
	"newsboard-api/core/domain"
	"newsboard-api/core/listengine"
)

func newListCmd(a *app) *cobra.Command {
	var (
		flagCategory string
		flagSearch   string
		flagMore     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the news, newest first",
		Long: `List the visible window of the news feed.

The window starts at one page and each --more adds another page, up to the
ceiling. Favorites are marked with a star.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, true, func(ctx context.Context, s *session) error {
				e := s.engine
				key := category.NormalizeFilter(flagCategory)
				if !e.Config().Categories.IsKnown(key) {
					return fmt.Errorf("unknown category %q (see: newsctl categories)", key)
				}
				e.SetCategoryFilter(key)
				e.SetSearchQuery(flagSearch)
				for i := 0; i < flagMore; i++ {
					e.LoadMore()
				}

				printProjection(cmd.OutOrStdout(), e)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&flagCategory, "category", "c", "", "only show this category key")
	cmd.Flags().StringVarP(&flagSearch, "search", "s", "", "only show items whose title or origin contains this text")
	cmd.Flags().IntVar(&flagMore, "more", 0, "load this many extra pages")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category keys accepted by --category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, category.All)
			for _, k := range category.DefaultTable().Keys() {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
}

func printProjection(w io.Writer, e *listengine.Engine) {
	p := e.Projection()
	if p.Empty {
		fmt.Fprintln(w, "No news found.")
		return
	}

	for _, item := range p.VisibleItems {
		printItem(w, e, item, e.IsFavorite(item.Link))
	}

	fmt.Fprintf(w, "\nShowing %d of %d", len(p.VisibleItems), p.TotalMatched)
	if stamp := e.LastUpdated(); stamp != "" {
		fmt.Fprintf(w, " (updated %s)", stamp)
	}
	fmt.Fprintln(w)
	if p.HasMore {
		fmt.Fprintf(w, "More available: rerun with --more %d\n", moreNeeded(e))
	}
}

// moreNeeded is the --more value that shows the next page
func moreNeeded(e *listengine.Engine) int {
	return e.View().VisibleCount / e.Config().PageSize
}

// printItem writes a two-line card; marked items get a star
func printItem(w io.Writer, e *listengine.Engine, item domain.NewsItem, marked bool) {
	star := " "
	if marked {
		star = "*"
	}

	meta := []string{string(e.CategoryOf(item))}
	if item.Origin != "" {
		meta = append(meta, item.Origin)
	}
	if item.TimeDisplay != "" {
		meta = append(meta, item.TimeDisplay)
	}

	fmt.Fprintf(w, "%s %s\n  [%s] %s\n", star, item.Title, strings.Join(meta, " | "), item.Link)
}
