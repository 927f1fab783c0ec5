// ABOUTME: FeedDocument domain model represents the published data.json payload
// ABOUTME: Holds the item sequence and the producer's last-updated stamp

package domain

// FeedDocument is the decoded feed: a news array plus the producer's
// last_updated string. Legacy array-shaped feeds have no LastUpdated.
type FeedDocument struct {
	// Items contains the feed entries in producer order
	Items []NewsItem

	// LastUpdated is the producer's human-readable refresh stamp
	LastUpdated string
}

// IsEmpty reports whether the document carries no news
func (d *FeedDocument) IsEmpty() bool {
	return len(d.Items) == 0
}

// FindByLink returns the item with the given link, if present
func (d *FeedDocument) FindByLink(link string) (NewsItem, bool) {
	for _, item := range d.Items {
		if item.Link == link {
			return item, true
		}
	}
	return NewsItem{}, false
}
