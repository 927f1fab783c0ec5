// ABOUTME: Archive index buckets timestamped items by local calendar date
// ABOUTME: Also derives the week strip and month grid counts shown by the archive view

package listengine

import (
	"slices"
	"sort"
	"time"

	"newsboard-api/core/domain"
)

// DateLayout is the archive date key format
const DateLayout = "2006-01-02"

// ArchiveIndex maps a YYYY-MM-DD date to the items published that day,
// newest first
type ArchiveIndex map[string][]domain.NewsItem

// DayCount is one cell of the week strip or month grid
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Today bool   `json:"today,omitempty"`
}

// DateKey formats a timestamp as an archive date in loc
func DateKey(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format(DateLayout)
}

// BuildArchive buckets every item that carries a timestamp. Items without
// one are left out.
func BuildArchive(items []domain.NewsItem, loc *time.Location) ArchiveIndex {
	if loc == nil {
		loc = time.Local
	}
	index := ArchiveIndex{}
	for _, item := range items {
		if !item.HasTimestamp() {
			continue
		}
		key := DateKey(item.Timestamp, loc)
		index[key] = append(index[key], item)
	}
	for _, bucket := range index {
		sortByRecency(bucket)
	}
	return index
}

// ArchiveForDate returns the bucket for a YYYY-MM-DD date, or an empty list
func (e *Engine) ArchiveForDate(date string) []domain.NewsItem {
	bucket, ok := e.archive[date]
	if !ok {
		return []domain.NewsItem{}
	}
	return slices.Clone(bucket)
}

// ArchiveDates lists the dates that have items, newest first
func (e *Engine) ArchiveDates() []string {
	dates := make([]string, 0, len(e.archive))
	for date := range e.archive {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts lexically
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// RecentDays returns the last n days ending with now, oldest first, with
// the number of archived items on each
func (e *Engine) RecentDays(now time.Time, n int) []DayCount {
	if n < 1 {
		return []DayCount{}
	}
	now = now.In(e.cfg.Location)
	today := now.Format(DateLayout)
	days := make([]DayCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(DateLayout)
		days = append(days, DayCount{
			Date:  date,
			Count: len(e.archive[date]),
			Today: date == today,
		})
	}
	return days
}

// MonthCalendar returns one entry per day of the given month
func (e *Engine) MonthCalendar(year int, month time.Month) []DayCount {
	first := time.Date(year, month, 1, 12, 0, 0, 0, e.cfg.Location)
	today := time.Now().In(e.cfg.Location).Format(DateLayout)
	days := []DayCount{}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		days = append(days, DayCount{
			Date:  date,
			Count: len(e.archive[date]),
			Today: date == today,
		})
	}
	return days
}
