package listengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard-api/core/domain"
)

func unixUTC(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix()
}

func TestBuildArchive_BucketsByDate(t *testing.T) {
	e := newTestEngine()
	e.SetFeed([]domain.NewsItem{
		item("morning", unixUTC(2025, 11, 29, 8), "", ""),
		item("evening", unixUTC(2025, 11, 29, 21), "", ""),
		item("yesterday", unixUTC(2025, 11, 28, 12), "", ""),
		item("undated", 0, "", ""),
	})

	assert.Equal(t, []string{"evening", "morning"}, links(e.ArchiveForDate("2025-11-29")))
	assert.Equal(t, []string{"yesterday"}, links(e.ArchiveForDate("2025-11-28")))
	assert.Empty(t, e.ArchiveForDate("2025-11-27"))
	assert.NotNil(t, e.ArchiveForDate("not-a-date"))
	assert.Equal(t, []string{"2025-11-29", "2025-11-28"}, e.ArchiveDates())
}

func TestBuildArchive_EveryTimestampedItemInExactlyOneBucket(t *testing.T) {
	items := manyItems(50)
	items = append(items, item("undated", 0, "", ""))
	index := BuildArchive(items, time.UTC)

	seen := map[string]int{}
	for date, bucket := range index {
		for _, it := range bucket {
			seen[it.Link]++
			assert.Equal(t, DateKey(it.Timestamp, time.UTC), date)
		}
	}
	for _, it := range items {
		if it.HasTimestamp() {
			assert.Equal(t, 1, seen[it.Link], it.Link)
		} else {
			assert.Zero(t, seen[it.Link])
		}
	}
}

func TestBuildArchive_UsesConfiguredLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	ts := unixUTC(2025, 11, 28, 20) // 05:00 on the 29th in Tokyo

	assert.Equal(t, "2025-11-28", DateKey(ts, time.UTC))
	assert.Equal(t, "2025-11-29", DateKey(ts, tokyo))

	cfg := DefaultConfig()
	cfg.Location = tokyo
	e := New(cfg, nil, nil)
	e.SetFeed([]domain.NewsItem{item("A", ts, "", "")})
	assert.Len(t, e.ArchiveForDate("2025-11-29"), 1)
}

func TestArchive_RebuiltOnSetFeed(t *testing.T) {
	e := newTestEngine()
	e.SetFeed([]domain.NewsItem{item("A", unixUTC(2025, 1, 1, 1), "", "")})
	require.Len(t, e.ArchiveForDate("2025-01-01"), 1)

	e.SetFeed([]domain.NewsItem{item("B", unixUTC(2025, 1, 2, 1), "", "")})
	assert.Empty(t, e.ArchiveForDate("2025-01-01"))
	assert.Len(t, e.ArchiveForDate("2025-01-02"), 1)
}

func TestRecentDays(t *testing.T) {
	e := newTestEngine()
	e.SetFeed([]domain.NewsItem{
		item("A", unixUTC(2025, 11, 29, 1), "", ""),
		item("B", unixUTC(2025, 11, 29, 2), "", ""),
		item("C", unixUTC(2025, 11, 24, 2), "", ""),
	})

	now := time.Date(2025, 11, 29, 22, 0, 0, 0, time.UTC)
	days := e.RecentDays(now, 7)

	require.Len(t, days, 7)
	assert.Equal(t, "2025-11-23", days[0].Date)
	assert.Equal(t, "2025-11-29", days[6].Date)
	assert.True(t, days[6].Today)
	assert.False(t, days[0].Today)
	assert.Equal(t, 2, days[6].Count)
	assert.Equal(t, 1, days[1].Count)
	assert.Equal(t, 0, days[2].Count)

	assert.Empty(t, e.RecentDays(now, 0))
}

func TestMonthCalendar(t *testing.T) {
	e := newTestEngine()
	e.SetFeed([]domain.NewsItem{
		item("A", unixUTC(2024, 2, 29, 1), "", ""),
		item("B", unixUTC(2024, 3, 1, 1), "", ""),
	})

	days := e.MonthCalendar(2024, time.February)
	require.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0].Date)
	assert.Equal(t, "2024-02-29", days[28].Date)
	assert.Equal(t, 1, days[28].Count)

	assert.Len(t, e.MonthCalendar(2025, time.April), 30)
	assert.Empty(t, e.MonthCalendar(2025, 13))
}
