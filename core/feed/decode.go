// ABOUTME: Feed document decoding for the published data.json payload
// ABOUTME: Accepts the {news, last_updated} object and the legacy bare array; never fails

package feed

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"newsboard-api/core/domain"
	"newsboard-api/pkg/utils/html"
	timeutil "newsboard-api/pkg/utils/time"
)

// document is the current producer shape
type document struct {
	News        []json.RawMessage `json:"news"`
	LastUpdated string            `json:"last_updated"`
}

// wireItem mirrors domain.NewsItem but tolerates numeric-string timestamps
type wireItem struct {
	Link         string      `json:"link"`
	Title        string      `json:"title"`
	TitleAlt     string      `json:"title_tc"`
	TitleForeign string      `json:"title_ja"`
	Category     string      `json:"category"`
	Origin       string      `json:"origin"`
	TimeDisplay  string      `json:"time_str"`
	Timestamp    json.Number `json:"timestamp"`
	ImageURL     string      `json:"image"`
}

// DecodeDocument turns raw feed bytes into a document. An object with a
// "news" array is the current shape; a top-level array is the legacy shape
// without a last-updated stamp. Anything else decodes to an empty feed.
// Items without a link or title are dropped.
func DecodeDocument(data []byte) domain.FeedDocument {
	doc, _ := decodeDocument(data)
	return doc
}

// decodeDocument reports whether data had one of the two feed shapes
func decodeDocument(data []byte) (domain.FeedDocument, bool) {
	empty := domain.FeedDocument{Items: []domain.NewsItem{}}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return empty, false
	}

	var raw []json.RawMessage
	var lastUpdated string

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return empty, false
		}
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return empty, false
		}
		if doc.News == nil {
			return empty, false
		}
		raw = doc.News
		lastUpdated = doc.LastUpdated
	default:
		return empty, false
	}

	items := make([]domain.NewsItem, 0, len(raw))
	for _, msg := range raw {
		item, ok := decodeItem(msg)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return domain.FeedDocument{Items: items, LastUpdated: lastUpdated}, true
}

func decodeItem(msg json.RawMessage) (domain.NewsItem, bool) {
	var w wireItem
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	if err := dec.Decode(&w); err != nil {
		// a string timestamp fails the json.Number decode only when it is
		// not numeric; retry without it
		w = wireItem{}
		var loose map[string]json.RawMessage
		if json.Unmarshal(msg, &loose) != nil {
			return domain.NewsItem{}, false
		}
		delete(loose, "timestamp")
		stripped, _ := json.Marshal(loose)
		if json.Unmarshal(stripped, &w) != nil {
			return domain.NewsItem{}, false
		}
	}

	item := domain.NewsItem{
		Link:         strings.TrimSpace(w.Link),
		Title:        html.StripHTML(w.Title),
		TitleAlt:     html.StripHTML(w.TitleAlt),
		TitleForeign: html.StripHTML(w.TitleForeign),
		Category:     w.Category,
		Origin:       html.StripHTML(w.Origin),
		TimeDisplay:  w.TimeDisplay,
		Timestamp:    parseTimestamp(w.Timestamp),
		ImageURL:     w.ImageURL,
	}
	return item, item.IsValid()
}

// parseTimestamp truncates fractional seconds; anything unusable is 0
func parseTimestamp(n json.Number) int64 {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0
		}
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt64 {
		return 0
	}
	return int64(f)
}

var chineseStamp = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日\s*(\d{1,2})[时時:](\d{1,2})分?$`)

// LastUpdatedTime parses the producer's stamp, e.g. "2025年11月29日 21时22分",
// in loc. Other common layouts are accepted too. A zero time means unparseable.
func LastUpdatedTime(stamp string, loc *time.Location) time.Time {
	stamp = strings.TrimSpace(stamp)
	if stamp == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}

	if m := chineseStamp.FindStringSubmatch(stamp); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
			return time.Time{}
		}
		return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	}

	return timeutil.ParseFlexibleTimeIn(stamp, loc)
}
