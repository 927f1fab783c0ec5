// Package media resolves publisher names to favicon URLs for item cards.
package media

import "strings"

var logos = map[string]string{
	"NHK":          "https://www3.nhk.or.jp/favicon.ico",
	"Yahoo":        "https://s.yimg.jp/c/icon/s/bsc/2.0/favicon.ico",
	"共同":           "https://www.kyodo.co.jp/favicon.ico",
	"共同通信":         "https://www.kyodo.co.jp/favicon.ico",
	"Kyodo":        "https://www.kyodo.co.jp/favicon.ico",
	"朝日":           "https://www.asahi.com/favicon.ico",
	"読売":           "https://www.yomiuri.co.jp/favicon.ico",
	"每日":           "https://mainichi.jp/favicon.ico",
	"毎日":           "https://mainichi.jp/favicon.ico",
	"日経":           "https://www.nikkei.com/favicon.ico",
	"产经":           "https://www.sankei.com/favicon.ico",
	"産経":           "https://www.sankei.com/favicon.ico",
	"时事":           "https://www.jiji.com/favicon.ico",
	"TBS":          "https://news.tbs.co.jp/favicon.ico",
	"FNN":          "https://www.fnn.jp/favicon.ico",
	"Bloomberg":    "https://assets.bloomberg.com/static/images/favicon.ico",
	"CNN":          "https://cnn.co.jp/favicon.ico",
	"Reuters":      "https://www.reuters.com/favicon.ico",
	"路透":           "https://www.reuters.com/favicon.ico",
	"BBC":          "https://www.bbc.com/favicon.ico",
	"Record China": "https://d36u79445858l5.cloudfront.net/static/img/favicon.ico",
	"東洋経済":         "https://toyokeizai.net/favicon.ico",
	"JBpress":      "https://jbpress.ismedia.jp/favicon.ico",
}

// LogoFor returns the favicon URL for a publisher, or "" if unknown.
// An exact match wins; otherwise the longest known name contained in the
// origin is used, so "NHK News" resolves to NHK.
func LogoFor(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return ""
	}
	if url, ok := logos[origin]; ok {
		return url
	}

	best := ""
	for name := range logos {
		if !strings.Contains(origin, name) {
			continue
		}
		if len(name) > len(best) || (len(name) == len(best) && name < best) {
			best = name
		}
	}
	if best == "" {
		return ""
	}
	return logos[best]
}
