package server

import (
	"net/http"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gridguard/landing/internal/config"
)

// DefaultCacheControl applies to static paths no rule matches.
const DefaultCacheControl = "no-cache"

// CacheControl sets Cache-Control on static responses from the first rule
// whose pattern matches the path below /static/.
func CacheControl(rules []config.CacheRule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", MatchCacheRule(rules, strings.TrimPrefix(r.URL.Path, "/static/")))
			next.ServeHTTP(w, r)
		})
	}
}

// MatchCacheRule returns the Cache-Control value for name.
func MatchCacheRule(rules []config.CacheRule, name string) string {
	for _, rule := range rules {
		if ok, _ := doublestar.Match(rule.Pattern, name); ok {
			return rule.CacheControl
		}
	}
	return DefaultCacheControl
}
