package utils

import (
	"net/http"
	"strconv"

	"github.com/JMURv/courseguard/internal/config"
)

func ParsePaginationValues(r *http.Request) (int, int) {
	page, size := config.DefaultPage, config.DefaultSize

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	if s, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && s > 0 {
		size = s
	}

	return page, size
}

func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)

	if v := r.URL.Query().Get("is_active"); v != "" {
		filters["is_active"] = v == "true"
	}

	if v := r.URL.Query().Get("severity"); v != "" {
		filters["severity"] = v
	}

	if v := r.URL.Query().Get("event_type"); v != "" {
		filters["event_type"] = v
	}

	return filters
}
