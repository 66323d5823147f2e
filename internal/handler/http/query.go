package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BuildQuery encodes a sparse parameter map into a query string. Nil and
// empty value lists are omitted; list-valued fields emit one parameter per
// element. Keys are encoded in the order given, values in slice order.
func BuildQuery(keys []string, values map[string][]string) string {
	var b strings.Builder
	for _, key := range keys {
		list, ok := values[key]
		if !ok {
			continue
		}
		for _, value := range list {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}

// query parameter parsing helpers shared by the list handlers

func queryString(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func queryStrings(r *http.Request, key string) []string {
	values := r.URL.Query()[key]
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}

func queryInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return value
}

func queryBool(r *http.Request, key string) *bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(key))
	if err != nil {
		return nil
	}
	return &value
}

func queryDate(r *http.Request, key string) *time.Time {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
