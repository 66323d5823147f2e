package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		values map[string][]string
		want   string
	}{
		{
			name:   "empty input",
			keys:   nil,
			values: map[string][]string{},
			want:   "",
		},
		{
			name:   "single scalar",
			keys:   []string{"status"},
			values: map[string][]string{"status": {"PENDING"}},
			want:   "status=PENDING",
		},
		{
			name: "absent keys are omitted",
			keys: []string{"personnel_ids", "status"},
			values: map[string][]string{
				"personnel_ids": {"1", "2"},
			},
			want: "personnel_ids=1&personnel_ids=2",
		},
		{
			name: "one parameter per array element",
			keys: []string{"start_date", "personnel_ids"},
			values: map[string][]string{
				"start_date":    {"2026-03-01"},
				"personnel_ids": {"a", "b", "c"},
			},
			want: "start_date=2026-03-01&personnel_ids=a&personnel_ids=b&personnel_ids=c",
		},
		{
			name:   "values are url encoded",
			keys:   []string{"search"},
			values: map[string][]string{"search": {"a b&c"}},
			want:   "search=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.keys, tt.values))
		})
	}
}

func TestBuildQueryParameterCounts(t *testing.T) {
	got := BuildQuery(
		[]string{"personnel_ids", "status"},
		map[string][]string{"personnel_ids": {"1", "2"}},
	)

	assert.Equal(t, 2, strings.Count(got, "personnel_ids="))
	assert.NotContains(t, got, "status")
}
