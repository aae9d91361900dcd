package query

import (
	"net/url"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Descriptor
	}{
		{
			name: "empty input uses defaults",
			raw:  "",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0},
		},
		{
			name: "zero page defaults to 1",
			raw:  "page=0",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0},
		},
		{
			name: "negative page defaults to 1",
			raw:  "page=-3",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0},
		},
		{
			name: "non-numeric page defaults to 1",
			raw:  "page=abc&limit=xyz",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0},
		},
		{
			name: "limit clamped to max",
			raw:  "limit=10000",
			want: Descriptor{Page: 1, Limit: MaxLimit, Skip: 0},
		},
		{
			name: "skip derived from page and limit",
			raw:  "page=3&limit=20",
			want: Descriptor{Page: 3, Limit: 20, Skip: 40},
		},
		{
			name: "search and category trimmed",
			raw:  "search=+golang+&category=+courses+",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0, Search: "golang", Category: "courses"},
		},
		{
			name: "category all means no filter",
			raw:  "category=all",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0},
		},
		{
			name: "category ALL is case insensitive",
			raw:  "category=ALL",
			want: Descriptor{Page: 1, Limit: DefaultLimit, Skip: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.raw, err)
			}

			got := Parse(values)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
