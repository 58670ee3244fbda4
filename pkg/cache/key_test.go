package cache

import (
	"net/url"
	"testing"
)

func TestKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "path_only",
			key:  Key{Path: "/users/octocat"},
			want: "gh:users/octocat",
		},
		{
			name: "path_with_query",
			key: Key{
				Path:  "/users/octocat/repos",
				Query: url.Values{"page": {"2"}, "per_page": {"100"}},
			},
			want: "gh:users/octocat/repos:page=2:per_page=100",
		},
		{
			name: "empty_path",
			key:  Key{},
			want: "gh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKey_String_QueryOrderIsDeterministic(t *testing.T) {
	a := Key{
		Path:  "/search/users",
		Query: url.Values{"q": {"location:Tokyo"}, "page": {"1"}, "per_page": {"100"}},
	}
	b := Key{
		Path:  "/search/users",
		Query: url.Values{"per_page": {"100"}, "page": {"1"}, "q": {"location:Tokyo"}},
	}

	if a.String() != b.String() {
		t.Errorf("keys differ for identical params: %q vs %q", a.String(), b.String())
	}
}

func TestKey_String_DistinctParamsDistinctKeys(t *testing.T) {
	page1 := Key{Path: "/search/users", Query: url.Values{"page": {"1"}}}
	page2 := Key{Path: "/search/users", Query: url.Values{"page": {"2"}}}

	if page1.String() == page2.String() {
		t.Error("different pages must produce different cache keys")
	}
}
