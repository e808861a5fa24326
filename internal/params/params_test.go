package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/maps", []string{"maps"}},
		{"/maps/123", []string{"maps", "123"}},
		{"/maps/123/", []string{"maps", "123"}},
		{"users/abc/password", []string{"users", "abc", "password"}},
		{"/", []string{""}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.path), tt.path)
	}
}

func TestProcess(t *testing.T) {
	query := url.Values{"limit": []string{"5"}}

	segments, idParam, q := Process("/users/id", query)
	assert.Equal(t, []string{"users", "id"}, segments)
	assert.Equal(t, "id", idParam)
	assert.Equal(t, query, q)

	// no placeholder token, no id parameter
	_, idParam, _ = Process("/users/123", nil)
	assert.Equal(t, "", idParam)
}
