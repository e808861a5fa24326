package respond

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)
	return c, w
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestWriteKnownStatuses(t *testing.T) {
	tests := []struct {
		status  int
		message string
	}{
		{200, "OK"},
		{201, "Created"},
		{400, "Bad Request"},
		{401, "Unauthorized"},
		{404, "Not Found"},
		{405, "Method Not Allowed"},
		{409, "Conflict"},
		{500, "Internal Server Error"},
	}
	for _, tt := range tests {
		c, w := testContext(t)
		Write(c, tt.status)

		assert.Equal(t, tt.status, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		body := decode(t, w.Body.Bytes())
		assert.Equal(t, tt.message, body["message"])
		// data defaults to an empty string
		assert.Equal(t, "", body["data"])
	}
}

func TestWriteUnknownStatus(t *testing.T) {
	c, w := testContext(t)
	Write(c, 418)

	assert.Equal(t, 418, w.Code)
	body := decode(t, w.Body.Bytes())
	assert.Equal(t, "Unknown status", body["message"])
}

func TestWriteWithData(t *testing.T) {
	c, w := testContext(t)
	Write(c, 200, gin.H{"maps": []string{"a"}})

	body := decode(t, w.Body.Bytes())
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a"}, data["maps"])
}

func TestWriteMarshalFailureFallsBack(t *testing.T) {
	c, w := testContext(t)
	// functions cannot be marshaled; the formatter must degrade to
	// the fixed 500 envelope instead of failing upward
	Write(c, 200, gin.H{"bad": func() {}})

	assert.Equal(t, 500, w.Code)
	body := decode(t, w.Body.Bytes())
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.Equal(t, "", body["data"])
}
