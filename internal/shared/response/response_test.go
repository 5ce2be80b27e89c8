package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewWindowMeta(t *testing.T) {
	meta := NewWindowMeta(45, 20, 10)
	assert.Equal(t, PaginationMeta{Total: 45, TotalPages: 5, Page: 3, PageSize: 10, Skip: 20}, meta)
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, http.StatusForbidden, "FORBIDDEN", "nope")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"FORBIDDEN","message":"nope","details":null}}`, w.Body.String())
}
