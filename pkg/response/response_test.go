package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestSuccessAndCreated(t *testing.T) {
	t.Run("Success返回200", func(t *testing.T) {
		c, w := newContext()
		Success(c, gin.H{"id": 1})

		assert.Equal(t, http.StatusOK, w.Code)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 0, body.Code)
	})

	t.Run("Created返回201", func(t *testing.T) {
		c, w := newContext()
		Created(c, gin.H{"id": 1})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("NoContent无响应体", func(t *testing.T) {
		c, w := newContext()
		NoContent(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestError(t *testing.T) {
	t.Run("业务错误映射HTTP状态码", func(t *testing.T) {
		c, w := newContext()
		Error(c, apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Author with id %d not found", 3))

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperrors.ErrCodeAuthorNotFound, body.Code)
		assert.Equal(t, "Author with id 3 not found", body.Message)
		assert.Nil(t, body.Data)
	})

	t.Run("未知错误不泄露内部信息", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("dial tcp 10.0.0.1:3306: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
	})
}
