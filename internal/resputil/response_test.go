package resputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) { Success(c, "done") })

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, OK, body["code"])
	assert.Equal(t, "done", body["data"])
	assert.Equal(t, "", body["msg"])
}

func TestError(t *testing.T) {
	w := record(func(c *gin.Context) { Error(c, "boom", NotSpecified) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, NotSpecified, body["code"])
	assert.Equal(t, "boom", body["msg"])
	assert.Nil(t, body["data"])
}

func TestHTTPError(t *testing.T) {
	w := record(func(c *gin.Context) { HTTPError(c, http.StatusNotFound, "missing", NotFound) })

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, NotFound, decode(t, w)["code"])
}

func TestBadRequestError(t *testing.T) {
	w := record(func(c *gin.Context) { BadRequestError(c, "bad field") })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, InvalidRequest, decode(t, w)["code"])
}
