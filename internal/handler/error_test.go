package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/bilaad-labs/estate-pulse/dao/store"
)

func recordStoreError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	storeError(c, err)
	return w
}

func TestStoreError(t *testing.T) {
	Convey("a gateway not-found is a 404", t, func() {
		w := recordStoreError(store.ErrNotFound)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("a foreign-key violation is a 409, e.g. deleting a project with live units", t, func() {
		w := recordStoreError(&pgconn.PgError{Code: pgForeignKeyViolation})
		So(w.Code, ShouldEqual, http.StatusConflict)
		So(w.Body.String(), ShouldContainSubstring, "related records")
	})

	Convey("a unique violation is a 409", t, func() {
		w := recordStoreError(&pgconn.PgError{Code: pgUniqueViolation})
		So(w.Code, ShouldEqual, http.StatusConflict)
	})

	Convey("anything else falls back to the raw message", t, func() {
		w := recordStoreError(errors.New("connection refused"))
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, "connection refused")
	})
}
