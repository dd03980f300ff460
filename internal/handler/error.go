package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/internal/resputil"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// storeError maps the small set of known store rejections to readable
// messages and falls back to the raw message otherwise.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		resputil.HTTPError(c, http.StatusNotFound, "Record not found", resputil.NotFound)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			resputil.HTTPError(c, http.StatusConflict, "A record with the same identifier already exists", resputil.DuplicateRecord)
			return
		case pgForeignKeyViolation:
			resputil.HTTPError(c, http.StatusConflict, "Operation rejected: related records exist or the referenced record is missing", resputil.RelatedRowExists)
			return
		}
	}

	resputil.Error(c, err.Error(), resputil.NotSpecified)
}
