package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

type exportStore struct {
	store.Service
	project *models.Project
}

func (s *exportStore) GetProject(_ context.Context, id uint) (*models.Project, error) {
	if s.project == nil || s.project.ID != id {
		return nil, store.ErrNotFound
	}
	return s.project, nil
}

func exportRequest(s store.Service, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mgr := &ExportMgr{name: "export", store: s}
	mgr.RegisterProtected(r.Group(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestExportDownloads(t *testing.T) {
	s := &exportStore{project: &models.Project{
		ID:     1,
		Name:   "Garden City",
		Status: model.ProjectInProgress,
		Units: []models.Unit{
			{UnitNumber: "A-001", Type: "Apartment", Status: model.UnitInProgress},
		},
	}}

	Convey("project CSV downloads as an attachment named after the project", t, func() {
		w := exportRequest(s, "/projects/1/export/csv")

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Disposition"), ShouldEqual, `attachment; filename="Garden City_project_data.csv"`)
		So(strings.HasPrefix(w.Body.String(), "Project Name,"), ShouldBeTrue)
	})

	Convey("units CSV carries one record per unit", t, func() {
		w := exportRequest(s, "/projects/1/units/export/csv")

		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Header().Get("Content-Disposition"), ShouldEqual, `attachment; filename="Garden City_units_data.csv"`)
		So(w.Body.String(), ShouldContainSubstring, "A-001")
	})

	Convey("PDF downloads are well-formed documents", t, func() {
		for _, path := range []string{"/projects/1/export/pdf", "/projects/1/units/export/pdf"} {
			w := exportRequest(s, path)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/pdf")
			So(strings.HasPrefix(w.Body.String(), "%PDF"), ShouldBeTrue)
		}
	})

	Convey("an unknown project is a 404 for every export", t, func() {
		w := exportRequest(s, "/projects/99/export/csv")
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}
