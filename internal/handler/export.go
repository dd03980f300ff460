package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/internal/resputil"
	"github.com/bilaad-labs/estate-pulse/pkg/export"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewExportMgr)
}

type ExportMgr struct {
	name  string
	store store.Service
}

func NewExportMgr(conf *RegisterConfig) Manager {
	return &ExportMgr{
		name:  "export",
		store: conf.Store,
	}
}

func (mgr *ExportMgr) GetName() string { return mgr.name }

func (mgr *ExportMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ExportMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/projects/:id/export/csv", mgr.ProjectCSV)
	g.GET("/projects/:id/export/pdf", mgr.ProjectPDF)
	g.GET("/projects/:id/units/export/csv", mgr.UnitsCSV)
	g.GET("/projects/:id/units/export/pdf", mgr.UnitsPDF)
}

func (mgr *ExportMgr) RegisterAdmin(_ *gin.RouterGroup) {}

func (mgr *ExportMgr) project(c *gin.Context) *models.Project {
	var req ProjectURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return nil
	}
	project, err := mgr.store.GetProject(c, req.ID)
	if err != nil {
		storeError(c, err)
		return nil
	}
	return project
}

func download(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// ProjectCSV godoc
// @Summary Download one project as CSV
// @Tags Export
// @Produce text/csv
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id}/export/csv [get]
func (mgr *ExportMgr) ProjectCSV(c *gin.Context) {
	project := mgr.project(c)
	if project == nil {
		return
	}
	data, err := export.ProjectCSV(project)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	download(c, fmt.Sprintf("%s_project_data.csv", project.Name), "text/csv", data)
}

// ProjectPDF godoc
// @Summary Download one project as a PDF report
// @Tags Export
// @Produce application/pdf
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {string} string "PDF payload"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id}/export/pdf [get]
func (mgr *ExportMgr) ProjectPDF(c *gin.Context) {
	project := mgr.project(c)
	if project == nil {
		return
	}
	data, err := export.ProjectPDF(project)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	download(c, fmt.Sprintf("%s_project_report.pdf", project.Name), "application/pdf", data)
}

// UnitsCSV godoc
// @Summary Download one project's units as CSV
// @Tags Export
// @Produce text/csv
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id}/units/export/csv [get]
func (mgr *ExportMgr) UnitsCSV(c *gin.Context) {
	project := mgr.project(c)
	if project == nil {
		return
	}
	data, err := export.UnitsCSV(project.Units)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	download(c, fmt.Sprintf("%s_units_data.csv", project.Name), "text/csv", data)
}

// UnitsPDF godoc
// @Summary Download one project's units as a PDF report
// @Tags Export
// @Produce application/pdf
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {string} string "PDF payload"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id}/units/export/pdf [get]
func (mgr *ExportMgr) UnitsPDF(c *gin.Context) {
	project := mgr.project(c)
	if project == nil {
		return
	}
	data, err := export.UnitsPDF(project.Units, project.Name)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	download(c, fmt.Sprintf("%s_units_report.pdf", project.Name), "application/pdf", data)
}
