package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/internal/resputil"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name  string
	store store.Service
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name:  "projects",
		store: conf.Store,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ProjectMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/projects", mgr.ListProjects)
	g.GET("/projects/:id", mgr.GetProject)
}

func (mgr *ProjectMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/projects", mgr.CreateProject)
	g.PUT("/projects/:id", mgr.UpdateProject)
	g.DELETE("/projects/:id", mgr.DeleteProject)
}

// ListProjects godoc
// @Summary List all projects with their units
// @Description Projects ordered by creation time, each with its units attached
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} resputil.Response[[]models.Project] "all projects"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects [get]
func (mgr *ProjectMgr) ListProjects(c *gin.Context) {
	// Fail-closed: a fetch failure yields an empty list, never partial data.
	resputil.Success(c, mgr.store.ListProjects(c))
}

type ProjectURI struct {
	ID uint `uri:"id" binding:"required"`
}

// GetProject godoc
// @Summary Get one project with its units
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {object} resputil.Response[models.Project] "the project"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	var req ProjectURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	project, err := mgr.store.GetProject(c, req.ID)
	if err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, project)
}

type CreateProjectResp struct {
	ID           uint   `json:"id"`
	UnitsCreated int    `json:"unitsCreated"`
	UnitsError   string `json:"unitsError,omitempty"`
}

// CreateProject godoc
// @Summary Create a project, optionally with an initial unit batch
// @Description The project insert and the unit batch are separate steps. When
// @Description the batch fails partway the project row and the units already
// @Description written stay, and the response reports how far the batch got.
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param project body models.Project true "project entity"
// @Success 200 {object} resputil.Response[CreateProjectResp] "created IDs and batch outcome"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/admin/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := normalizeProjectDates(&project); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	for i := range project.Units {
		project.Units[i].Activities = ensurePhases(project.Units[i].Activities)
		if err := normalizeUnitDates(&project.Units[i]); err != nil {
			resputil.BadRequestError(c, err.Error())
			return
		}
	}

	id, err := mgr.store.CreateProject(c, &project)
	if err != nil {
		storeError(c, err)
		return
	}

	resp := CreateProjectResp{ID: id}
	if len(project.Units) > 0 {
		created, unitsErr := mgr.store.CreateUnits(c, id, project.Units)
		resp.UnitsCreated = created
		if unitsErr != nil {
			resp.UnitsError = unitsErr.Error()
		}
	}
	resputil.Success(c, resp)
}

// UpdateProject godoc
// @Summary Apply a sparse patch to one project
// @Description Only fields present in the body are written
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param patch body models.ProjectUpdate true "fields to change"
// @Success 200 {object} resputil.Response[string] "updated"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/admin/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	var req ProjectURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var patch models.ProjectUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := normalizeDateField(patch.StartDate); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := normalizeDateField(patch.TargetCompletion); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	if err := mgr.store.UpdateProject(c, req.ID, &patch); err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, "Project updated")
}

// DeleteProject godoc
// @Summary Delete one project
// @Description Units are not cascaded; the database decides whether the
// @Description delete is accepted while units still reference the project.
// @Tags Project
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {object} resputil.Response[string] "deleted"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/admin/projects/{id} [delete]
func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	var req ProjectURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	if err := mgr.store.DeleteProject(c, req.ID); err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, "Project deleted")
}
