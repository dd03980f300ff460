package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/internal/resputil"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewUnitMgr)
}

type UnitMgr struct {
	name  string
	store store.Service
}

func NewUnitMgr(conf *RegisterConfig) Manager {
	return &UnitMgr{
		name:  "units",
		store: conf.Store,
	}
}

func (mgr *UnitMgr) GetName() string { return mgr.name }

func (mgr *UnitMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *UnitMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *UnitMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/projects/:id/units", mgr.CreateUnit)
	g.PUT("/units/:id", mgr.UpdateUnit)
	g.DELETE("/units/:id", mgr.DeleteUnit)
}

type UnitURI struct {
	ID uint `uri:"id" binding:"required"`
}

// CreateUnit godoc
// @Summary Create a unit under one project
// @Description Unit numbers are unique within a project by convention; a
// @Description duplicate is rejected by the store, not checked here.
// @Tags Unit
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param unit body models.Unit true "unit entity"
// @Success 200 {object} resputil.Response[any] "created unit ID"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/admin/projects/{id}/units [post]
func (mgr *UnitMgr) CreateUnit(c *gin.Context) {
	var req ProjectURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	unit.Activities = ensurePhases(unit.Activities)
	if err := normalizeUnitDates(&unit); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	id, err := mgr.store.CreateUnit(c, req.ID, &unit)
	if err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, gin.H{"id": id})
}

// UpdateUnit godoc
// @Summary Apply a sparse patch to one unit
// @Tags Unit
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "unit ID"
// @Param patch body models.UnitUpdate true "fields to change"
// @Success 200 {object} resputil.Response[string] "updated"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/admin/units/{id} [put]
func (mgr *UnitMgr) UpdateUnit(c *gin.Context) {
	var req UnitURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var patch models.UnitUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := normalizeDateField(patch.TargetCompletion); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := normalizeDateField(patch.LastUpdated); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	if err := mgr.store.UpdateUnit(c, req.ID, &patch); err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, "Unit updated")
}

// DeleteUnit godoc
// @Summary Delete one unit
// @Tags Unit
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "unit ID"
// @Success 200 {object} resputil.Response[string] "deleted"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/admin/units/{id} [delete]
func (mgr *UnitMgr) DeleteUnit(c *gin.Context) {
	var req UnitURI
	if err := c.ShouldBindUri(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	if err := mgr.store.DeleteUnit(c, req.ID); err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, "Unit deleted")
}
