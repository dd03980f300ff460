package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/internal/resputil"
	"github.com/bilaad-labs/estate-pulse/pkg/dateutil"
	"github.com/bilaad-labs/estate-pulse/pkg/logutils"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
	"github.com/bilaad-labs/estate-pulse/pkg/notify"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMeetingMgr)
}

type MeetingMgr struct {
	name     string
	store    store.Service
	notifier notify.Notifier
}

func NewMeetingMgr(conf *RegisterConfig) Manager {
	return &MeetingMgr{
		name:     "meetings",
		store:    conf.Store,
		notifier: conf.Notifier,
	}
}

func (mgr *MeetingMgr) GetName() string { return mgr.name }

func (mgr *MeetingMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *MeetingMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/projects/:id/meetings", mgr.ListMeetings)
	g.POST("/projects/:id/meetings", mgr.ScheduleMeeting)
}

func (mgr *MeetingMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type ScheduleMeetingReq struct {
	MeetingDate string `json:"meetingDate" binding:"required"`
	MeetingTime string `json:"meetingTime" binding:"required"`
	Attendees   string `json:"attendees"`
}

type ScheduleMeetingResp struct {
	ID       uint `json:"id"`
	Notified bool `json:"notified"`
	// Message distinguishes partial success (saved, notification failed)
	// from the plain success case.
	Message string `json:"message"`
}

// ScheduleMeeting godoc
// @Summary Schedule a meeting for one project
// @Description Saves the meeting, then emails the configured recipient. The
// @Description two steps are not atomic: a failed email leaves the saved
// @Description meeting in place and the response says "notification failed".
// @Tags Meeting
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Param meeting body ScheduleMeetingReq true "meeting details"
// @Success 200 {object} resputil.Response[ScheduleMeetingResp] "outcome, possibly partial"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id}/meetings [post]
func (mgr *MeetingMgr) ScheduleMeeting(c *gin.Context) {
	var uri ProjectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req ScheduleMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	meetingDate, err := dateutil.Normalize(req.MeetingDate)
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	project, err := mgr.store.GetProject(c, uri.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	meeting := models.Meeting{
		ProjectID:   uri.ID,
		MeetingDate: meetingDate,
		MeetingTime: req.MeetingTime,
		Attendees:   req.Attendees,
	}
	id, err := mgr.store.CreateMeeting(c, &meeting)
	if err != nil {
		storeError(c, err)
		return
	}

	resp := ScheduleMeetingResp{ID: id, Message: "Meeting scheduled"}
	if err := mgr.notifier.MeetingScheduled(c, project.Name, meetingDate, req.MeetingTime, req.Attendees); err != nil {
		// Never fatal: the meeting row stays either way.
		logutils.Log.Warnf("meeting %d saved but notification failed: %v", id, err)
		resp.Message = "Meeting saved, notification failed"
	} else {
		resp.Notified = true
		if markErr := mgr.store.MarkMeetingNotified(c, id); markErr != nil {
			logutils.Log.Warnf("meeting %d: mark notified: %v", id, markErr)
		}
	}
	resputil.Success(c, resp)
}

// ListMeetings godoc
// @Summary List meetings scheduled for one project
// @Tags Meeting
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "project ID"
// @Success 200 {object} resputil.Response[[]models.Meeting] "meetings ordered by date"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/projects/{id}/meetings [get]
func (mgr *MeetingMgr) ListMeetings(c *gin.Context) {
	var uri ProjectURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	meetings, err := mgr.store.ListMeetings(c, uri.ID)
	if err != nil {
		storeError(c, err)
		return
	}
	resputil.Success(c, meetings)
}
