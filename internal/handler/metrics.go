package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/dao/store"
)

type MetricsMgr struct {
	name  string
	store store.Service
}

func NewMetricsMgr(conf *RegisterConfig) Manager {
	return &MetricsMgr{
		name:  "metrics",
		store: conf.Store,
	}
}

func (mgr *MetricsMgr) GetName() string { return mgr.name }

func (mgr *MetricsMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/metrics", mgr.GetMetrics)
}

func (mgr *MetricsMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MetricsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

var registry *prometheus.Registry

var promHTTPHandler http.Handler

var totalProjectsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "tracked_projects_total",
		Help: "Total number of tracked projects",
	},
)

var completedProjectsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "completed_projects_total",
		Help: "Number of projects in completed status",
	},
)

var totalUnitsGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "tracked_units_total",
		Help: "Total number of units across all projects",
	},
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMetricsMgr)
	registry = prometheus.NewRegistry()
	promHTTPHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	registry.MustRegister(totalProjectsGauge, completedProjectsGauge, totalUnitsGauge)
}

// GetMetrics refreshes the dashboard gauges from the store and serves the
// scrape.
func (mgr *MetricsMgr) GetMetrics(c *gin.Context) {
	projects := mgr.store.ListProjects(c)

	completed := 0
	units := 0
	for i := range projects {
		if projects[i].Status == model.ProjectCompleted {
			completed++
		}
		units += len(projects[i].Units)
	}
	totalProjectsGauge.Set(float64(len(projects)))
	completedProjectsGauge.Set(float64(completed))
	totalUnitsGauge.Set(float64(units))

	promHTTPHandler.ServeHTTP(c.Writer, c.Request)
}
