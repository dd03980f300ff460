package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/dao/store"
	"github.com/bilaad-labs/estate-pulse/pkg/notify"
	"github.com/bilaad-labs/estate-pulse/pkg/objectstore"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig carries the shared dependencies every manager may need.
type RegisterConfig struct {
	Store       store.Service
	Notifier    notify.Notifier
	ObjectStore objectstore.Client
}

type ManagerRegisterFunc func(conf *RegisterConfig) Manager

// Registers collects the manager constructors; each handler file appends its
// own in init().
var Registers []ManagerRegisterFunc
