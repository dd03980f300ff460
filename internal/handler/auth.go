package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/internal/resputil"
	"github.com/bilaad-labs/estate-pulse/internal/util"
	"github.com/bilaad-labs/estate-pulse/pkg/config"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

// AuthMgr gates the dashboard behind the configured staff credentials.
// Real identity management is the provider's job; this only issues the bearer
// token the middleware checks.
type AuthMgr struct {
	name string
}

func NewAuthMgr(_ *RegisterConfig) Manager {
	return &AuthMgr{name: "auth"}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/login", mgr.Login)
}

func (mgr *AuthMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Exchange staff credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginReq true "staff credentials"
// @Success 200 {object} resputil.Response[any] "access token"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	authConfig := config.GetConfig().Auth
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(authConfig.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(authConfig.AdminPassword)) == 1
	if !userOK || !passOK {
		resputil.Error(c, "Invalid username or password", resputil.InvalidCredentials)
		return
	}

	token, err := util.GetTokenMgr().CreateToken(&util.JWTMessage{Username: req.Username})
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, gin.H{"accessToken": token})
}
