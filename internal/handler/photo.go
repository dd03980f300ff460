package handler

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/bilaad-labs/estate-pulse/internal/resputil"
	"github.com/bilaad-labs/estate-pulse/pkg/logutils"
	"github.com/bilaad-labs/estate-pulse/pkg/objectstore"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewPhotoMgr)
}

const (
	maxPhotoFiles = 10
	maxPhotoSize  = 5 << 20 // 5MB per file
)

type PhotoMgr struct {
	name   string
	client objectstore.Client
}

func NewPhotoMgr(conf *RegisterConfig) Manager {
	return &PhotoMgr{
		name:   "photos",
		client: conf.ObjectStore,
	}
}

func (mgr *PhotoMgr) GetName() string { return mgr.name }

func (mgr *PhotoMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *PhotoMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/photos", mgr.UploadPhotos)
}

func (mgr *PhotoMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type UploadPhotosForm struct {
	ProjectID uint  `form:"projectId" binding:"required"`
	UnitID    *uint `form:"unitId"`
}

type UploadPhotosResp struct {
	URLs []string `json:"urls"`
	// Failed counts uploads that did not make it; the URLs of the ones that
	// did are kept regardless.
	Failed int `json:"failed"`
}

// UploadPhotos godoc
// @Summary Upload progress photos
// @Description One storage request per file, issued concurrently. Files that
// @Description fail are reported by count and never retried; successful ones
// @Description are kept.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param projectId formData int true "project ID"
// @Param unitId formData int false "unit ID; omitted for project-level photos"
// @Param files formData file true "image files"
// @Success 200 {object} resputil.Response[UploadPhotosResp] "public URLs and failure count"
// @Failure 400 {object} resputil.Response[any] "Request parameter error"
// @Failure 500 {object} resputil.Response[any] "Other errors"
// @Router /v1/photos [post]
func (mgr *PhotoMgr) UploadPhotos(c *gin.Context) {
	var form UploadPhotosForm
	if err := c.ShouldBind(&form); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	mf, err := c.MultipartForm()
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	files := mf.File["files"]
	if len(files) == 0 {
		resputil.BadRequestError(c, "no files provided")
		return
	}
	if len(files) > maxPhotoFiles {
		resputil.BadRequestError(c, fmt.Sprintf("maximum %d photos allowed", maxPhotoFiles))
		return
	}
	// Validate everything up front so a bad file aborts with no partial effect.
	for i, fh := range files {
		if err := validatePhoto(fh); err != nil {
			resputil.BadRequestError(c, fmt.Sprintf("file %d: %v", i+1, err))
			return
		}
	}

	// The request context, not the gin context: the goroutines in uploadAll
	// must not touch gin state.
	urls, failed := mgr.uploadAll(c.Request.Context(), form.ProjectID, form.UnitID, files)
	resputil.Success(c, UploadPhotosResp{URLs: urls, Failed: failed})
}

func validatePhoto(fh *multipart.FileHeader) error {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return fmt.Errorf("only image files are allowed")
	}
	if fh.Size > maxPhotoSize {
		return fmt.Errorf("file size must be less than %dMB", maxPhotoSize>>20)
	}
	return nil
}

// uploadAll issues one upload per file concurrently and waits for all to
// settle. Successful URLs come back in file order; failures only bump the
// count.
func (mgr *PhotoMgr) uploadAll(ctx context.Context, projectID uint, unitID *uint, files []*multipart.FileHeader) ([]string, int) {
	results := make([]string, len(files))
	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			url, err := mgr.uploadOne(ctx, projectID, unitID, fh)
			if err != nil {
				logutils.Log.Errorf("upload %s: %v", fh.Filename, err)
				return
			}
			results[i] = url
		}(i, fh)
	}
	wg.Wait()

	urls := make([]string, 0, len(files))
	failed := 0
	for _, url := range results {
		if url == "" {
			failed++
			continue
		}
		urls = append(urls, url)
	}
	return urls, failed
}

func (mgr *PhotoMgr) uploadOne(ctx context.Context, projectID uint, unitID *uint, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := objectstore.PhotoKey(projectID, unitID, fh.Filename)
	return mgr.client.Upload(ctx, key, f, fh.Size, fh.Header.Get("Content-Type"))
}
