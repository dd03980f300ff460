package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// flakyStore fails uploads whose content starts with "FAIL" and returns a
// deterministic URL for the rest.
type flakyStore struct{}

func (flakyStore) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if bytes.HasPrefix(data, []byte("FAIL")) {
		return "", errors.New("storage unavailable")
	}
	return "https://cdn.example/photos/" + key, nil
}

func photoForm(t *testing.T, contents []string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, content := range contents {
		fw, err := w.CreateFormFile("files", "photo.jpg")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.Copy(fw, strings.NewReader(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/v1/photos", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["files"]
}

func TestUploadAll(t *testing.T) {
	mgr := &PhotoMgr{name: "photos", client: flakyStore{}}

	Convey("all uploads succeeding returns every URL in file order", t, func() {
		files := photoForm(t, []string{"one", "two", "three"})
		urls, failed := mgr.uploadAll(context.Background(), 7, nil, files)

		So(failed, ShouldEqual, 0)
		So(urls, ShouldHaveLength, 3)
	})

	Convey("one failed upload is counted while the rest of the URLs are kept", t, func() {
		files := photoForm(t, []string{"one", "FAIL two", "three"})
		urls, failed := mgr.uploadAll(context.Background(), 7, nil, files)

		So(failed, ShouldEqual, 1)
		So(urls, ShouldHaveLength, 2)
	})

	Convey("all uploads failing returns no URLs and the full count", t, func() {
		files := photoForm(t, []string{"FAIL", "FAIL"})
		urls, failed := mgr.uploadAll(context.Background(), 7, nil, files)

		So(failed, ShouldEqual, 2)
		So(urls, ShouldBeEmpty)
	})
}

func TestValidatePhoto(t *testing.T) {
	files := photoForm(t, []string{"data"})
	fh := files[0]

	Convey("non-image content types are rejected", t, func() {
		fh.Header.Set("Content-Type", "application/pdf")
		So(validatePhoto(fh), ShouldNotBeNil)
	})

	Convey("image content types within the size limit pass", t, func() {
		fh.Header.Set("Content-Type", "image/jpeg")
		So(validatePhoto(fh), ShouldBeNil)
	})

	Convey("oversized files are rejected", t, func() {
		fh.Header.Set("Content-Type", "image/jpeg")
		fh.Size = maxPhotoSize + 1
		So(validatePhoto(fh), ShouldNotBeNil)
	})
}
