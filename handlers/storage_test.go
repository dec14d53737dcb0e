// File: handlers/storage_test.go
package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"afinare/services/storage"

	"github.com/gin-gonic/gin"
)

type fakeStorageService struct {
	uploadedFolder  string
	deletedPublicID string
}

func (s *fakeStorageService) UploadImage(ctx context.Context, file interface{}, folder string) (*storage.UploadedImage, error) {
	s.uploadedFolder = folder
	return &storage.UploadedImage{URL: "https://cdn.example/" + folder + "/img.jpg", PublicID: folder + "/1717400000000"}, nil
}

func (s *fakeStorageService) DeleteImage(ctx context.Context, publicID string) error {
	s.deletedPublicID = publicID
	return nil
}

func newStorageRouter(svc storage.StorageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &StorageHandler{StorageSvc: svc}
	r := gin.New()
	r.POST("/api/admin/upload/:folder", h.UploadImageHandler)
	r.POST("/api/admin/upload/:folder/:id", h.UploadImageHandler)
	r.DELETE("/api/admin/upload/*publicId", h.DeleteImageHandler)
	return r
}

func multipartFile(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "foto.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return body, w.FormDataContentType()
}

func TestUploadImageIntoEntityFolder(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	body, contentType := multipartFile(t)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/servicos/limpeza-de-pele", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.uploadedFolder != "servicos/limpeza-de-pele" {
		t.Errorf("folder = %q, want servicos/limpeza-de-pele", svc.uploadedFolder)
	}
}

func TestUploadImageRejectsUnknownFolder(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	body, contentType := multipartFile(t)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload/fotos", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.uploadedFolder != "" {
		t.Errorf("upload reached the store for folder %q", svc.uploadedFolder)
	}
}

func TestDeleteImagePassesFullPublicID(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/upload/servicos/limpeza-de-pele/1717400000000", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.deletedPublicID != "servicos/limpeza-de-pele/1717400000000" {
		t.Errorf("publicID = %q, want servicos/limpeza-de-pele/1717400000000", svc.deletedPublicID)
	}
}

func TestDeleteImageRejectsEmptyPublicID(t *testing.T) {
	svc := &fakeStorageService{}
	r := newStorageRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/upload/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.deletedPublicID != "" {
		t.Errorf("delete reached the store for %q", svc.deletedPublicID)
	}
}
