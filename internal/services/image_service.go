package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"crowdfunding-service/internal/apperrors"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// ImageService stores project cover images in MinIO and rewrites the
// project's image URL to the platform's own download route.
type ImageService struct {
	projects *repository.ProjectRepository
	minio    *minio.Client
	bucket   string
}

// NewImageService creates a new ImageService with the given repository and storage client.
func NewImageService(projects *repository.ProjectRepository, minioClient *minio.Client, bucket string) *ImageService {
	return &ImageService{
		projects: projects,
		minio:    minioClient,
		bucket:   bucket,
	}
}

// isAllowedImageExtension checks if a file extension is supported for project images.
func isAllowedImageExtension(ext string) bool {
	allowed := map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	}
	return allowed[ext]
}

func imageContentType(ext string) string {
	types := map[string]string{
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".gif":  "image/gif",
		".webp": "image/webp",
	}
	if ct, ok := types[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// UploadProjectImage stores the uploaded file under a fresh storage key
// and points the project's image_url at the download route.
func (s *ImageService) UploadProjectImage(ctx context.Context, projectID uint, fileHeader *multipart.FileHeader) (*models.Project, error) {
	project, err := s.projects.GetProject(projectID)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !isAllowedImageExtension(ext) {
		return nil, apperrors.Validationf("unsupported image format %q", ext)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	key := uuid.New().String() + ext
	_, err = s.minio.PutObject(ctx, s.bucket, key, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: imageContentType(ext),
	})
	if err != nil {
		return nil, errors.Wrap(err, "store image")
	}

	// Replace a previously uploaded image, if any.
	if project.ImageKey != "" {
		_ = s.minio.RemoveObject(ctx, s.bucket, project.ImageKey, minio.RemoveObjectOptions{})
	}

	imageURL := fmt.Sprintf("/api/projects/%d/image", projectID)
	project.ImageKey = key
	project.ImageURL = &imageURL
	if err := s.projects.UpdateProject(project); err != nil {
		return nil, errors.Wrap(err, "update project image")
	}
	// Re-read: pledges may have landed while the image was uploading.
	updated, err := s.projects.GetProject(projectID)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}
	return updated, nil
}

// DownloadProjectImage streams a project's stored image and reports its
// content type.
func (s *ImageService) DownloadProjectImage(ctx context.Context, projectID uint) (io.ReadCloser, string, error) {
	project, err := s.projects.GetProject(projectID)
	if err != nil {
		return nil, "", notFoundOr(err, "project")
	}
	if project.ImageKey == "" {
		return nil, "", apperrors.NotFoundf("project image not found")
	}
	object, err := s.minio.GetObject(ctx, s.bucket, project.ImageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "fetch image")
	}
	stat, err := object.Stat()
	if err != nil {
		_ = object.Close()
		return nil, "", errors.Wrap(err, "stat image")
	}
	return object, stat.ContentType, nil
}
