package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"studiointake/internal/models/db_models"
	"studiointake/internal/repositories"
	"studiointake/pkg/utils"
)

// MaxPhotosPerSubmission caps reference photos per intake.
const MaxPhotosPerSubmission = 10

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type PhotoServiceInterface interface {
	// UploadPhotos saves at most the remaining photo slots from the
	// incoming batch, silently skipping files with a disallowed content
	// type. It returns the number of photos actually saved.
	UploadPhotos(ctx context.Context, submissionID uint, files []*multipart.FileHeader) (int, error)
	// DeletePhoto removes the record unconditionally and the backing
	// file best-effort. Ownership mismatch is a not-found.
	DeletePhoto(ctx context.Context, submissionID, photoID uint) error
}

type PhotoService struct {
	photoRepo      repositories.PhotoRepositoryInterface
	submissionRepo repositories.SubmissionRepositoryInterface
	uploadDir      string
	logger         *zap.Logger
}

func NewPhotoService(
	photoRepo repositories.PhotoRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	uploadDir string,
	logger *zap.Logger,
) PhotoServiceInterface {
	return &PhotoService{
		photoRepo:      photoRepo,
		submissionRepo: submissionRepo,
		uploadDir:      uploadDir,
		logger:         logger,
	}
}

func (s *PhotoService) UploadPhotos(ctx context.Context, submissionID uint, files []*multipart.FileHeader) (int, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if sub == nil {
		return 0, utils.ErrSubmissionNotFound
	}

	count, err := s.photoRepo.CountBySubmission(ctx, submissionID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	remaining := MaxPhotosPerSubmission - int(count)
	if remaining <= 0 {
		return 0, nil
	}

	// Only the first `remaining` files of the batch are considered at
	// all; a rejected file inside that window does not free its slot for
	// a later one.
	if len(files) > remaining {
		files = files[:remaining]
	}

	saved := 0
	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		if !allowedPhotoTypes[contentType] {
			continue
		}

		relPath := filepath.ToSlash(filepath.Join(s.uploadDir, uploadName(time.Now().UTC(), file.Filename)))
		if err := s.writeFile(file, relPath); err != nil {
			s.logger.Warn("photo write failed",
				zap.Uint("submission_id", submissionID),
				zap.String("path", relPath),
				zap.Error(err))
			continue
		}

		photo := &db_models.Photo{
			SubmissionID: submissionID,
			FilePath:     relPath,
			OriginalName: file.Filename,
			ContentType:  contentType,
		}
		if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
			return saved, utils.ErrDatabaseError
		}
		saved++
	}

	return saved, nil
}

func (s *PhotoService) DeletePhoto(ctx context.Context, submissionID, photoID uint) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if photo == nil || photo.SubmissionID != submissionID {
		return utils.ErrPhotoNotFound
	}

	// Best-effort: the record goes away even if the file is already gone
	// or cannot be removed.
	if err := os.Remove(filepath.FromSlash(photo.FilePath)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("photo file removal failed",
			zap.String("path", photo.FilePath),
			zap.Error(err))
	}

	if err := s.photoRepo.DeletePhoto(ctx, photo); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PhotoService) writeFile(file *multipart.FileHeader, relPath string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.FromSlash(relPath))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// uploadName builds a collision-free filename from the UTC timestamp with
// microsecond precision plus the lowercased client extension. The client
// filename never contributes anything but the extension.
func uploadName(t time.Time, originalName string) string {
	stamp := t.Format("20060102150405") + fmt.Sprintf("%06d", t.Nanosecond()/1000)
	ext := strings.ToLower(filepath.Ext(originalName))
	return stamp + ext
}
