package services

import (
	"context"
	"mime/multipart"
	"path"
	"strings"

	"devjobs_backend/internal/storage"
	"devjobs_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// MaxUploadSize caps every upload at 100kb.
const MaxUploadSize int64 = 100000

// UploadPurpose fixes the destination directory and MIME allow-list for one
// kind of upload.
type UploadPurpose struct {
	Name         string
	Dir          string
	AllowedTypes map[string]bool
}

var (
	// PurposeProfileImage accepts profile pictures.
	PurposeProfileImage = UploadPurpose{
		Name: "imagen",
		Dir:  "perfiles",
		AllowedTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
		},
	}

	// PurposeResume accepts candidate resumes.
	PurposeResume = UploadPurpose{
		Name: "cv",
		Dir:  "cv",
		AllowedTypes: map[string]bool{
			"application/pdf": true,
		},
	}
)

// UploadRejection is the user-facing reason a file was turned away.
type UploadRejection string

const (
	RejectionTooLarge      UploadRejection = "El archivo es muy grande: Máximo 100kb"
	RejectionInvalidFormat UploadRejection = "Formato no válido"
)

// UploadOutcome is the single result type of the gatekeeper: either the file
// was accepted and stored under FileName, or Rejection says why not.
// Policy violations are outcomes, not errors; the error return is reserved
// for storage faults.
type UploadOutcome struct {
	FileName  string
	Rejection UploadRejection
}

func (o UploadOutcome) Accepted() bool {
	return o.Rejection == ""
}

type UploadService interface {
	Accept(ctx context.Context, file *multipart.FileHeader, purpose UploadPurpose) (UploadOutcome, error)
}

type uploadService struct {
	storage storage.Storage
	maxSize int64
}

func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	return &uploadService{
		storage: store,
		maxSize: maxSize,
	}
}

// Accept enforces the size and MIME policy, then persists the file under a
// freshly generated name. Both checks run before any bytes are written.
func (s *uploadService) Accept(ctx context.Context, file *multipart.FileHeader, purpose UploadPurpose) (UploadOutcome, error) {
	if file.Size > s.maxSize {
		return UploadOutcome{Rejection: RejectionTooLarge}, nil
	}

	declaredType := file.Header.Get("Content-Type")
	if !purpose.AllowedTypes[declaredType] {
		return UploadOutcome{Rejection: RejectionInvalidFormat}, nil
	}

	// Extension comes from the declared subtype: "image/png" -> ".png".
	subtype := declaredType[strings.Index(declaredType, "/")+1:]
	fileName := uuid.NewString() + "." + subtype

	src, err := file.Open()
	if err != nil {
		return UploadOutcome{}, apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, path.Join(purpose.Dir, fileName), src, declaredType); err != nil {
		return UploadOutcome{}, apperrors.InternalError(err)
	}

	return UploadOutcome{FileName: fileName}, nil
}
