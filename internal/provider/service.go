package provider

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Repository interface {
	Create(app *Application) error
	GetByID(id int64) (*Application, error)
	ListAll() ([]*Application, error)
	UpdateStatus(id int64, status string) error
	CountByStatus() ([]*StatusCount, error)
}

type Service struct {
	repo       Repository
	uploadsDir string
	logger     *slog.Logger
}

func NewService(repo Repository, uploadsDir string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		uploadsDir: uploadsDir,
		logger:     logger,
	}
}

// Apply stores the uploaded documents and records the application as
// pending. The registration document is mandatory, the letter optional.
func (s *Service) Apply(dto ApplyDTO, registration, letter *multipart.FileHeader) (*Application, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationMissing
	}

	regPath, err := s.saveUpload(registration)
	if err != nil {
		s.logger.Error("failed to store registration document", "error", err)
		return nil, err
	}

	var letterPath *string
	if letter != nil {
		p, err := s.saveUpload(letter)
		if err != nil {
			s.logger.Error("failed to store application letter", "error", err)
			return nil, err
		}
		letterPath = &p
	}

	app := &Application{
		FirstName:        dto.FirstName,
		LastName:         dto.LastName,
		Email:            dto.Email,
		Phone:            dto.Phone,
		CompanyType:      dto.CompanyType,
		ProvidedService:  dto.ProvidedService,
		CompanyName:      dto.CompanyName,
		TaxID:            dto.TaxID,
		RegistrationPath: regPath,
		LetterPath:       letterPath,
		Status:           StatusPending,
	}

	if err := s.repo.Create(app); err != nil {
		s.logger.Error("failed to create service application", "error", err)
		return nil, err
	}

	s.logger.Info("service application submitted",
		"application_id", app.ID,
		"company", app.CompanyName)

	return app, nil
}

func (s *Service) ListAll() ([]*Application, error) {
	apps, err := s.repo.ListAll()
	if err != nil {
		s.logger.Error("failed to list service applications", "error", err)
		return nil, err
	}
	return apps, nil
}

// UpdateStatus moves an application to approved or rejected.
func (s *Service) UpdateStatus(id int64, status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		s.logger.Error("failed to update application status", "error", err, "application_id", id)
		return err
	}

	s.logger.Info("service application status updated", "application_id", id, "status", status)
	return nil
}

func (s *Service) CountByStatus() ([]*StatusCount, error) {
	counts, err := s.repo.CountByStatus()
	if err != nil {
		s.logger.Error("failed to count applications by status", "error", err)
		return nil, err
	}
	return counts, nil
}

func (s *Service) saveUpload(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fh.Filename))
	dstPath := filepath.Join(s.uploadsDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return dstPath, nil
}
