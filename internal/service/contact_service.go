package service

import (
	"context"
	"log"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
	"github.com/KlorPe000/kubenko-production-studio/internal/validation"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req repository.CreateSubmissionRequest, files []models.UploadedFile, totalPrice int) (*models.ContactSubmission, error)
	GetSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
}

type contactService struct {
	submissionRepo repository.SubmissionRepository
	notify         NotificationService
	validator      *validation.Validator
}

func NewContactService(submissionRepo repository.SubmissionRepository, notify NotificationService, validator *validation.Validator) ContactService {
	return &contactService{
		submissionRepo: submissionRepo,
		notify:         notify,
		validator:      validator,
	}
}

// SubmitContact проводить заявку через валідацію, збереження та сповіщення.
// Заявка вважається успішною щойно збережена: збій доставки лише логується.
func (s *contactService) SubmitContact(ctx context.Context, req repository.CreateSubmissionRequest, files []models.UploadedFile, totalPrice int) (*models.ContactSubmission, error) {
	if err := s.validator.ValidateSubmission(&req); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.notify.Dispatch(ctx, submission, files, totalPrice); err != nil {
		log.Printf("Помилка відправки сповіщення про заявку #%d: %v", submission.ID, err)
	}

	return submission, nil
}

func (s *contactService) GetSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	return s.submissionRepo.GetAll(ctx)
}
