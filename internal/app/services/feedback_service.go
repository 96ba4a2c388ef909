package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
)

// feedbackStore abstracts the persistence operations FeedbackService needs.
type feedbackStore interface {
	GetAll(ctx context.Context) ([]models.Feedback, error)
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	Find(ctx context.Context, filter bson.M) ([]models.Feedback, error)
	Create(ctx context.Context, feedback *models.Feedback) error
	Update(ctx context.Context, id string, feedback *models.Feedback) error
	Remove(ctx context.Context, id string) error
}

// FeedbackService defines the interface for contact-form feedback
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, feedback *models.Feedback) error
	GetAllFeedback(ctx context.Context) ([]models.Feedback, error)
	ListUnresolved(ctx context.Context) ([]models.Feedback, error)
	MarkResolved(ctx context.Context, id string) error
	DeleteFeedback(ctx context.Context, id string) error
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo feedbackStore
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo feedbackStore) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
	}
}

// SubmitFeedback validates and stores a feedback submission
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, feedback *models.Feedback) error {
	if feedback == nil {
		return fmt.Errorf("%w: feedback is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(feedback.Name) == "" ||
		strings.TrimSpace(feedback.Email) == "" ||
		strings.TrimSpace(feedback.Subject) == "" ||
		strings.TrimSpace(feedback.Message) == "" {
		return fmt.Errorf("%w: name, email, subject, and message are required", apperrors.ErrValidationFailed)
	}

	if feedback.Rating < 1 || feedback.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidationFailed)
	}

	feedback.SubmissionDate = time.Now()
	feedback.IsResolved = false

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return fmt.Errorf("error storing feedback: %w", err)
	}

	return nil
}

// GetAllFeedback retrieves all feedback entries
func (s *feedbackServiceImpl) GetAllFeedback(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepo.GetAll(ctx)
}

// ListUnresolved retrieves feedback entries that have not been resolved
func (s *feedbackServiceImpl) ListUnresolved(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepo.Find(ctx, bson.M{"isResolved": false})
}

// MarkResolved marks a feedback entry as resolved. Resolving an
// already-resolved entry is a no-op.
func (s *feedbackServiceImpl) MarkResolved(ctx context.Context, id string) error {
	feedback, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return err
	}

	if feedback.IsResolved {
		return nil
	}

	feedback.IsResolved = true
	if err := s.feedbackRepo.Update(ctx, id, feedback); err != nil {
		return fmt.Errorf("error marking feedback resolved: %w", err)
	}

	return nil
}

// DeleteFeedback removes a feedback entry
func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id string) error {
	if err := s.feedbackRepo.Remove(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	return nil
}
