package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"studiointake/internal/models/db_models"
	"studiointake/internal/repositories"
	"studiointake/pkg/utils"
)

type SurveyContext struct {
	Submission *db_models.Submission
	Answers    map[string]string
	Photos     []db_models.Photo
}

type SurveyServiceInterface interface {
	Questions() []string
	// StartSubmission redeems a code and opens a DRAFT submission. It
	// returns ErrCodeInvalid when the code is unknown or inactive, which
	// the caller renders as an inline form message.
	StartSubmission(ctx context.Context, code, firstName, lastName, email string, dob time.Time) (*db_models.Submission, error)
	GetSurveyContext(ctx context.Context, submissionID uint) (*SurveyContext, error)
	// SubmitAnswers overwrites all 30 answer slots from the posted form,
	// flips the submission to SUBMITTED, and fires the architect
	// notification best-effort. A notification failure never surfaces.
	SubmitAnswers(ctx context.Context, submissionID uint, form url.Values) (*db_models.Submission, error)
}

type SurveyService struct {
	submissionRepo repositories.SubmissionRepositoryInterface
	photoRepo      repositories.PhotoRepositoryInterface
	codeService    AccessCodeServiceInterface
	notifier       NotificationServiceInterface
	logger         *zap.Logger
}

func NewSurveyService(
	submissionRepo repositories.SubmissionRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	codeService AccessCodeServiceInterface,
	notifier NotificationServiceInterface,
	logger *zap.Logger,
) SurveyServiceInterface {
	return &SurveyService{
		submissionRepo: submissionRepo,
		photoRepo:      photoRepo,
		codeService:    codeService,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *SurveyService) Questions() []string {
	return SurveyQuestions
}

func (s *SurveyService) StartSubmission(ctx context.Context, code, firstName, lastName, email string, dob time.Time) (*db_models.Submission, error) {
	record, err := s.codeService.ValidateForRedemption(ctx, code)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, utils.ErrCodeInvalid
	}

	sub := &db_models.Submission{
		Code:            code,
		ClientFirstName: strings.TrimSpace(firstName),
		ClientLastName:  strings.TrimSpace(lastName),
		ClientEmail:     strings.TrimSpace(email),
		ClientDOB:       dob,
		Status:          db_models.StatusDraft,
	}
	if err := s.submissionRepo.CreateSubmission(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sub, nil
}

func (s *SurveyService) GetSurveyContext(ctx context.Context, submissionID uint) (*SurveyContext, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubmissionNotFound
	}

	photos, err := s.photoRepo.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &SurveyContext{
		Submission: sub,
		Answers:    ParseAnswers(sub.AnswersJSON),
		Photos:     photos,
	}, nil
}

func (s *SurveyService) SubmitAnswers(ctx context.Context, submissionID uint, form url.Values) (*db_models.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubmissionNotFound
	}

	answers := make(map[string]string, SurveyQuestionCount)
	for i := 1; i <= SurveyQuestionCount; i++ {
		key := fmt.Sprintf("q%d", i)
		answers[key] = strings.TrimSpace(form.Get(key))
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	serialized := string(raw)
	sub.AnswersJSON = &serialized
	sub.Status = db_models.StatusSubmitted

	if err := s.submissionRepo.SaveSubmission(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Fire-and-forget: a failed or partial email never blocks the
	// client-facing response.
	if err := s.notifier.SendSubmissionReport(ctx, sub.ID); err != nil {
		s.logger.Warn("submission report not sent",
			zap.Uint("submission_id", sub.ID),
			zap.Error(err))
	}

	return sub, nil
}

// ParseAnswers decodes the stored answers column. A missing column or
// malformed JSON degrades to an empty map so the survey page still loads.
func ParseAnswers(raw *string) map[string]string {
	answers := map[string]string{}
	if raw == nil || *raw == "" {
		return answers
	}
	if err := json.Unmarshal([]byte(*raw), &answers); err != nil {
		return map[string]string{}
	}
	return answers
}
