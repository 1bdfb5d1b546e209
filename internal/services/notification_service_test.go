package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studiointake/internal/config"
	"studiointake/internal/models/db_models"
)

func mailConfig() *config.Config {
	return &config.Config{
		SMTP: config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "intake@studio.example",
			Password: "secret",
			From:     "intake@studio.example",
		},
	}
}

func newNotificationFixture(t *testing.T, cfg *config.Config) (*fakeAccessCodeRepo, *fakeSubmissionRepo, *fakePhotoRepo, *spyMailService, *NotificationService) {
	t.Helper()
	codeRepo := newFakeAccessCodeRepo()
	subRepo := newFakeSubmissionRepo()
	photoRepo := newFakePhotoRepo()
	mail := &spyMailService{}
	service := NewNotificationService(subRepo, codeRepo, photoRepo, mail, cfg, SurveyQuestions, zap.NewNop()).(*NotificationService)
	return codeRepo, subRepo, photoRepo, mail, service
}

func seedSubmittedSubmission(t *testing.T, codeRepo *fakeAccessCodeRepo, subRepo *fakeSubmissionRepo, answersJSON string) *db_models.Submission {
	t.Helper()

	err := codeRepo.CreateCode(context.Background(), &db_models.AccessCode{
		Code:           "ABC12345",
		ArchitectEmail: "architect@studio.example",
		IsActive:       true,
	})
	require.NoError(t, err)

	sub := &db_models.Submission{
		Code:            "ABC12345",
		ClientFirstName: "Ada",
		ClientLastName:  "Lovelace",
		ClientEmail:     "ada@example.com",
		Status:          db_models.StatusSubmitted,
	}
	if answersJSON != "" {
		sub.AnswersJSON = &answersJSON
	}
	require.NoError(t, subRepo.CreateSubmission(context.Background(), sub))
	return sub
}

func TestSendSubmissionReport(t *testing.T) {
	codeRepo, subRepo, photoRepo, mail, service := newNotificationFixture(t, mailConfig())
	sub := seedSubmittedSubmission(t, codeRepo, subRepo, `{"q1":"Busy"}`)

	dir := t.TempDir()
	photoPath := filepath.Join(dir, "kitchen.jpg")
	require.NoError(t, os.WriteFile(photoPath, []byte("jpegdata"), 0o644))
	require.NoError(t, photoRepo.CreatePhoto(context.Background(), &db_models.Photo{
		SubmissionID: sub.ID,
		FilePath:     filepath.ToSlash(photoPath),
		OriginalName: "kitchen.jpg",
		ContentType:  "image/jpeg",
	}))

	require.NoError(t, service.SendSubmissionReport(context.Background(), sub.ID))

	require.Len(t, mail.sent, 1)
	msg := mail.sent[0]
	assert.Equal(t, "architect@studio.example", msg.to)
	assert.Contains(t, msg.subject, "Client Intake #1")
	assert.Contains(t, msg.subject, "ABC12345")
	assert.Contains(t, msg.htmlBody, "Ada Lovelace")
	assert.Contains(t, msg.htmlBody, "Busy")

	require.Len(t, msg.attachments, 1)
	assert.Equal(t, "kitchen.jpg", msg.attachments[0].Filename)
	assert.Equal(t, "image/jpeg", msg.attachments[0].ContentType)
	assert.Equal(t, []byte("jpegdata"), msg.attachments[0].Data)
}

func TestSendSubmissionReportSkipsUnreadableAttachments(t *testing.T) {
	codeRepo, subRepo, photoRepo, mail, service := newNotificationFixture(t, mailConfig())
	sub := seedSubmittedSubmission(t, codeRepo, subRepo, "")

	dir := t.TempDir()
	goodPath := filepath.Join(dir, "good.jpg")
	require.NoError(t, os.WriteFile(goodPath, []byte("good"), 0o644))

	for _, p := range []struct{ path, name string }{
		{path: filepath.ToSlash(filepath.Join(dir, "missing.jpg")), name: "missing.jpg"},
		{path: filepath.ToSlash(goodPath), name: "good.jpg"},
	} {
		require.NoError(t, photoRepo.CreatePhoto(context.Background(), &db_models.Photo{
			SubmissionID: sub.ID,
			FilePath:     p.path,
			OriginalName: p.name,
			ContentType:  "image/jpeg",
		}))
	}

	require.NoError(t, service.SendSubmissionReport(context.Background(), sub.ID))

	require.Len(t, mail.sent, 1)
	require.Len(t, mail.sent[0].attachments, 1)
	assert.Equal(t, "good.jpg", mail.sent[0].attachments[0].Filename)
}

func TestSendSubmissionReportSkipsWhenMailUnconfigured(t *testing.T) {
	cfg := &config.Config{}
	codeRepo, subRepo, _, mail, service := newNotificationFixture(t, cfg)
	sub := seedSubmittedSubmission(t, codeRepo, subRepo, "")

	require.NoError(t, service.SendSubmissionReport(context.Background(), sub.ID))
	assert.Empty(t, mail.sent)
}

func TestSendSubmissionReportSkipsUnresolvableCode(t *testing.T) {
	_, subRepo, _, mail, service := newNotificationFixture(t, mailConfig())

	sub := &db_models.Submission{Code: "GONE9999", Status: db_models.StatusSubmitted}
	require.NoError(t, subRepo.CreateSubmission(context.Background(), sub))

	require.NoError(t, service.SendSubmissionReport(context.Background(), sub.ID))
	assert.Empty(t, mail.sent)
}

func TestSendSubmissionReportUnknownSubmission(t *testing.T) {
	_, _, _, mail, service := newNotificationFixture(t, mailConfig())

	require.NoError(t, service.SendSubmissionReport(context.Background(), 42))
	assert.Empty(t, mail.sent)
}

func TestComposeReport(t *testing.T) {
	_, _, _, _, service := newNotificationFixture(t, mailConfig())

	answers := map[string]string{
		"q1": "Busy mornings\nquiet evenings",
		"q2": "<script>alert(1)</script>",
	}
	sub := &db_models.Submission{
		ID:              7,
		Code:            "ABC12345",
		ClientFirstName: "Ada",
		ClientLastName:  "Lovelace",
		ClientEmail:     "ada@example.com",
	}
	photos := []db_models.Photo{
		{OriginalName: "kitchen.jpg", ContentType: "image/jpeg"},
	}

	html, text, err := service.ComposeReport(sub, answers, photos)
	require.NoError(t, err)

	assert.Contains(t, html, "New Client Submission (#7)")
	assert.Contains(t, html, "ABC12345")
	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, SurveyQuestions[0])
	assert.Contains(t, html, "Busy mornings<br>quiet evenings")
	assert.NotContains(t, html, "<script>", "answers are escaped")
	assert.Contains(t, html, "kitchen.jpg")

	assert.Contains(t, text, "Busy mornings\nquiet evenings")
	assert.Contains(t, text, "kitchen.jpg")
}

func TestComposeReportFallsBackToNumberedLabels(t *testing.T) {
	codeRepo := newFakeAccessCodeRepo()
	subRepo := newFakeSubmissionRepo()
	photoRepo := newFakePhotoRepo()
	short := []string{"Only question one?"}
	service := NewNotificationService(subRepo, codeRepo, photoRepo, &spyMailService{}, mailConfig(), short, zap.NewNop()).(*NotificationService)

	sub := &db_models.Submission{ID: 1, Code: "ABC12345"}
	html, _, err := service.ComposeReport(sub, map[string]string{}, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "Only question one?")
	assert.Contains(t, html, "Question 2")
	assert.Contains(t, html, "Question 30")
}
