package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"go.uber.org/zap"

	"studiointake/internal/config"
	"studiointake/internal/models/db_models"
	"studiointake/internal/repositories"
)

type NotificationServiceInterface interface {
	// SendSubmissionReport emails the finalized submission to the
	// architect bound to its access code. An unresolvable code or
	// missing mail configuration is a silent skip, not an error.
	SendSubmissionReport(ctx context.Context, submissionID uint) error
}

type NotificationService struct {
	submissionRepo repositories.SubmissionRepositoryInterface
	codeRepo       repositories.AccessCodeRepositoryInterface
	photoRepo      repositories.PhotoRepositoryInterface
	mail           MailServiceInterface
	cfg            *config.Config
	questions      []string
	logger         *zap.Logger
	htmlTpl        *template.Template
	textTpl        *texttemplate.Template
}

func NewNotificationService(
	submissionRepo repositories.SubmissionRepositoryInterface,
	codeRepo repositories.AccessCodeRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	mail MailServiceInterface,
	cfg *config.Config,
	questions []string,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		submissionRepo: submissionRepo,
		codeRepo:       codeRepo,
		photoRepo:      photoRepo,
		mail:           mail,
		cfg:            cfg,
		questions:      questions,
		logger:         logger,
		htmlTpl:        template.Must(template.New("reportHTML").Parse(reportHTMLTemplate)),
		textTpl:        texttemplate.Must(texttemplate.New("reportText").Parse(reportTextTemplate)),
	}
}

type reportItem struct {
	Question string
	Answer   template.HTML
	Text     string
}

type reportPhoto struct {
	Name        string
	ContentType string
}

type reportData struct {
	SubmissionID uint
	Code         string
	ClientName   string
	ClientEmail  string
	Items        []reportItem
	Photos       []reportPhoto
}

const reportHTMLTemplate = `<h2>New Client Submission (#{{.SubmissionID}})</h2>
<p><b>Code:</b> {{.Code}}</p>
<p><b>Client:</b> {{.ClientName}} ({{.ClientEmail}})</p>
<hr>
<h3>Answers</h3>
<ol>
{{range .Items}}<li><div style="margin-bottom:10px"><b>{{.Question}}</b><br>{{.Answer}}</div></li>
{{end}}</ol>
{{if .Photos}}<h3>Photos</h3>
<ul>
{{range .Photos}}<li>{{.Name}} <small>({{.ContentType}})</small></li>
{{end}}</ul>
{{end}}`

const reportTextTemplate = `New Client Submission (#{{.SubmissionID}})
Code: {{.Code}}
Client: {{.ClientName}} ({{.ClientEmail}})

Answers:
{{range $i, $item := .Items}}{{$item.Question}}
{{$item.Text}}

{{end}}{{if .Photos}}Photos:
{{range .Photos}}- {{.Name}} ({{.ContentType}})
{{end}}{{end}}`

func (s *NotificationService) SendSubmissionReport(ctx context.Context, submissionID uint) error {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub == nil {
		return nil
	}

	codeRecord, err := s.codeRepo.GetByCode(ctx, sub.Code)
	if err != nil {
		return err
	}
	if codeRecord == nil {
		// No architect to notify; drop the report silently.
		return nil
	}

	photos, err := s.photoRepo.ListBySubmission(ctx, submissionID)
	if err != nil {
		return err
	}

	html, text, err := s.ComposeReport(sub, ParseAnswers(sub.AnswersJSON), photos)
	if err != nil {
		return err
	}

	if !s.cfg.MailConfigured() {
		s.logger.Info("mail not configured, skipping submission report",
			zap.Uint("submission_id", submissionID))
		return nil
	}

	attachments := make([]Attachment, 0, len(photos))
	for _, photo := range photos {
		data, err := os.ReadFile(filepath.FromSlash(photo.FilePath))
		if err != nil {
			s.logger.Warn("attachment read failed, skipping",
				zap.String("path", photo.FilePath),
				zap.Error(err))
			continue
		}

		name := photo.OriginalName
		if name == "" {
			name = filepath.Base(photo.FilePath)
		}
		attachments = append(attachments, Attachment{
			Filename:    name,
			ContentType: photo.ContentType,
			Data:        data,
		})
	}

	subject := fmt.Sprintf("Client Intake #%d — Code %s", sub.ID, sub.Code)
	return s.mail.Send(codeRecord.ArchitectEmail, subject, html, text, attachments)
}

// ComposeReport renders the HTML report and its plain-text fallback from
// the stored answers. Question slots beyond the configured list fall back
// to a "Question N" label; missing answers render empty.
func (s *NotificationService) ComposeReport(sub *db_models.Submission, answers map[string]string, photos []db_models.Photo) (string, string, error) {
	data := reportData{
		SubmissionID: sub.ID,
		Code:         sub.Code,
		ClientName:   sub.ClientFirstName + " " + sub.ClientLastName,
		ClientEmail:  sub.ClientEmail,
	}

	for i := 1; i <= SurveyQuestionCount; i++ {
		question := fmt.Sprintf("Question %d", i)
		if i-1 < len(s.questions) {
			question = s.questions[i-1]
		}

		answer := answers[fmt.Sprintf("q%d", i)]
		escaped := template.HTMLEscapeString(answer)
		data.Items = append(data.Items, reportItem{
			Question: question,
			Answer:   template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
			Text:     answer,
		})
	}

	for _, photo := range photos {
		data.Photos = append(data.Photos, reportPhoto{
			Name:        photo.OriginalName,
			ContentType: photo.ContentType,
		})
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}
