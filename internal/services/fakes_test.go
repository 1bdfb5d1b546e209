package services

import (
	"context"
	"sort"

	"studiointake/internal/models/db_models"
)

type fakeAccessCodeRepo struct {
	codes  map[string]db_models.AccessCode
	nextID uint
}

func newFakeAccessCodeRepo() *fakeAccessCodeRepo {
	return &fakeAccessCodeRepo{codes: map[string]db_models.AccessCode{}}
}

func (f *fakeAccessCodeRepo) CreateCode(_ context.Context, code *db_models.AccessCode) error {
	f.nextID++
	code.ID = f.nextID
	f.codes[code.Code] = *code
	return nil
}

func (f *fakeAccessCodeRepo) GetByCode(_ context.Context, code string) (*db_models.AccessCode, error) {
	record, ok := f.codes[code]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (f *fakeAccessCodeRepo) ListCodes(_ context.Context) ([]db_models.AccessCode, error) {
	codes := make([]db_models.AccessCode, 0, len(f.codes))
	for _, record := range f.codes {
		codes = append(codes, record)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].ID > codes[j].ID })
	return codes, nil
}

func (f *fakeAccessCodeRepo) SaveCode(_ context.Context, code *db_models.AccessCode) error {
	f.codes[code.Code] = *code
	return nil
}

type fakeSubmissionRepo struct {
	subs   map[uint]db_models.Submission
	nextID uint
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: map[uint]db_models.Submission{}}
}

func (f *fakeSubmissionRepo) CreateSubmission(_ context.Context, sub *db_models.Submission) error {
	f.nextID++
	sub.ID = f.nextID
	if sub.Status == "" {
		sub.Status = db_models.StatusDraft
	}
	f.subs[sub.ID] = *sub
	return nil
}

func (f *fakeSubmissionRepo) GetByID(_ context.Context, id uint) (*db_models.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (f *fakeSubmissionRepo) SaveSubmission(_ context.Context, sub *db_models.Submission) error {
	f.subs[sub.ID] = *sub
	return nil
}

type fakePhotoRepo struct {
	photos map[uint]db_models.Photo
	nextID uint
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: map[uint]db_models.Photo{}}
}

func (f *fakePhotoRepo) CreatePhoto(_ context.Context, photo *db_models.Photo) error {
	f.nextID++
	photo.ID = f.nextID
	f.photos[photo.ID] = *photo
	return nil
}

func (f *fakePhotoRepo) GetByID(_ context.Context, id uint) (*db_models.Photo, error) {
	photo, ok := f.photos[id]
	if !ok {
		return nil, nil
	}
	return &photo, nil
}

func (f *fakePhotoRepo) ListBySubmission(_ context.Context, submissionID uint) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	for _, photo := range f.photos {
		if photo.SubmissionID == submissionID {
			photos = append(photos, photo)
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID > photos[j].ID })
	return photos, nil
}

func (f *fakePhotoRepo) CountBySubmission(_ context.Context, submissionID uint) (int64, error) {
	var count int64
	for _, photo := range f.photos {
		if photo.SubmissionID == submissionID {
			count++
		}
	}
	return count, nil
}

func (f *fakePhotoRepo) DeletePhoto(_ context.Context, photo *db_models.Photo) error {
	delete(f.photos, photo.ID)
	return nil
}

type spyNotifier struct {
	calls []uint
	err   error
}

func (s *spyNotifier) SendSubmissionReport(_ context.Context, submissionID uint) error {
	s.calls = append(s.calls, submissionID)
	return s.err
}

type sentMail struct {
	to          string
	subject     string
	htmlBody    string
	textBody    string
	attachments []Attachment
}

type spyMailService struct {
	sent []sentMail
	err  error
}

func (s *spyMailService) Send(to, subject, htmlBody, textBody string, attachments []Attachment) error {
	s.sent = append(s.sent, sentMail{
		to:          to,
		subject:     subject,
		htmlBody:    htmlBody,
		textBody:    textBody,
		attachments: attachments,
	})
	return s.err
}
