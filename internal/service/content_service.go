package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	appErrors "github.com/alhuda-academy/admissions-api/pkg/errors"
)

type contentRepository interface {
	FindByPage(ctx context.Context, page string) (*models.PageContent, error)
	Upsert(ctx context.Context, pc *models.PageContent) error
}

// defaultNavbar seeds the public site's navigation on first read. The client
// renders these items verbatim, icons included.
const defaultNavbar = `{"items":[{"name":"Home","url":"/","icon":"Home"},{"name":"About","url":"#","icon":"User","dropdown":[{"name":"Mission and Vision","url":"/mission-vision"},{"name":"Principal's message","url":"/principal-message"},{"name":"School Board","url":"/team"},{"name":"General Administration","url":"/administration"},{"name":"Parent handbook","url":"/parent-handbook"},{"name":"Faculty","url":"#","dropdown":[{"name":"K-3 Section","url":"/k3-section"},{"name":"Boys' Section","url":"/boys-section"},{"name":"Girls' Section","url":"/girls-section"}]}]},{"name":"Admission","url":"#","icon":"FileText","dropdown":[{"name":"New Enrollment","url":"/enrollment"},{"name":"Re-Enrollment","url":"/renroll"},{"name":"Uniform Policy","url":"/dress-code"},{"name":"Bus Policy","url":"/bus-policy"},{"name":"Supply List","url":"/supply-list"}]},{"name":"Learning","url":"#","icon":"BookOpen","dropdown":[{"name":"Calendar","url":"/calendar"},{"name":"College Preparatory","url":"/college-preparatory"},{"name":"Islamic Studies & Qur'an","url":"/islamic-studies"},{"name":"Curricular","url":"/curricular"}]},{"name":"Gallery","url":"/gallery","icon":"Image"},{"name":"Accreditation","url":"#","icon":"Award","dropdown":[{"name":"Staff Surveys","url":"/staff-surveys"},{"name":"Parents Surveys","url":"/parent-surveys"},{"name":"Students Surveys","url":"/student-surveys"}]},{"name":"Career","url":"#","icon":"Briefcase","dropdown":[{"name":"Job Application","url":"/career/job-application"},{"name":"Volunteer Application","url":"/career/volunteer-application"}]}]}`

var pageDefaults = map[string]string{
	"navbar": defaultNavbar,
}

// ContentService serves the editable site pages. Pages with a compiled-in
// default are seeded on first read so the public site never renders empty.
type ContentService struct {
	repo   contentRepository
	logger *zap.Logger
}

// NewContentService constructs ContentService.
func NewContentService(repo contentRepository, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{repo: repo, logger: logger}
}

// GetPage returns the stored document for a page, falling back to the
// compiled-in default when one exists.
func (s *ContentService) GetPage(ctx context.Context, page string) (*models.PageContent, error) {
	pc, err := s.repo.FindByPage(ctx, page)
	if err == nil {
		return pc, nil
	}
	if err != sql.ErrNoRows {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load page content")
	}

	def, ok := pageDefaults[page]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "page content not found")
	}
	seeded := &models.PageContent{Page: page, Content: models.RawJSONDocument(def)}
	if err := s.repo.Upsert(ctx, seeded); err != nil {
		// Serving the default still works even if the seed write lost a race.
		s.logger.Warn("failed to seed default page content", zap.String("page", page), zap.Error(err))
	}
	return seeded, nil
}

// UpdatePage stores the document for a page wholesale.
func (s *ContentService) UpdatePage(ctx context.Context, page string, content models.RawJSONDocument) (*models.PageContent, error) {
	if len(content) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "content is required")
	}
	pc := &models.PageContent{Page: page, Content: content}
	if err := s.repo.Upsert(ctx, pc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store page content")
	}
	return pc, nil
}
