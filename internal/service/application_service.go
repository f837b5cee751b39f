package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-tracker/internal/model"
	"job-tracker/pkg/apierror"
)

const (
	defaultPageSize = 10
	// maxPageSize caps client-requested page sizes so a single list
	// call cannot pull the entire table.
	maxPageSize = 100
)

type ApplicationRepository interface {
	Create(ctx context.Context, a model.Application) error
	FindByID(ctx context.Context, id string) (model.Application, error)
	Update(ctx context.Context, a model.Application) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q model.ApplicationQuery) ([]model.Application, int, error)
}

type ApplicationService struct {
	apps ApplicationRepository
}

func NewApplicationService(apps ApplicationRepository) *ApplicationService {
	return &ApplicationService{apps: apps}
}

func (s *ApplicationService) Create(ctx context.Context, ownerID string, req model.CreateApplicationRequest) (model.Application, error) {
	status := model.StatusApplied
	if strings.TrimSpace(req.Status) != "" {
		parsed, err := model.ParseStatus(req.Status)
		if err != nil {
			return model.Application{}, apierror.Validation("Status must be: Applied, Interview, Rejected, or Offer")
		}
		status = parsed
	}

	now := time.Now().UTC()
	appliedDate := now
	if strings.TrimSpace(req.AppliedDate) != "" {
		parsed, err := parseDate(req.AppliedDate)
		if err != nil {
			return model.Application{}, apierror.Validation("Applied date must be a valid date")
		}
		appliedDate = parsed
	}

	a := model.Application{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Role:        strings.TrimSpace(req.Role),
		JobLocation: strings.TrimSpace(req.JobLocation),
		Status:      status,
		AppliedDate: appliedDate,
		SalaryRange: strings.TrimSpace(req.SalaryRange),
		JobLink:     strings.TrimSpace(req.JobLink),
		Notes:       strings.TrimSpace(req.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateApplicationFields(a); err != nil {
		return model.Application{}, err
	}

	if err := s.apps.Create(ctx, a); err != nil {
		return model.Application{}, err
	}

	return a, nil
}

func (s *ApplicationService) List(ctx context.Context, ownerID string, params model.ListApplicationsParams) (model.ApplicationPage, error) {
	query := buildApplicationQuery(ownerID, params)

	applications, total, err := s.apps.List(ctx, query)
	if err != nil {
		return model.ApplicationPage{}, err
	}

	return model.ApplicationPage{
		Applications: applications,
		Total:        total,
		TotalPages:   (total + query.Limit - 1) / query.Limit,
		CurrentPage:  query.Page,
	}, nil
}

func (s *ApplicationService) Get(ctx context.Context, principalID string, id string) (model.Application, error) {
	a, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return model.Application{}, err
	}

	if err := requireOwner(principalID, a); err != nil {
		return model.Application{}, err
	}

	return a, nil
}

func (s *ApplicationService) Update(ctx context.Context, principalID string, id string, req model.UpdateApplicationRequest) (model.Application, error) {
	a, err := s.Get(ctx, principalID, id)
	if err != nil {
		return model.Application{}, err
	}

	if req.CompanyName != nil {
		a.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.Role != nil {
		a.Role = strings.TrimSpace(*req.Role)
	}
	if req.JobLocation != nil {
		a.JobLocation = strings.TrimSpace(*req.JobLocation)
	}
	if req.Status != nil {
		parsed, err := model.ParseStatus(*req.Status)
		if err != nil {
			return model.Application{}, apierror.Validation("Status must be: Applied, Interview, Rejected, or Offer")
		}
		a.Status = parsed
	}
	if req.AppliedDate != nil {
		parsed, err := parseDate(*req.AppliedDate)
		if err != nil {
			return model.Application{}, apierror.Validation("Applied date must be a valid date")
		}
		a.AppliedDate = parsed
	}
	if req.SalaryRange != nil {
		a.SalaryRange = strings.TrimSpace(*req.SalaryRange)
	}
	if req.JobLink != nil {
		a.JobLink = strings.TrimSpace(*req.JobLink)
	}
	if req.Notes != nil {
		a.Notes = strings.TrimSpace(*req.Notes)
	}
	a.UpdatedAt = time.Now().UTC()

	if err := validateApplicationFields(a); err != nil {
		return model.Application{}, err
	}

	if err := s.apps.Update(ctx, a); err != nil {
		return model.Application{}, err
	}

	return a, nil
}

func (s *ApplicationService) Delete(ctx context.Context, principalID string, id string) error {
	if _, err := s.Get(ctx, principalID, id); err != nil {
		return err
	}

	return s.apps.Delete(ctx, id)
}

// requireOwner is the single ownership gate for every instance-scoped
// operation. It runs after the 404 fetch, so existence is disclosed
// but ownership is not.
func requireOwner(principalID string, a model.Application) error {
	if a.UserID != principalID {
		return apierror.Forbidden("Not authorized: this application does not belong to you")
	}
	return nil
}

// buildApplicationQuery normalizes raw query parameters into an
// owner-scoped specification. The owner always comes from the
// authenticated principal; client-supplied owner fields are ignored.
func buildApplicationQuery(ownerID string, p model.ListApplicationsParams) model.ApplicationQuery {
	q := model.ApplicationQuery{
		OwnerID: ownerID,
		Search:  strings.TrimSpace(p.Search),
		Sort:    model.SortNewest,
		Page:    1,
		Limit:   defaultPageSize,
	}

	// Unknown status tokens are dropped, not rejected.
	for _, raw := range strings.Split(p.Status, ",") {
		if status, err := model.ParseStatus(raw); err == nil {
			q.Statuses = append(q.Statuses, status)
		}
	}

	if strings.EqualFold(strings.TrimSpace(p.Sort), string(model.SortOldest)) {
		q.Sort = model.SortOldest
	}

	if page, err := strconv.Atoi(strings.TrimSpace(p.Page)); err == nil && page >= 1 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(strings.TrimSpace(p.Limit)); err == nil && limit >= 1 {
		q.Limit = limit
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	return q
}

func validateApplicationFields(a model.Application) error {
	switch {
	case a.CompanyName == "":
		return apierror.Validation("Company name is required")
	case len(a.CompanyName) > 100:
		return apierror.Validation("Company name cannot exceed 100 characters")
	case a.Role == "":
		return apierror.Validation("Job role is required")
	case len(a.Role) > 100:
		return apierror.Validation("Role cannot exceed 100 characters")
	case a.JobLocation == "":
		return apierror.Validation("Job location is required")
	case len(a.JobLocation) > 100:
		return apierror.Validation("Location cannot exceed 100 characters")
	case len(a.SalaryRange) > 50:
		return apierror.Validation("Salary range cannot exceed 50 characters")
	case len(a.Notes) > 1000:
		return apierror.Validation("Notes cannot exceed 1000 characters")
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}
