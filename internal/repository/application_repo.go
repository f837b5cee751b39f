package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"job-tracker/internal/model"
)

const applicationColumns = `id, user_id, company_name, role, job_location, status,
	applied_date, salary_range, job_link, notes, created_at, updated_at`

type ApplicationRepository struct {
	db DB
}

func NewApplicationRepository(db DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a model.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, company_name, role, job_location, status,
		                           applied_date, salary_range, job_link, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.UserID, a.CompanyName, a.Role, a.JobLocation, string(a.Status),
		a.AppliedDate, a.SalaryRange, a.JobLink, a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (model.Application, error) {
	// A non-UUID path segment can never address a stored row; report it
	// as not found instead of letting Postgres reject the cast.
	if _, err := uuid.Parse(id); err != nil {
		return model.Application{}, model.ErrApplicationNotFound
	}

	var a model.Application
	err := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id).
		Scan(&a.ID, &a.UserID, &a.CompanyName, &a.Role, &a.JobLocation, &a.Status,
			&a.AppliedDate, &a.SalaryRange, &a.JobLink, &a.Notes, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Application{}, model.ErrApplicationNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("find application by id: %w", err)
	}
	return a, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, a model.Application) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications
		 SET company_name = $2, role = $3, job_location = $4, status = $5,
		     applied_date = $6, salary_range = $7, job_link = $8, notes = $9, updated_at = $10
		 WHERE id = $1`,
		a.ID, a.CompanyName, a.Role, a.JobLocation, string(a.Status),
		a.AppliedDate, a.SalaryRange, a.JobLink, a.Notes, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return model.ErrApplicationNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrApplicationNotFound
	}
	return nil
}

// List executes an owner-scoped query and returns one page of
// rows plus the total match count. Ordering is by applied date with id
// as tiebreak, so identical specs against unchanged data page
// identically.
func (r *ApplicationRepository) List(ctx context.Context, q model.ApplicationQuery) ([]model.Application, int, error) {
	where := []string{"user_id = $1"}
	args := []any{q.OwnerID}

	if len(q.Statuses) > 0 {
		statuses := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		where = append(where, fmt.Sprintf(`company_name ILIKE $%d ESCAPE '\'`, len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE `+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	direction := "DESC"
	if q.Sort == model.SortOldest {
		direction = "ASC"
	}

	pageArgs := append(args, q.Limit, q.Offset())
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM applications WHERE %s
		 ORDER BY applied_date %s, id %s
		 LIMIT $%d OFFSET $%d`,
		applicationColumns, whereClause, direction, direction,
		len(pageArgs)-1, len(pageArgs)), pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	applications := make([]model.Application, 0)
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.CompanyName, &a.Role, &a.JobLocation, &a.Status,
			&a.AppliedDate, &a.SalaryRange, &a.JobLink, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, total, rows.Err()
}

// escapeLike neutralizes LIKE metacharacters so search input always
// matches literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
