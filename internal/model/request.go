package model

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateApplicationRequest struct {
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	JobLocation string `json:"jobLocation"`
	Status      string `json:"status"`
	AppliedDate string `json:"appliedDate"`
	SalaryRange string `json:"salaryRange"`
	JobLink     string `json:"jobLink"`
	Notes       string `json:"notes"`
}

// UpdateApplicationRequest uses pointers so absent fields are left
// unchanged. There is deliberately no owner field: ownership is fixed
// at creation.
type UpdateApplicationRequest struct {
	CompanyName *string `json:"companyName"`
	Role        *string `json:"role"`
	JobLocation *string `json:"jobLocation"`
	Status      *string `json:"status"`
	AppliedDate *string `json:"appliedDate"`
	SalaryRange *string `json:"salaryRange"`
	JobLink     *string `json:"jobLink"`
	Notes       *string `json:"notes"`
}

// ListApplicationsParams holds the raw, client-supplied query string
// values before validation.
type ListApplicationsParams struct {
	Status string
	Search string
	Sort   string
	Page   string
	Limit  string
}
