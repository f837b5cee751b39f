package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the closed set of application states. Anything outside the
// four values is rejected at the boundary, never stored.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusRejected  Status = "Rejected"
	StatusOffer     Status = "Offer"
)

var allStatuses = []Status{StatusApplied, StatusInterview, StatusRejected, StatusOffer}

func ParseStatus(raw string) (Status, error) {
	candidate := Status(strings.TrimSpace(raw))
	for _, s := range allStatuses {
		if candidate == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", raw)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

type Application struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CompanyName string    `json:"companyName"`
	Role        string    `json:"role"`
	JobLocation string    `json:"jobLocation"`
	Status      Status    `json:"status"`
	AppliedDate time.Time `json:"appliedDate"`
	SalaryRange string    `json:"salaryRange,omitempty"`
	JobLink     string    `json:"jobLink,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SortDirection string

const (
	SortNewest SortDirection = "newest"
	SortOldest SortDirection = "oldest"
)

// ApplicationQuery is the validated, owner-scoped query specification
// executed by the repository. OwnerID is always the authenticated
// principal; it is never taken from client input.
type ApplicationQuery struct {
	OwnerID  string
	Statuses []Status
	Search   string
	Sort     SortDirection
	Page     int
	Limit    int
}

func (q ApplicationQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ApplicationPage carries one page of results plus pagination metadata.
type ApplicationPage struct {
	Applications []Application
	Total        int
	TotalPages   int
	CurrentPage  int
}
