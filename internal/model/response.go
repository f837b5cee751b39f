package model

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	User    PublicUser `json:"user"`
}

type ApplicationResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message,omitempty"`
	Application Application `json:"application"`
}

type ApplicationListResponse struct {
	Success      bool          `json:"success"`
	Count        int           `json:"count"`
	Total        int           `json:"total"`
	TotalPages   int           `json:"totalPages"`
	CurrentPage  int           `json:"currentPage"`
	Applications []Application `json:"applications"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
