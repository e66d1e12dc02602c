package models

// APIResponse is a generic structure for all API responses
type APIResponse struct {
	Status     string            `json:"status"`               // "success" or "error"
	Success    bool              `json:"success"`              // mirrors Status for clients that check a boolean
	Code       int               `json:"code"`                 // HTTP status code (200, 400, 500, etc.)
	Message    string            `json:"message,omitempty"`    // Human-readable message
	Data       interface{}       `json:"data,omitempty"`       // Any response data (can be map, struct, list, etc.)
	Pagination *Pagination       `json:"pagination,omitempty"` // Set on list endpoints
	Errors     map[string]string `json:"errors,omitempty"`     // Field-level validation messages
	Error      *APIError         `json:"error,omitempty"`      // Detailed error info (nil if success)
}

// APIError holds detailed error information
type APIError struct {
	Type    string `json:"type,omitempty"`    // e.g., "ValidationError", "DatabaseError"
	Details string `json:"details,omitempty"` // More context about the error
	Field   string `json:"field,omitempty"`   // For validation errors (which field failed)
}

// Pagination describes a page of a list response
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPagination computes page metadata for total records
func NewPagination(page, limit, total int) *Pagination {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/limit + 1
	}
	return &Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// Bounds returns the slice bounds of the page within total records. A page past
// the last one yields an empty range at the end.
func (p *Pagination) Bounds() (start, end int) {
	if p.Page > p.TotalPages {
		return p.Total, p.Total
	}
	start = (p.Page - 1) * p.Limit
	end = p.Total
	if p.Total-start > p.Limit {
		end = start + p.Limit
	}
	return start, end
}
