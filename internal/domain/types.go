package domain

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// Normalize clamps page to >= 1 and page size to 1..100 (default 20).
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset is the SQL offset for the current page.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID         string `json:"userId"`
	OrganizationID string `json:"organizationId"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

const (
	RoleTraveller = "TRAVELLER"
	RoleOrganizer = "ORGANIZER"
	RoleAdmin     = "SUPERADMIN"
)
