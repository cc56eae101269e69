// Package models holds the DTOs exchanged with the Biogleam backend.
//
// The backend speaks snake_case on the wire; the API client normalizes
// every response to camelCase before decoding, so all JSON tags here are
// camelCase. The structs are shape contracts only - semantic validation
// of stored entities lives in the backend.
package models

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Lead statuses as the back-office pipeline moves a contact request along.
const (
	LeadStatusCreated   = "created"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusClosed    = "closed"
)

// Session is the decoded identity of the currently logged-in user.
type Session struct {
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// User is an account managed through the admin area.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Session converts the user into the in-memory session shape.
func (u *User) Session() *Session {
	return &Session{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Lead is a contact request submitted through the public site.
type Lead struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	PackageType string `json:"packageType,omitempty"`
	Message     string `json:"message"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	Client      string `json:"client,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// Client is an agency customer record.
type Client struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
	Website   string `json:"website,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Review is a customer testimonial.
type Review struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position,omitempty"`
	Company      string `json:"company,omitempty"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"reviewText"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Featured     bool   `json:"featured"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Pagination is the page metadata the backend attaches to list envelopes.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages,omitempty"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Leads         int            `json:"leads"`
	Projects      int            `json:"projects"`
	Blogs         int            `json:"blogs"`
	Clients       int            `json:"clients"`
	Users         int            `json:"users"`
	LeadsByStatus map[string]int `json:"leadsByStatus,omitempty"`
	RecentLeads   []Lead         `json:"recentLeads,omitempty"`
}
