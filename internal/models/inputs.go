package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LeadInput is the contact form payload. Email is optional; every other
// field must be present before the request leaves the process.
type LeadInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"required"`
	ProjectType string `json:"projectType" validate:"required"`
	PackageType string `json:"packageType,omitempty"`
	Message     string `json:"message" validate:"required"`
}

// Validate checks the input locally, before any network call is made.
func (in LeadInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid lead: %w", err)
	}
	return nil
}

// LeadUpdate carries mutable lead fields. Zero-value fields are elided
// from the outgoing payload.
type LeadUpdate struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	PackageType string `json:"packageType,omitempty"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ProjectInput creates or replaces the editable portfolio fields.
type ProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	Client      string `json:"client,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// Validate checks the input locally.
func (in ProjectInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	return nil
}

// ProjectUpdate carries mutable project fields for PATCH requests.
type ProjectUpdate struct {
	Title       string `json:"title,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	Client      string `json:"client,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// BlogPostInput creates a new article.
type BlogPostInput struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Summary     string   `json:"summary,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// Validate checks the input locally.
func (in BlogPostInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid blog post: %w", err)
	}
	return nil
}

// BlogPostUpdate carries mutable article fields for PATCH requests.
type BlogPostUpdate struct {
	Title       string   `json:"title,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Content     string   `json:"content,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// ClientInput creates a new customer record.
type ClientInput struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Website string `json:"website,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Validate checks the input locally.
func (in ClientInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid client: %w", err)
	}
	return nil
}

// ClientUpdate carries mutable customer fields for PATCH requests.
type ClientUpdate struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Website string `json:"website,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty"`
}

// ReviewInput creates a new testimonial.
type ReviewInput struct {
	Name         string `json:"name" validate:"required"`
	Position     string `json:"position,omitempty"`
	Company      string `json:"company,omitempty"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText   string `json:"reviewText" validate:"required"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Featured     bool   `json:"featured,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

// Validate checks the input locally.
func (in ReviewInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid review: %w", err)
	}
	return nil
}

// ReviewUpdate carries mutable testimonial fields. The backend accepts
// review updates via PUT, so the full record should be sent; callers
// build it with ReviewUpdateFrom, not from zero.
type ReviewUpdate struct {
	Name         string `json:"name,omitempty"`
	Position     string `json:"position,omitempty"`
	Company      string `json:"company,omitempty"`
	Rating       int    `json:"rating,omitempty"`
	ReviewText   string `json:"reviewText,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Featured     bool   `json:"featured"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

// ReviewUpdateFrom seeds the update with every mutable field of the
// current record, so a PUT replaces the review with itself plus the
// caller's changes instead of blanking what was left unset.
func ReviewUpdateFrom(r *Review) ReviewUpdate {
	return ReviewUpdate{
		Name:         r.Name,
		Position:     r.Position,
		Company:      r.Company,
		Rating:       r.Rating,
		ReviewText:   r.ReviewText,
		AvatarURL:    r.AvatarURL,
		Featured:     r.Featured,
		DisplayOrder: r.DisplayOrder,
	}
}

// UserInput creates a new account through the admin area.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// Validate checks the input locally.
func (in UserInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}

// UserUpdate carries mutable account fields for PATCH requests.
type UserUpdate struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}
