package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biogleam/biogleam/internal/api"
	"github.com/biogleam/biogleam/internal/models"
)

// Page data is always rendered, even when the backend is unreachable.
// Handlers log the failure and fall back to empty sections so the site
// never shows a bare 500 for a marketing page.

func (s *Server) home(c *gin.Context) {
	projects, err := s.api.ListProjects(c.Request.Context(), api.ListParams{Limit: 3})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load featured projects")
	}

	var reviews []models.Review
	if list, err := s.api.ListReviews(c.Request.Context(), api.ListParams{}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load reviews")
	} else {
		for _, r := range list.Reviews {
			if r.Featured {
				reviews = append(reviews, r)
			}
		}
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":    "Biogleam — Web Design Studio",
		"Projects": projects,
		"Reviews":  reviews,
	})
}

func (s *Server) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title": "About — Biogleam",
	})
}

func (s *Server) services(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", gin.H{
		"Title":    "Services — Biogleam",
		"Services": s.content.Services,
	})
}

func (s *Server) projects(c *gin.Context) {
	projects, err := s.api.ListProjects(c.Request.Context(), api.ListParams{})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load projects")
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Title":    "Our Work — Biogleam",
		"Projects": projects,
	})
}

func (s *Server) projectDetail(c *gin.Context) {
	project, err := s.api.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if api.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not Found"})
			return
		}
		s.logger.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load project")
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"Title": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "project.html", gin.H{
		"Title":   project.Title + " — Biogleam",
		"Project": project,
	})
}

func (s *Server) blog(c *gin.Context) {
	posts, err := s.api.ListBlogPosts(c.Request.Context(), api.ListParams{})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load blog posts")
	}

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Title": "Blog — Biogleam",
		"Posts": posts,
	})
}

func (s *Server) blogPost(c *gin.Context) {
	post, err := s.api.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if api.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not Found"})
			return
		}
		s.logger.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to load blog post")
		c.HTML(http.StatusBadGateway, "error.html", gin.H{"Title": "Something went wrong"})
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"Title": post.Title + " — Biogleam",
		"Post":  post,
	})
}

func (s *Server) pricing(c *gin.Context) {
	c.HTML(http.StatusOK, "pricing.html", gin.H{
		"Title":   "Pricing — Biogleam",
		"Pricing": s.content.Pricing,
	})
}

func (s *Server) contactForm(c *gin.Context) {
	// The pricing CTAs link here with ?package=<tier> to pre-fill the lead.
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title": "Contact — Biogleam",
		"Form":  models.LeadInput{PackageType: s.knownPackage(c.Query("package"))},
	})
}

// knownPackage passes through only package names that exist in the
// pricing content, so arbitrary query values never reach the form.
func (s *Server) knownPackage(name string) string {
	for _, tier := range s.content.Pricing {
		if tier.Name == name {
			return name
		}
	}
	return ""
}

func (s *Server) contactSubmit(c *gin.Context) {
	input := models.LeadInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		ProjectType: c.PostForm("projectType"),
		PackageType: c.PostForm("packageType"),
		Message:     c.PostForm("message"),
	}

	if err := input.Validate(); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact.html", gin.H{
			"Title": "Contact — Biogleam",
			"Error": "Please fill in your name, phone, project type and message.",
			"Form":  input,
		})
		return
	}

	if _, err := s.api.CreateLead(c.Request.Context(), input); err != nil {
		s.logger.Error().Err(err).Msg("Failed to submit lead")
		c.HTML(http.StatusBadGateway, "contact.html", gin.H{
			"Title": "Contact — Biogleam",
			"Error": "We couldn't send your message right now. Please try again in a moment.",
			"Form":  input,
		})
		return
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":   "Contact — Biogleam",
		"Success": true,
	})
}
