package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/service"
	"portfolio_admin/internal/upload"

	"github.com/gin-gonic/gin"
)

const (
	imagesField = "images"

	// room for a full batch of images plus the text fields
	maxProjectBodyBytes = upload.DefaultMaxFiles*upload.DefaultMaxFileSize + 1<<20

	errListProjects   = "Failed to fetch projects"
	errCreateProject  = "Failed to create project"
	errUpdateProject  = "Failed to update project"
	errDeleteProject  = "Failed to delete project"
	errProjectMissing = "Project not found"
	msgProjectDeleted = "Project deleted successfully"
)

// stringList accepts either a JSON string or an array of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*l = stringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("images must be a string or a list of strings")
	}
	*l = many
	return nil
}

// ProjectRequest is the JSON form of a project create/update body. The
// multipart form uses the same field names with files under "images".
type ProjectRequest struct {
	Title       string     `json:"title" example:"Modern MRI Suite"`
	Description string     `json:"description" example:"Complete MRI room design"`
	Category    string     `json:"category" example:"Medical" enums:"Medical,Residential,Commercial"`
	Images      stringList `json:"images" swaggertype:"array,string"`
}

var (
	// errBadBody marks input that could not be decoded at all.
	errBadBody         = errors.New("invalid body")
	errUploadsDisabled = errors.New("uploads are not configured")
)

// projectInput reads a multipart or JSON body. In a multipart form the
// "images" text values name existing images and are kept ahead of any
// newly uploaded files.
func (h *Handler) projectInput(c *gin.Context) (models.ProjectInput, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			return models.ProjectInput{}, fmt.Errorf("%w: %v", errBadBody, err)
		}
		in := models.ProjectInput{
			Title:       firstValue(form.Value["title"]),
			Description: firstValue(form.Value["description"]),
			Category:    models.Category(firstValue(form.Value["category"])),
		}
		in.Images = append(in.Images, form.Value[imagesField]...)
		if files := form.File[imagesField]; len(files) > 0 {
			if h.uploads == nil {
				return models.ProjectInput{}, errUploadsDisabled
			}
			paths, err := h.uploads.Save(c.Request.Context(), imagesField, files)
			if err != nil {
				return models.ProjectInput{}, err
			}
			in.Images = append(in.Images, paths...)
		}
		return in, nil
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.ProjectInput{}, fmt.Errorf("%w: %v", errBadBody, err)
	}
	return models.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    models.Category(req.Category),
		Images:      req.Images,
	}, nil
}

func firstValue(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// inputError answers a request whose body could not be read or whose files
// were rejected. It reports whether err was one of those.
func (h *Handler) inputError(c *gin.Context, err error, logKey string) bool {
	var msg string
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadBody):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, upload.ErrNotImage):
		msg = "Only image files are allowed"
	case errors.Is(err, upload.ErrFileTooLarge):
		msg = "File too large"
	case errors.Is(err, upload.ErrTooManyFiles):
		msg = "Too many files"
	default:
		return false
	}
	h.log.Infow(logKey, "err", err, "route", c.FullPath())
	c.JSON(code, gin.H{"error": msg})
	return true
}

// @Summary      List projects
// @Description  Newest first. Uploaded image paths are returned as absolute URLs.
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.ListProjects(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListProjects, "project_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      Create project
// @Tags         projects
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  true   "Description"
// @Param        category     formData  string  true   "Category"  Enums(Medical,Residential,Commercial)
// @Param        images       formData  file    false  "Up to 10 images, 5 MB each"
// @Success      201  {object}  models.Project
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	in, err := h.projectInput(c)
	if err != nil {
		if h.inputError(c, err, "project_create_bad_input") {
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateProject, "project_upload_failed", err)
		return
	}

	p, err := h.services.CreateProject(c.Request.Context(), in)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateProject, "project_create_failed", err, "title", in.Title)
		return
	}
	if admin, ok := principalFrom(c); ok {
		h.log.Infow("project_created", "id", p.ID, "admin", admin.Username, "images", len(p.Images))
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update project
// @Description  Replaces title, description, category and images.
// @Tags         projects
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        id           path      string  true   "Project ID"
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  true   "Description"
// @Param        category     formData  string  true   "Category"  Enums(Medical,Residential,Commercial)
// @Param        images       formData  file    false  "Replacement images"
// @Success      200  {object}  models.Project
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	id := c.Param("id")
	in, err := h.projectInput(c)
	if err != nil {
		if h.inputError(c, err, "project_update_bad_input") {
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateProject, "project_upload_failed", err, "id", id)
		return
	}

	p, err := h.services.UpdateProject(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateProject, "project_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.DeleteProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProjectMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteProject, "project_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgProjectDeleted})
}
