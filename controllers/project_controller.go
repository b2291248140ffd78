package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"codecollab_server/apperrors"
	"codecollab_server/models"
	"codecollab_server/services"

	"github.com/gorilla/mux"
)

// ProjectController handles project CRUD, browse and recommendations
type ProjectController struct {
	ProjectService *services.ProjectService
	UserService    *services.UserProfileService
}

// NewProjectController creates a new instance of ProjectController
func NewProjectController(projectService *services.ProjectService, userService *services.UserProfileService) *ProjectController {
	return &ProjectController{ProjectService: projectService, UserService: userService}
}

// CreateProject handles POST /api/projects
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserService)

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, apperrors.Validation("invalid request payload"))
		return
	}

	created, err := c.ProjectService.CreateProject(r.Context(), viewer, project)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// BrowseProjects handles GET /api/projects with keyword search, filters,
// pagination and per-viewer match scores
func (c *ProjectController) BrowseProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := services.BrowseFilters{
		ExperienceLevel: q.Get("experienceLevel"),
		Category:        q.Get("category"),
	}
	if stack := q.Get("techStack"); stack != "" {
		filters.TechStack = strings.Split(stack, ",")
	}

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	viewer := resolveViewer(r, c.UserService)
	result, err := c.ProjectService.BrowseProjects(r.Context(), q.Get("keywords"), filters, page, pageSize, viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RecommendProjects handles GET /api/projects/recommendations
func (c *ProjectController) RecommendProjects(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	viewer := resolveViewer(r, c.UserService)
	matches, err := c.ProjectService.RecommendProjects(r.Context(), viewer, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": matches})
}

// MyProjects handles GET /api/projects/mine
func (c *ProjectController) MyProjects(w http.ResponseWriter, r *http.Request) {
	viewer := resolveViewer(r, c.UserService)
	projects, err := c.ProjectService.MyProjects(r.Context(), viewer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// GetProject handles GET /api/projects/{projectId}. Public, no auth.
func (c *ProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	project, err := c.ProjectService.GetProject(r.Context(), projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// UpdateProject handles PATCH /api/projects/{projectId}
func (c *ProjectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, apperrors.Validation("invalid request payload"))
		return
	}

	viewer := resolveViewer(r, c.UserService)
	project, err := c.ProjectService.UpdateProject(r.Context(), viewer, projectID, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/{projectId}
func (c *ProjectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	viewer := resolveViewer(r, c.UserService)
	if err := c.ProjectService.DeleteProject(r.Context(), viewer, projectID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}
