package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trovestudio/ffetrack/internal/services"
	"github.com/trovestudio/ffetrack/internal/utils"
	"gorm.io/gorm"
)

// ProjectHandler handles project routes
type ProjectHandler struct {
	DB *gorm.DB
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Create a new design project with an empty room list
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body services.ProjectInput true "Project fields"
// @Success 201 {object} models.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	project, err := services.CreateProject(h.DB, input)
	if err != nil {
		return serviceError(c, err, "createProject")
	}

	return utils.SuccessResponse(c, project, fiber.StatusCreated)
}

// GetProject handles GET /api/projects/:id
// @Summary Get a project tree
// @Description Get one project with its full room/category/subcategory/item tree
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	project, err := services.GetProject(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "getProject")
	}
	return utils.SuccessResponse(c, project, fiber.StatusOK)
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description List all projects without their trees
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := services.ListProjects(h.DB)
	if err != nil {
		return serviceError(c, err, "listProjects")
	}
	return utils.SuccessResponse(c, projects, fiber.StatusOK)
}

// UpdateProject handles PUT /api/projects/:id
// @Summary Update a project
// @Description Merge the supplied fields into an existing project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body services.ProjectInput true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	project, err := services.UpdateProject(h.DB, c.Params("id"), input)
	if err != nil {
		return serviceError(c, err, "updateProject")
	}
	return utils.SuccessResponse(c, project, fiber.StatusOK)
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Delete a project
// @Description Delete a project and all descendant rooms, categories, subcategories and items
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	affected, err := services.DeleteProject(h.DB, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "deleteProject")
	}
	return utils.MutationSuccessResponse(c, affected)
}
