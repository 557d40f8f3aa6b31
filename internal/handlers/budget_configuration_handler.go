package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetplan/internal/models"
	"budgetplan/internal/pagination"
	"budgetplan/internal/services"
)

// BudgetConfigurationHandler handles budget configuration requests.
type BudgetConfigurationHandler struct {
	configurationService services.BudgetConfigurationServicer
	auditService         services.AuditServicer
}

// NewBudgetConfigurationHandler creates a new BudgetConfigurationHandler.
func NewBudgetConfigurationHandler(
	configurationService services.BudgetConfigurationServicer,
	auditService services.AuditServicer,
) *BudgetConfigurationHandler {
	return &BudgetConfigurationHandler{configurationService: configurationService, auditService: auditService}
}

// BudgetRequest is one budget of a configuration being created.
type BudgetRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Percentage int    `json:"percentage" binding:"min=0,max=100"`
}

// CreateBudgetConfigurationRequest represents the request payload for creating a configuration.
type CreateBudgetConfigurationRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100"`
	Budgets []BudgetRequest `json:"budgets" binding:"dive"`
}

// UpdateBudgetConfigurationRequest represents the request payload for patching a configuration.
// Budgets lists the actions to apply; see models.BudgetAction.
type UpdateBudgetConfigurationRequest struct {
	BudgetConfigurationName *string               `json:"budget_configuration_name" binding:"omitempty,min=1,max=100"`
	Budgets                 []models.BudgetAction `json:"budgets" binding:"dive"`
}

// CreateConfiguration handles the creation of a new budget configuration.
// @Summary     Create a budget configuration
// @Description Create a configuration whose budget percentages add up to 100 and make it active
// @Tags        budget-configurations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetConfigurationRequest true "Configuration details"
// @Success     201 {object} models.BudgetConfiguration "Configuration created"
// @Failure     400 {object} ErrorResponse "Invalid input or percentages do not add up to 100"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budgets given"
// @Failure     409 {object} ErrorResponse "Name already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-configurations [post]
func (h *BudgetConfigurationHandler) CreateConfiguration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	budgets := make([]services.NewBudget, 0, len(req.Budgets))
	for _, b := range req.Budgets {
		budgets = append(budgets, services.NewBudget{Name: b.Name, Percentage: b.Percentage})
	}

	configuration, err := h.configurationService.CreateConfiguration(c.Request.Context(), userID, req.Name, budgets)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "CREATE_BUDGET_CONFIGURATION", "budget_configuration", configuration.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "budgets": len(budgets)})

	c.JSON(http.StatusCreated, gin.H{"budget_configuration": configuration})
}

// GetConfigurations handles listing configurations for the authenticated user.
// @Summary     Get budget configurations
// @Description Get a paginated list of the user's budget configurations with their budgets
// @Tags        budget-configurations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BudgetConfiguration] "Paginated configurations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-configurations [get]
func (h *BudgetConfigurationHandler) GetConfigurations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.configurationService.GetUserConfigurations(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetConfiguration handles retrieving a single configuration.
// @Summary     Get budget configuration
// @Description Get a budget configuration and its budgets
// @Tags        budget-configurations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Configuration ID"
// @Success     200 {object} models.BudgetConfiguration "Configuration"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-configurations/{id} [get]
func (h *BudgetConfigurationHandler) GetConfiguration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	configurationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	configuration, err := h.configurationService.GetConfigurationByID(c.Request.Context(), userID, configurationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_configuration": configuration})
}

// UpdateConfiguration handles partial updates of a configuration and its budgets.
// @Summary     Patch budget configuration
// @Description Rename a configuration and/or update, delete and create budgets. The resulting percentages must add up to 100.
// @Tags        budget-configurations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                              true "Configuration ID"
// @Param       request body UpdateBudgetConfigurationRequest true "Patch"
// @Success     200 {object} models.BudgetConfiguration "Configuration updated"
// @Failure     400 {object} ErrorResponse "Invalid input or percentages do not add up to 100"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration or budgets not found"
// @Failure     409 {object} ErrorResponse "Name already in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-configurations/{id} [patch]
func (h *BudgetConfigurationHandler) UpdateConfiguration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	configurationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	configuration, err := h.configurationService.UpdateConfiguration(
		c.Request.Context(), userID, configurationID, req.BudgetConfigurationName, req.Budgets,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"actions": len(req.Budgets)}
	if req.BudgetConfigurationName != nil {
		changes["name"] = *req.BudgetConfigurationName
	}
	h.auditService.Log(c.Request.Context(), userID, "UPDATE_BUDGET_CONFIGURATION", "budget_configuration", configurationID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"budget_configuration": configuration})
}

// DeleteConfiguration handles deleting a configuration and its budgets.
// @Summary     Delete budget configuration
// @Description Soft-delete a configuration together with its budgets
// @Tags        budget-configurations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Configuration ID"
// @Success     200 {object} map[string]string "Configuration deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-configurations/{id} [delete]
func (h *BudgetConfigurationHandler) DeleteConfiguration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	configurationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.configurationService.DeleteConfiguration(c.Request.Context(), userID, configurationID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "DELETE_BUDGET_CONFIGURATION", "budget_configuration", configurationID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget configuration deleted successfully"})
}

// ActivateConfiguration handles switching the user's active configuration.
// @Summary     Activate budget configuration
// @Description Make the configuration the one new wages are distributed across
// @Tags        budget-configurations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Configuration ID"
// @Success     200 {object} models.BudgetConfiguration "Configuration activated"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget-configurations/{id}/activate [post]
func (h *BudgetConfigurationHandler) ActivateConfiguration(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	configurationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	configuration, err := h.configurationService.ActivateConfiguration(c.Request.Context(), userID, configurationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, "ACTIVATE_BUDGET_CONFIGURATION", "budget_configuration", configurationID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"budget_configuration": configuration})
}
