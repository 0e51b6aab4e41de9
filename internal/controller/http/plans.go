package http

import (
	"net/http"
	"strconv"

	"game-platform/internal/models"
	"game-platform/internal/presenter"
	"game-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type plansStore interface {
	Create(*models.SubscriptionPlan) error
	GetWithAuthor(uint64) (*models.SubscriptionPlan, error)
	ListByAuthor(authorID uint64) ([]models.SubscriptionPlan, error)
	Patch(uint64, map[string]interface{}) (*models.SubscriptionPlan, error)
	Delete(uint64) error
}

type PlansHandler struct {
	plans plansStore
	log   *logger.Logger
}

func NewPlansHandler(plans plansStore, log *logger.Logger) *PlansHandler {
	return &PlansHandler{plans: plans, log: log}
}

func (h *PlansHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/subscription-plans", h.List)
	rg.GET("/subscription-plans/:id", h.Get)
	rg.POST("/subscription-plans", h.Create)
	rg.PUT("/subscription-plans/:id", h.Update)
	rg.PATCH("/subscription-plans/:id", h.Update)
	rg.DELETE("/subscription-plans/:id", h.Delete)
}

// List godoc
// @Summary      List subscription plans
// @Tags         subscription-plans
// @Produce      json
// @Param        author query int false "Restrict to plans by this author id"
// @Success      200  {array}  presenter.PlanResponse
// @Failure      400  {object}  map[string]string
// @Router       /subscription-plans [get]
func (h *PlansHandler) List(c *gin.Context) {
	var authorID uint64
	if authorStr := c.Query("author"); authorStr != "" {
		parsed, err := strconv.ParseUint(authorStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author id"})
			return
		}
		// No row carries author id 0, so the filter matches nothing.
		if parsed == 0 {
			c.JSON(http.StatusOK, []presenter.PlanResponse{})
			return
		}
		authorID = parsed
	}

	plans, err := h.plans.ListByAuthor(authorID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	out := make([]presenter.PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = presenter.Plan(p)
	}
	c.JSON(http.StatusOK, out)
}

// Get godoc
// @Summary      Get subscription plan by ID
// @Tags         subscription-plans
// @Produce      json
// @Param        id path int true "Plan ID"
// @Success      200  {object}  presenter.PlanResponse
// @Failure      404  {object}  map[string]string
// @Router       /subscription-plans/{id} [get]
func (h *PlansHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plan, err := h.plans.GetWithAuthor(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Plan(*plan))
}

// Create godoc
// @Summary      Create subscription plan
// @Tags         subscription-plans
// @Accept       json
// @Produce      json
// @Param        request body models.SubscriptionPlan true "Plan data"
// @Success      201  {object}  presenter.PlanResponse
// @Failure      400  {object}  map[string]string
// @Router       /subscription-plans [post]
func (h *PlansHandler) Create(c *gin.Context) {
	var plan models.SubscriptionPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan.ID = 0
	if err := h.plans.Create(&plan); err != nil {
		respondError(c, h.log, err)
		return
	}

	created, err := h.plans.GetWithAuthor(plan.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, presenter.Plan(*created))
}

// Update godoc
// @Summary      Update subscription plan
// @Tags         subscription-plans
// @Accept       json
// @Produce      json
// @Param        id path int true "Plan ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Success      200  {object}  presenter.PlanResponse
// @Failure      404  {object}  map[string]string
// @Router       /subscription-plans/{id} [patch]
func (h *PlansHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fields, ok := bindUpdateFields(c)
	if !ok {
		return
	}

	if _, err := h.plans.Patch(id, fields); err != nil {
		respondError(c, h.log, err)
		return
	}

	updated, err := h.plans.GetWithAuthor(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, presenter.Plan(*updated))
}

// Delete godoc
// @Summary      Delete subscription plan
// @Tags         subscription-plans
// @Produce      json
// @Param        id path int true "Plan ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /subscription-plans/{id} [delete]
func (h *PlansHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.plans.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
