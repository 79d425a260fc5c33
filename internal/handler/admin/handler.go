package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/handler"
	"github.com/medvault/booking-api/internal/model"
)

// DashboardService provides the aggregate counts
type DashboardService interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
}

// UserService provides admin user management
type UserService interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	dashboard DashboardService
	users     UserService
}

func NewHandler(dashboard DashboardService, users UserService) *Handler {
	return &Handler{
		dashboard: dashboard,
		users:     users,
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.GetStats(c.Request.Context())
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/stats", h.GetStats)
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}
