package v1

import (
	"net/http"

	"go-swipe-backend/internal/delivery/http/response"
	"go-swipe-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports database and redis reachability
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.healthUC.Check(c.Request.Context())
	if status["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
		return
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
