package department

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the department endpoints. writeGuards run before
// POST only.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	writeGuards ...gin.HandlerFunc,
) {
	create := append(append([]gin.HandlerFunc{}, writeGuards...), h.Create)

	departments := r.Group("/departments")
	{
		departments.GET("/", h.GetAll)
		departments.POST("/", create...)
		departments.GET("/:id", h.GetById)
	}
}
