package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee endpoints. writeGuards run before
// POST only.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	writeGuards ...gin.HandlerFunc,
) {
	create := append(append([]gin.HandlerFunc{}, writeGuards...), h.Create)

	employees := r.Group("/employees")
	{
		employees.GET("/", h.GetAll)
		employees.POST("/", create...)
		employees.GET("/:id", h.GetById)
	}
}
