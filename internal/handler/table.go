package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/fundtable/internal/service"
	"github.com/maxviazov/fundtable/pkg/response"
)

// TableHandler exposes table lifecycle and navigation as JSON.
type TableHandler struct {
	svc service.TableService
}

func NewTableHandler(svc service.TableService) *TableHandler { return &TableHandler{svc: svc} }

func (h *TableHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/tables")
	{
		g.POST("", h.mount)
		g.GET("/:id", h.view)
		g.PUT("/:id/page", h.goToPage)
		g.POST("/:id/next", h.next)
		g.POST("/:id/prev", h.prev)
		g.PUT("/:id/page-size", h.setPageSize)
		g.DELETE("/:id", h.unmount)
	}
}

type goToPageRequest struct {
	Page *int `json:"page"`
}

type setPageSizeRequest struct {
	PageSize *int `json:"page_size"`
}

func (h *TableHandler) mount(c *gin.Context) {
	v, err := h.svc.Mount(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header("Location", APIV1Prefix+"/tables/"+v.ID)
	response.WriteData(c, http.StatusCreated, v)
}

func (h *TableHandler) view(c *gin.Context) {
	v, err := h.svc.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, v)
}

func (h *TableHandler) goToPage(c *gin.Context) {
	var req goToPageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Page == nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "page", Message: "must be an integer"}}))
		return
	}
	v, err := h.svc.GoToPage(c.Request.Context(), c.Param("id"), *req.Page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, v)
}

func (h *TableHandler) next(c *gin.Context) {
	v, err := h.svc.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, v)
}

func (h *TableHandler) prev(c *gin.Context) {
	v, err := h.svc.Prev(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, v)
}

func (h *TableHandler) setPageSize(c *gin.Context) {
	var req setPageSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PageSize == nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "page_size", Message: "must be an integer"}}))
		return
	}
	v, err := h.svc.SetPageSize(c.Request.Context(), c.Param("id"), *req.PageSize)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, v)
}

func (h *TableHandler) unmount(c *gin.Context) {
	if err := h.svc.Unmount(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
