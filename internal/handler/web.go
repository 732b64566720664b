package handler

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/fundtable/internal/service"
	"github.com/maxviazov/fundtable/internal/table"
	"github.com/maxviazov/fundtable/pkg/response"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded HTML views once.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// WebHandler renders tables as HTML pages. Every form post redirects back to the table page.
type WebHandler struct {
	svc service.TableService
}

func NewWebHandler(svc service.TableService) *WebHandler { return &WebHandler{svc: svc} }

func (h *WebHandler) Register(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())

	r.GET("/", h.open)
	g := r.Group("/tables")
	{
		g.GET("/:id", h.page)
		g.POST("/:id/prev", h.prev)
		g.POST("/:id/next", h.next)
		g.POST("/:id/page-size", h.setPageSize)
		g.POST("/:id/close", h.close)
	}
}

func tablePath(id string) string { return "/tables/" + id }

func (h *WebHandler) fail(c *gin.Context, err error) {
	status, payload := response.MapError(err)
	msg := payload.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.HTML(status, "error.html", gin.H{"title": table.Title, "error": msg})
}

// open mounts a fresh table and sends the browser to it.
func (h *WebHandler) open(c *gin.Context) {
	v, err := h.svc.Mount(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, tablePath(v.ID))
}

func (h *WebHandler) page(c *gin.Context) {
	v, err := h.svc.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "table.html", v)
}

func (h *WebHandler) prev(c *gin.Context) {
	if _, err := h.svc.Prev(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, tablePath(c.Param("id")))
}

func (h *WebHandler) next(c *gin.Context) {
	if _, err := h.svc.Next(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, tablePath(c.Param("id")))
}

func (h *WebHandler) setPageSize(c *gin.Context) {
	size, err := strconv.Atoi(c.PostForm("page_size"))
	if err != nil {
		h.fail(c, service.NewInvalidInputError([]service.FieldError{{Field: "page_size", Message: "must be an integer"}}))
		return
	}
	if _, err := h.svc.SetPageSize(c.Request.Context(), c.Param("id"), size); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, tablePath(c.Param("id")))
}

func (h *WebHandler) close(c *gin.Context) {
	if err := h.svc.Unmount(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "error.html", gin.H{"title": table.Title, "error": "Table closed"})
}
