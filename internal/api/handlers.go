package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/errors"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/logger"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/metrics"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/observability"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/registry"
)

// Handler holds the request handlers for the activities API.
type Handler struct {
	registry  *registry.Registry
	logger    logger.Logger
	obs       *observability.Observability
	responder *apperrors.Responder
	staticFS  http.FileSystem
}

func NewHandler(reg *registry.Registry, log logger.Logger, obs *observability.Observability, staticDir string) *Handler {
	return &Handler{
		registry:  reg,
		logger:    log.WithFields(map[string]interface{}{"component": "api"}),
		obs:       obs,
		responder: apperrors.NewResponder(log),
		staticFS:  http.Dir(staticDir),
	}
}

// ListActivities handles GET /activities.
func (h *Handler) ListActivities(c *gin.Context) {
	start := time.Now()
	activities := h.registry.List()
	h.obs.RecordOperationDuration(c.Request.Context(), "list", time.Since(start))
	h.obs.RecordOperation(c.Request.Context(), "list", "success")

	c.JSON(http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup.
func (h *Handler) Signup(c *gin.Context) {
	name := activityName(c)
	email := c.Query("email")
	if email == "" {
		h.obs.RecordOperation(c.Request.Context(), "signup", "invalid")
		h.responder.Respond(c, apperrors.NewEmailRequiredError())
		return
	}

	start := time.Now()
	err := h.registry.Signup(name, email)
	h.obs.RecordOperationDuration(c.Request.Context(), "signup", time.Since(start))
	if err != nil {
		h.obs.RecordOperation(c.Request.Context(), "signup", "error")
		h.responder.Respond(c, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	h.obs.RecordOperation(c.Request.Context(), "signup", "success")
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister handles DELETE /activities/{name}/unregister.
func (h *Handler) Unregister(c *gin.Context) {
	name := activityName(c)
	email := c.Query("email")
	if email == "" {
		h.obs.RecordOperation(c.Request.Context(), "unregister", "invalid")
		h.responder.Respond(c, apperrors.NewEmailRequiredError())
		return
	}

	start := time.Now()
	err := h.registry.Unregister(name, email)
	h.obs.RecordOperationDuration(c.Request.Context(), "unregister", time.Since(start))
	if err != nil {
		h.obs.RecordOperation(c.Request.Context(), "unregister", "error")
		h.responder.Respond(c, err)
		return
	}

	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()
	h.obs.RecordOperation(c.Request.Context(), "unregister", "success")
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// Root handles GET / with a temporary redirect to the static UI.
func (h *Handler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
}

// Static serves the bundled web UI from the configured static directory.
// http.FileServer (and ServeFile) canonicalize any path ending in
// /index.html into a 301 to ./, which would break the root redirect's
// target, so serve the resolved file with ServeContent instead.
func (h *Handler) Static(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		rel += "index.html"
	}

	// http.Dir cleans the path, so traversal outside the directory
	// cannot resolve.
	f, err := h.staticFS.Open(rel)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// activityName returns the activity name from the path. gin routes on the
// decoded URL path, so the param already has percent-encoding resolved;
// decoding again would corrupt names that legitimately contain '%'.
func activityName(c *gin.Context) string {
	return c.Param("name")
}
