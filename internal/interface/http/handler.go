package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/comunidad/internal/domain/digest"
	"github.com/yanqian/comunidad/internal/domain/feeds"
	"github.com/yanqian/comunidad/internal/domain/readings"
	"github.com/yanqian/comunidad/internal/domain/scripture"
	apperrors "github.com/yanqian/comunidad/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	readingsSvc  readings.Service
	scriptureSvc scripture.Service
	feedsSvc     feeds.Service
	digestSvc    digest.Service
	location     *time.Location
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(readingsSvc readings.Service, scriptureSvc scripture.Service, feedsSvc feeds.Service, digestSvc digest.Service, location *time.Location, logger *slog.Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		readingsSvc:  readingsSvc,
		scriptureSvc: scriptureSvc,
		feedsSvc:     feedsSvc,
		digestSvc:    digestSvc,
		location:     location,
		logger:       logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TodayReading returns the reading for the current local day.
func (h *Handler) TodayReading(c *gin.Context) {
	view, err := h.readingsSvc.Today(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err, "readings_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// ReadingForDate returns the reading for a YYYY-MM-DD date.
func (h *Handler) ReadingForDate(c *gin.Context) {
	date, err := h.parseDate(c.Param("date"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD", err))
		return
	}
	view, err := h.readingsSvc.ForDate(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, fromDomainError(err, "readings_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

// ReadingSchedule lists the active reading plan.
func (h *Handler) ReadingSchedule(c *gin.Context) {
	view, err := h.readingsSvc.Schedule(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err, "readings_failed"))
		return
	}
	c.JSON(http.StatusOK, view)
}

type scriptureResponse struct {
	Available bool `json:"available"`
	scripture.Passage
}

type unavailablePassage struct {
	Available   bool   `json:"available"`
	Reference   string `json:"reference"`
	ExternalURL string `json:"externalUrl"`
	Reason      string `json:"reason,omitempty"`
}

// Passage resolves ?ref= to text, or to the external reader link when the
// reference cannot be served locally.
func (h *Handler) Passage(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("ref"))
	if ref == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ref is required", nil))
		return
	}
	passage, err := h.scriptureSvc.Passage(c.Request.Context(), ref)
	if err != nil {
		if !scripture.Soft(err) {
			abortWithError(c, fromDomainError(err, "scripture_failed"))
			return
		}
		h.logger.Debug("passage unavailable", "reference", ref, "reason", apperrors.CodeOf(err))
		c.JSON(http.StatusOK, unavailablePassage{
			Available:   false,
			Reference:   ref,
			ExternalURL: h.scriptureSvc.ExternalURL(ref),
			Reason:      apperrors.CodeOf(err),
		})
		return
	}
	c.JSON(http.StatusOK, scriptureResponse{Available: true, Passage: passage})
}

// PassageLink returns the external web reader URL for ?ref=.
func (h *Handler) PassageLink(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("ref"))
	if ref == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "ref is required", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"reference": ref, "externalUrl": h.scriptureSvc.ExternalURL(ref)})
}

func (h *Handler) parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(raw), h.location)
}

