package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/comunidad/internal/domain/feeds"
)

// Activities lists activities by scope (upcoming, past, all) or by ?date=.
func (h *Handler) Activities(c *gin.Context) {
	ctx := c.Request.Context()
	force := wantsRefresh(c)

	if raw := c.Query("date"); raw != "" {
		date, err := h.parseDate(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD", err))
			return
		}
		if force {
			h.feedsSvc.Activities(ctx, true)
		}
		c.JSON(http.StatusOK, h.withFetchedAt(gin.H{"activities": h.feedsSvc.ActivitiesOn(ctx, date)}, feeds.FeedActivities))
		return
	}

	var items []feeds.Activity
	switch scope := strings.ToLower(c.DefaultQuery("scope", "upcoming")); scope {
	case "upcoming":
		items = h.feedsSvc.UpcomingActivities(ctx, force)
	case "past":
		if force {
			h.feedsSvc.Activities(ctx, true)
		}
		items = h.feedsSvc.PastActivities(ctx)
	case "all":
		items = h.feedsSvc.Activities(ctx, force)
	default:
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "scope must be upcoming, past or all", nil))
		return
	}
	c.JSON(http.StatusOK, h.withFetchedAt(gin.H{"activities": items}, feeds.FeedActivities))
}

// MarkedDates lists the YYYY-MM-DD days carrying at least one activity.
func (h *Handler) MarkedDates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": h.feedsSvc.MarkedDates(c.Request.Context())})
}

// Celebrations lists today's celebrations or the whole sheet.
func (h *Handler) Celebrations(c *gin.Context) {
	ctx := c.Request.Context()
	force := wantsRefresh(c)

	var items []feeds.Celebration
	switch scope := strings.ToLower(c.DefaultQuery("scope", "today")); scope {
	case "today":
		items = h.feedsSvc.TodayCelebrations(ctx, force)
	case "all":
		items = h.feedsSvc.Celebrations(ctx, force)
	default:
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "scope must be today or all", nil))
		return
	}
	c.JSON(http.StatusOK, h.withFetchedAt(gin.H{"celebrations": items}, feeds.FeedCelebrations))
}

// Community returns the directory grouped by category.
func (h *Handler) Community(c *gin.Context) {
	categories := h.feedsSvc.Community(c.Request.Context(), wantsRefresh(c))
	c.JSON(http.StatusOK, h.withFetchedAt(gin.H{"categories": categories}, feeds.FeedCommunity))
}

// withFetchedAt adds the feed's last download time so clients can tell how
// stale the data is. Feeds never populated omit the field.
func (h *Handler) withFetchedAt(body gin.H, feed string) gin.H {
	if at := h.feedsSvc.FetchedAt(feed); !at.IsZero() {
		body["fetchedAt"] = at.Format(time.RFC3339)
	}
	return body
}

func wantsRefresh(c *gin.Context) bool {
	switch strings.ToLower(c.Query("refresh")) {
	case "1", "true", "yes":
		return true
	}
	return false
}
