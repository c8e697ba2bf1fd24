package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LatestDigests returns the most recently composed digest batch.
func (h *Handler) LatestDigests(c *gin.Context) {
	batch, err := h.digestSvc.Latest(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err, "digest_failed"))
		return
	}
	c.JSON(http.StatusOK, batch)
}

// RunDigests composes today's digests and replaces the published batch.
func (h *Handler) RunDigests(c *gin.Context) {
	batch, err := h.digestSvc.Run(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err, "digest_failed"))
		return
	}
	if claims, ok := getClaims(c); ok {
		h.logger.Info("digests run by admin", "subject", claims.Subject, "count", len(batch.Digests))
	}
	c.JSON(http.StatusOK, batch)
}

// RefreshFeeds forces a download of every spreadsheet.
func (h *Handler) RefreshFeeds(c *gin.Context) {
	report := h.feedsSvc.RefreshAll(c.Request.Context())
	if claims, ok := getClaims(c); ok {
		h.logger.Info("feeds refreshed by admin", "subject", claims.Subject)
	}
	c.JSON(http.StatusOK, report)
}
