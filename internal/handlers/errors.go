package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/middleware"
)

// respondError maps a service error to its HTTP status. Server-side failures
// hide their detail behind a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
		return
	}
	logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// requireUserID aborts with 401 when the auth middleware did not set a user.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// parseDateQuery reads a YYYY-MM-DD query parameter. Missing values return nil.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid " + name + ": use YYYY-MM-DD")
	}
	return &t, nil
}

// parsePeriod reads the required fromDate and toDate query parameters.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	from, err := parseDateQuery(c, "fromDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDateQuery(c, "toDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from == nil || to == nil {
		return time.Time{}, time.Time{}, apperrors.NewBadRequestError("fromDate and toDate are required (YYYY-MM-DD)")
	}
	return *from, *to, nil
}
