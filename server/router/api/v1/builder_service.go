package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bunpou/bunpou/plugin/ai"
)

type validateSentenceRequest struct {
	Words        []string `json:"words"`
	UserSentence string   `json:"userSentence"`
}

// ValidateSentence asks the AI validator to score a learner-built sentence
// against the target words. Empty input is rejected before any upstream call.
func (s *APIV1Service) ValidateSentence(c echo.Context) error {
	req := &validateSentenceRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if len(req.Words) == 0 || strings.TrimSpace(req.UserSentence) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "words and userSentence are required")
	}

	verdict, err := s.Validator.Validate(c.Request().Context(), req.Words, req.UserSentence)
	switch {
	case errors.Is(err, ai.ErrDisabled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "ai validation is not available")
	case errors.Is(err, ai.ErrUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, "ai validation failed").SetInternal(err)
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "ai validation failed").SetInternal(err)
	}

	return c.JSON(http.StatusOK, verdict)
}
