package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bunpou/bunpou/store"
)

type grammarIDRequest struct {
	GrammarID string `json:"grammarId"`
}

type quizOutcomeRequest struct {
	GrammarID string `json:"grammarId"`
	Correct   bool   `json:"correct"`
}

// GetProgress returns the visitor's ledger, a zero-valued default when the
// visitor has no stored record.
func (s *APIV1Service) GetProgress(c echo.Context) error {
	ledger, err := s.ProgressService.Get(c.Request().Context(), visitorID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get progress").SetInternal(err)
	}
	return c.JSON(http.StatusOK, ledger)
}

// ReplaceProgress stores the posted ledger wholesale for the visitor. The
// visitor identity always comes from the header, never from the body.
func (s *APIV1Service) ReplaceProgress(c echo.Context) error {
	ledger := &store.ProgressLedger{}
	if err := c.Bind(ledger); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed progress document").SetInternal(err)
	}
	ledger.VisitorID = visitorID(c)

	stored, err := s.ProgressService.Replace(c.Request().Context(), ledger)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store progress").SetInternal(err)
	}
	return c.JSON(http.StatusOK, stored)
}

// MarkLearned adds a grammar entry to the visitor's learned set.
func (s *APIV1Service) MarkLearned(c echo.Context) error {
	req := &grammarIDRequest{}
	if err := c.Bind(req); err != nil || req.GrammarID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "grammarId is required")
	}

	ledger, err := s.ProgressService.MarkLearned(c.Request().Context(), visitorID(c), req.GrammarID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark learned").SetInternal(err)
	}
	return c.JSON(http.StatusOK, ledger)
}

// UnmarkLearned removes a grammar entry from the visitor's learned set.
func (s *APIV1Service) UnmarkLearned(c echo.Context) error {
	grammarID := c.Param("grammarId")
	if grammarID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "grammarId is required")
	}

	ledger, err := s.ProgressService.UnmarkLearned(c.Request().Context(), visitorID(c), grammarID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to unmark learned").SetInternal(err)
	}
	return c.JSON(http.StatusOK, ledger)
}

// ToggleFavorite flips a grammar entry's favorite status.
func (s *APIV1Service) ToggleFavorite(c echo.Context) error {
	req := &grammarIDRequest{}
	if err := c.Bind(req); err != nil || req.GrammarID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "grammarId is required")
	}

	ledger, err := s.ProgressService.ToggleFavorite(c.Request().Context(), visitorID(c), req.GrammarID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to toggle favorite").SetInternal(err)
	}
	return c.JSON(http.StatusOK, ledger)
}

// RecordQuizOutcome records one answered quiz question.
func (s *APIV1Service) RecordQuizOutcome(c echo.Context) error {
	req := &quizOutcomeRequest{}
	if err := c.Bind(req); err != nil || req.GrammarID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "grammarId is required")
	}

	ledger, err := s.ProgressService.RecordQuizOutcome(c.Request().Context(), visitorID(c), req.GrammarID, req.Correct)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record quiz outcome").SetInternal(err)
	}
	return c.JSON(http.StatusOK, ledger)
}

// ListReviews returns the visitor's review queue, most urgent first.
func (s *APIV1Service) ListReviews(c echo.Context) error {
	queue, err := s.ProgressService.ReviewQueue(c.Request().Context(), visitorID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list reviews").SetInternal(err)
	}
	if queue == nil {
		queue = []store.ReviewRecord{}
	}
	return c.JSON(http.StatusOK, queue)
}
