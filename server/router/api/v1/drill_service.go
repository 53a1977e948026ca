package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bunpou/bunpou/server/service/drill"
	"github.com/bunpou/bunpou/store"
)

type generateDrillRequest struct {
	GrammarID   string     `json:"grammarId"`
	Mode        drill.Mode `json:"mode"`
	MeaningPool []string   `json:"meaningPool"`
}

type answerDrillRequest struct {
	Drill    *drill.Drill `json:"drill"`
	Placed   []string     `json:"placed"`
	Selected string       `json:"selected"`
}

type answerDrillResponse struct {
	Correct bool                  `json:"correct"`
	Ledger  *store.ProgressLedger `json:"ledger,omitempty"`
}

// GenerateDrill builds a fresh drill instance for a grammar entry.
func (s *APIV1Service) GenerateDrill(c echo.Context) error {
	ctx := c.Request().Context()

	req := &generateDrillRequest{}
	if err := c.Bind(req); err != nil || req.GrammarID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "grammarId is required")
	}
	mode := req.Mode
	if mode == "" {
		mode = drill.ModeQuiz
	}
	if mode != drill.ModeQuiz && mode != drill.ModePractice {
		return echo.NewHTTPError(http.StatusBadRequest, "mode must be quiz or practice")
	}

	entry, err := s.Store.GetGrammar(ctx, &store.FindGrammar{ID: &req.GrammarID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get grammar entry").SetInternal(err)
	}
	if entry == nil {
		return echo.NewHTTPError(http.StatusNotFound, "grammar entry not found")
	}

	d, err := s.Generator.Generate(entry, req.MeaningPool, mode)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "cannot generate drill for this entry").SetInternal(err)
	}
	return c.JSON(http.StatusOK, d)
}

// AnswerDrill evaluates a submitted answer. The drill state travels with the
// request because drills are never persisted server-side; the path ID pins
// the one-shot guard. The verdict is recorded into the visitor's ledger, and
// a correct answer also marks the entry learned.
func (s *APIV1Service) AnswerDrill(c echo.Context) error {
	ctx := c.Request().Context()

	req := &answerDrillRequest{}
	if err := c.Bind(req); err != nil || req.Drill == nil || req.Drill.GrammarID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "drill state is required")
	}
	req.Drill.ID = c.Param("id")

	verdict, err := s.Evaluator.Evaluate(req.Drill, drill.Answer{
		Placed:   req.Placed,
		Selected: req.Selected,
	})
	switch {
	case errors.Is(err, drill.ErrAlreadyEvaluated):
		return echo.NewHTTPError(http.StatusConflict, "drill already answered")
	case errors.Is(err, drill.ErrIncomplete):
		return echo.NewHTTPError(http.StatusBadRequest, "all tokens must be placed before answering")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, "cannot evaluate drill").SetInternal(err)
	}

	ledger, err := s.ProgressService.RecordQuizOutcome(ctx, visitorID(c), verdict.GrammarID, verdict.Correct)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record quiz outcome").SetInternal(err)
	}
	if verdict.Correct {
		ledger, err = s.ProgressService.MarkLearned(ctx, visitorID(c), verdict.GrammarID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to mark learned").SetInternal(err)
		}
	}

	return c.JSON(http.StatusOK, &answerDrillResponse{
		Correct: verdict.Correct,
		Ledger:  ledger,
	})
}
