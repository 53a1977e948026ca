// Package v1 exposes the JSON HTTP API of the grammar study server.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/bunpou/bunpou/internal/profile"
	"github.com/bunpou/bunpou/plugin/ai"
	"github.com/bunpou/bunpou/server/middleware"
	"github.com/bunpou/bunpou/server/service/drill"
	"github.com/bunpou/bunpou/server/service/progress"
	"github.com/bunpou/bunpou/store"
)

// visitorHeader carries the opaque client-generated visitor token.
const (
	visitorHeader  = "X-Visitor-ID"
	defaultVisitor = "default-user"
)

type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store

	ProgressService *progress.Service
	Generator       *drill.Generator
	Evaluator       *drill.Evaluator
	Validator       *ai.Validator

	limiter *middleware.RateLimiter
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile:         profile,
		Store:           store,
		ProgressService: progress.NewService(store),
		Generator:       drill.NewGenerator(nil),
		Evaluator:       drill.NewEvaluator(),
		Validator:       ai.NewValidator(profile),
		limiter:         middleware.NewRateLimiter(10, 20),
	}
}

// Register mounts all routes under /api/v1 on the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	g := e.Group("/api/v1", s.limiter.Middleware(visitorID))

	g.GET("/grammar", s.ListGrammar)

	g.GET("/progress", s.GetProgress)
	g.PUT("/progress", s.ReplaceProgress)
	g.POST("/progress/learned", s.MarkLearned)
	g.DELETE("/progress/learned/:grammarId", s.UnmarkLearned)
	g.POST("/progress/favorites", s.ToggleFavorite)
	g.POST("/progress/quizzes", s.RecordQuizOutcome)
	g.GET("/progress/reviews", s.ListReviews)

	g.POST("/drills", s.GenerateDrill)
	g.POST("/drills/:id/answer", s.AnswerDrill)

	g.POST("/builder/validate", s.ValidateSentence)
}

// visitorID extracts the visitor identity from the request. Anonymous
// requests share a single default identity, matching the client's behavior
// before it has generated a token.
func visitorID(c echo.Context) string {
	if id := c.Request().Header.Get(visitorHeader); id != "" {
		return id
	}
	return defaultVisitor
}
