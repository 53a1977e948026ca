package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bunpou/bunpou/server/service/sentence"
	"github.com/bunpou/bunpou/store"
)

type grammarDetail struct {
	*store.Grammar

	// Highlights annotates each example sentence with display spans, in the
	// same order as Examples.
	Highlights [][]sentence.Span `json:"highlights"`
}

// ListGrammar serves the grammar catalog. With an id query parameter it
// returns a single entry with highlighted examples, or 404; otherwise a
// filtered list, empty when nothing matches.
func (s *APIV1Service) ListGrammar(c echo.Context) error {
	ctx := c.Request().Context()

	if id := c.QueryParam("id"); id != "" {
		entry, err := s.Store.GetGrammar(ctx, &store.FindGrammar{ID: &id})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to get grammar entry").SetInternal(err)
		}
		if entry == nil {
			return echo.NewHTTPError(http.StatusNotFound, "grammar entry not found")
		}

		detail := &grammarDetail{Grammar: entry, Highlights: [][]sentence.Span{}}
		for _, example := range entry.Examples {
			detail.Highlights = append(detail.Highlights, sentence.Highlight(example.Japanese, entry.Pattern))
		}
		return c.JSON(http.StatusOK, detail)
	}

	find := &store.FindGrammar{}
	if level := c.QueryParam("level"); level != "" {
		level = strings.ToUpper(level)
		find.Level = &level
	}
	if lessonParam := c.QueryParam("lesson"); lessonParam != "" {
		lesson, err := strconv.Atoi(lessonParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lesson number")
		}
		find.Lesson = &lesson
	}
	if search := c.QueryParam("search"); search != "" {
		find.Search = &search
	}

	list, err := s.Store.ListGrammars(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list grammar entries").SetInternal(err)
	}
	if list == nil {
		list = []*store.Grammar{}
	}
	return c.JSON(http.StatusOK, list)
}
