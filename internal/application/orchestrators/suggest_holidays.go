package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"council/internal/adapters/textgen"
	"council/internal/domain/calendar"
	"council/internal/domain/holiday"
)

// SuggestHolidaysQuery asks for commemorative days of the month after Now.
type SuggestHolidaysQuery struct {
	Now      time.Time
	Country  string
	Language string
}

// SuggestHolidaysDeps holds dependencies for SuggestHolidays.
type SuggestHolidaysDeps struct {
	Generator textgen.Generator
}

// ExecuteSuggestHolidays asks the text generator for next month's educational commemorative days.
// PRE: deps.Generator is non-nil
// POST: returns the generated text, or a failure Result; never returns an error to the caller
func ExecuteSuggestHolidays(ctx context.Context, q SuggestHolidaysQuery, deps SuggestHolidaysDeps) textgen.Result {
	req := holiday.Request{
		Month:    calendar.NextMonth(q.Now),
		Country:  q.Country,
		Language: q.Language,
	}
	if err := req.Validate(); err != nil {
		return textgen.Failure(fmt.Errorf("holiday request: %w", err))
	}

	res := deps.Generator.Generate(ctx, req.Prompt())
	if !res.OK() {
		slog.Warn("holiday_suggestions_failed", "month", calendar.MonthLabel(req.Month), "error", res.Err.Error())
		return res
	}
	slog.Info("holiday_suggestions_generated", "month", calendar.MonthLabel(req.Month))
	return res
}
