package textgen

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the service answers without any text.
var ErrEmptyResponse = errors.New("the AI service returned an empty response")

// Result is the outcome of one generation call.
// Exactly one of Text or Err is meaningful: Err == nil means success.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the call produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Display returns the text to show in place of the generated content.
// On failure it embeds the failure description so the page never breaks.
func (r Result) Display() string {
	if r.OK() {
		return r.Text
	}
	return fmt.Sprintf("An error occurred while connecting to the AI: %s", r.Err.Error())
}

// Success wraps generated text.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure wraps the reason a call failed.
func Failure(err error) Result {
	return Result{Err: err}
}

// Generator turns a natural-language prompt into text.
// Implementations never panic and never return a Result with both fields empty.
type Generator interface {
	Generate(ctx context.Context, prompt string) Result
}
