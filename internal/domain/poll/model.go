package poll

import (
	"errors"
	"fmt"
)

// Choice is one of the fixed answers of a poll.
type Choice string

// Lunchtime song genres.
const (
	ChoiceKPop      Choice = "K-POP"
	ChoiceClassical Choice = "Classical"
	ChoiceOST       Choice = "OST"
	ChoicePop       Choice = "Pop"
)

// Domain errors
var (
	ErrUnknownChoice = errors.New("choice is not one of the poll options")
	ErrNoChoices     = errors.New("poll must offer at least one choice")
	ErrEmptyQuestion = errors.New("poll question cannot be empty")
)

// Poll is a single-question survey with a fixed set of choices.
// Votes are acknowledged but never counted: there is no tally.
type Poll struct {
	Title    string
	Question string
	Prompt   string
	Choices  []Choice
}

// Acknowledgment is the transient response to a single vote.
type Acknowledgment struct {
	Choice  Choice
	Message string
}

// MonthlyPoll is this month's survey.
var MonthlyPoll = Poll{
	Title:    "This month's survey",
	Question: "Lunchtime song request: which genre?",
	Prompt:   "Pick just one",
	Choices:  []Choice{ChoiceKPop, ChoiceClassical, ChoiceOST, ChoicePop},
}

// Validate checks the poll is renderable.
// PRE: none
// POST: returns nil if the poll has a question and choices
func (p *Poll) Validate() error {
	if p.Question == "" {
		return ErrEmptyQuestion
	}
	if len(p.Choices) == 0 {
		return ErrNoChoices
	}
	return nil
}

// Default returns the preselected choice.
// PRE: p.Validate() == nil
func (p *Poll) Default() Choice {
	return p.Choices[0]
}

// Has reports whether c is one of the poll's choices.
func (p *Poll) Has(c Choice) bool {
	for _, v := range p.Choices {
		if v == c {
			return true
		}
	}
	return false
}

// Acknowledge builds the celebratory message for a vote.
// An empty choice falls back to the default option.
// PRE: p.Validate() == nil
// POST: returns an acknowledgment naming the choice, or ErrUnknownChoice
// INVARIANT: Poll is not mutated; nothing is recorded
func (p *Poll) Acknowledge(c Choice) (Acknowledgment, error) {
	if c == "" {
		c = p.Default()
	}
	if !p.Has(c) {
		return Acknowledgment{}, ErrUnknownChoice
	}
	return Acknowledgment{
		Choice:  c,
		Message: fmt.Sprintf("You cast your precious vote for '%s'!", c),
	}, nil
}
