package orchestrators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"council/internal/domain/poll"
)

// TestExecuteCastVote_OSTScenario covers two independent votes.
// PRE: monthly poll
// POST: each acknowledgment names its own choice; the poll is unchanged
func TestExecuteCastVote_OSTScenario(t *testing.T) {
	deps := CastVoteDeps{Poll: poll.MonthlyPoll}

	ack, err := ExecuteCastVote(context.Background(), CastVoteCommand{Choice: "OST"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ack.Message, "OST") {
		t.Errorf("Message = %q, want OST", ack.Message)
	}

	ack2, err := ExecuteCastVote(context.Background(), CastVoteCommand{Choice: "Pop"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ack2.Message, "Pop") || strings.Contains(ack2.Message, "OST") {
		t.Errorf("second Message = %q", ack2.Message)
	}
	if len(deps.Poll.Choices) != len(poll.MonthlyPoll.Choices) {
		t.Error("poll mutated by voting")
	}
}

// TestExecuteCastVote_UnknownChoice verifies values outside the poll are rejected.
func TestExecuteCastVote_UnknownChoice(t *testing.T) {
	_, err := ExecuteCastVote(context.Background(), CastVoteCommand{Choice: "Trot"}, CastVoteDeps{Poll: poll.MonthlyPoll})
	if !errors.Is(err, poll.ErrUnknownChoice) {
		t.Errorf("err = %v, want ErrUnknownChoice", err)
	}
}
