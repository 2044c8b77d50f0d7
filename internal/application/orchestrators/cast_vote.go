package orchestrators

import (
	"context"
	"log/slog"

	"council/internal/domain/poll"
)

// CastVoteCommand holds a single poll vote.
type CastVoteCommand struct {
	Choice string
}

// CastVoteDeps holds dependencies for CastVote.
type CastVoteDeps struct {
	Poll poll.Poll
}

// ExecuteCastVote acknowledges a vote without recording it.
// Votes are not tallied anywhere; each call is independent.
// PRE: deps.Poll is valid
// POST: returns an acknowledgment naming the choice, or poll.ErrUnknownChoice
func ExecuteCastVote(_ context.Context, cmd CastVoteCommand, deps CastVoteDeps) (poll.Acknowledgment, error) {
	ack, err := deps.Poll.Acknowledge(poll.Choice(cmd.Choice))
	if err != nil {
		return poll.Acknowledgment{}, err
	}
	slog.Info("vote_acknowledged", "choice", string(ack.Choice))
	return ack, nil
}
