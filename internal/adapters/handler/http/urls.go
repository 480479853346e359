package http

import (
	"fmt"

	"github.com/google/uuid"
)

// Named routes. Templates and tests resolve paths through these instead of
// hard-coding them.

func IndexURL() string {
	return "/polls/"
}

func DetailURL(id uuid.UUID) string {
	return fmt.Sprintf("/polls/%s/", id)
}

func ResultsURL(id uuid.UUID) string {
	return fmt.Sprintf("/polls/%s/results/", id)
}

func VoteURL(id uuid.UUID) string {
	return fmt.Sprintf("/polls/%s/vote/", id)
}
