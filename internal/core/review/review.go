// Package review holds the review-comment domain model and the overlay
// positioning logic that anchors threads and pending comments onto aligned
// diff grids.
package review

import (
	"context"
	"errors"
	"time"

	"github.com/actionshrimp/gitlad/internal/core/diff"
)

// Sentinel errors for review operations.
var (
	// ErrNoPullRequest is returned when the checkout has no pull request to
	// load threads from.
	ErrNoPullRequest = errors.New("no pull request for current branch")
)

// Comment is a single message inside a review thread.
type Comment struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Thread is a line-anchored review conversation. Line is 0 when the thread's
// anchor line no longer exists in the current diff (fully outdated); such
// threads cannot be positioned.
type Thread struct {
	ID           string    `json:"id"`
	IsResolved   bool      `json:"is_resolved"`
	IsOutdated   bool      `json:"is_outdated"`
	Path         string    `json:"path"`
	Line         int       `json:"line"`
	OriginalLine int       `json:"original_line"`
	StartLine    int       `json:"start_line"` // 0 for single-line threads
	Side         diff.Side `json:"side"`
	Comments     []Comment `json:"comments"`
}

// PendingComment is an unsubmitted, locally held annotation. It lives in the
// in-memory session until submitted or discarded.
type PendingComment struct {
	Path string    `json:"path"`
	Line int       `json:"line"`
	Side diff.Side `json:"side"`
	Body string    `json:"body"`
}

// ThreadSource loads review threads for a pull request and accepts
// submission of pending comments.
type ThreadSource interface {
	// ListThreads returns all review threads of the pull request.
	ListThreads(ctx context.Context, pr int) ([]*Thread, error)

	// SubmitPending posts pending comments to the pull request.
	SubmitPending(ctx context.Context, pr int, pending []PendingComment) error
}
