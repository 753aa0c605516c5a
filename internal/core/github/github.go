// Package github loads pull request review threads through the gh CLI and
// posts pending comments back. gh handles auth and host resolution, so no
// tokens ever pass through here.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/logging"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/pkg/executil"
)

const threadsQuery = `query($owner: String!, $name: String!, $pr: Int!) {
  repository(owner: $owner, name: $name) {
    pullRequest(number: $pr) {
      reviewThreads(first: 100) {
        nodes {
          id
          isResolved
          isOutdated
          path
          line
          originalLine
          startLine
          diffSide
          comments(first: 100) {
            nodes {
              author { login }
              body
              createdAt
            }
          }
        }
      }
    }
  }
}`

// Client talks to GitHub through the gh CLI. It implements
// review.ThreadSource.
type Client struct {
	ghPath string
	dir    string
	exec   executil.Executor

	// resolved lazily from gh repo view
	owner string
	name  string
}

var _ review.ThreadSource = (*Client)(nil)

// NewClient creates a gh-backed client operating on the repository at dir.
func NewClient(ghPath, dir string, exec executil.Executor) *Client {
	if ghPath == "" {
		ghPath = "gh"
	}
	return &Client{ghPath: ghPath, dir: dir, exec: exec}
}

// IsAvailable reports whether gh is installed and authenticated.
func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.exec.RunDir(ctx, c.dir, c.ghPath, "auth", "status")
	return err == nil
}

// CurrentPR returns the pull request number for the checked-out branch.
// Returns review.ErrNoPullRequest when the branch has none.
func (c *Client) CurrentPR(ctx context.Context) (int, error) {
	out, err := c.exec.RunDir(ctx, c.dir, c.ghPath, "pr", "view", "--json", "number")
	if err != nil {
		if strings.Contains(string(out), "no pull requests found") {
			return 0, review.ErrNoPullRequest
		}
		return 0, fmt.Errorf("gh pr view: %w", err)
	}

	var raw struct {
		Number int `json:"number"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		return 0, fmt.Errorf("parse pr view output: %w", err)
	}
	if raw.Number == 0 {
		return 0, review.ErrNoPullRequest
	}
	return raw.Number, nil
}

// ListThreads returns all review threads of the pull request.
func (c *Client) ListThreads(ctx context.Context, pr int) ([]*review.Thread, error) {
	log := logging.Component("github")

	if err := c.resolveRepo(ctx); err != nil {
		return nil, err
	}

	out, err := c.exec.RunDir(ctx, c.dir, c.ghPath, "api", "graphql",
		"-f", "query="+threadsQuery,
		"-f", "owner="+c.owner,
		"-f", "name="+c.name,
		"-F", "pr="+strconv.Itoa(pr),
	)
	if err != nil {
		return nil, fmt.Errorf("gh api graphql: %w", err)
	}

	var raw struct {
		Data struct {
			Repository struct {
				PullRequest struct {
					ReviewThreads struct {
						Nodes []struct {
							ID           string `json:"id"`
							IsResolved   bool   `json:"isResolved"`
							IsOutdated   bool   `json:"isOutdated"`
							Path         string `json:"path"`
							Line         int    `json:"line"`
							OriginalLine int    `json:"originalLine"`
							StartLine    int    `json:"startLine"`
							DiffSide     string `json:"diffSide"`
							Comments     struct {
								Nodes []struct {
									Author struct {
										Login string `json:"login"`
									} `json:"author"`
									Body      string    `json:"body"`
									CreatedAt time.Time `json:"createdAt"`
								} `json:"nodes"`
							} `json:"comments"`
						} `json:"nodes"`
					} `json:"reviewThreads"`
				} `json:"pullRequest"`
			} `json:"repository"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parse review threads: %w", err)
	}

	nodes := raw.Data.Repository.PullRequest.ReviewThreads.Nodes
	threads := make([]*review.Thread, 0, len(nodes))
	for _, n := range nodes {
		t := &review.Thread{
			ID:           n.ID,
			IsResolved:   n.IsResolved,
			IsOutdated:   n.IsOutdated,
			Path:         n.Path,
			Line:         n.Line,
			OriginalLine: n.OriginalLine,
			StartLine:    n.StartLine,
			Side:         sideFromAPI(n.DiffSide),
		}
		for _, cm := range n.Comments.Nodes {
			t.Comments = append(t.Comments, review.Comment{
				Author:    cm.Author.Login,
				Body:      cm.Body,
				CreatedAt: cm.CreatedAt,
			})
		}
		threads = append(threads, t)
	}

	log.Debug().Int("pr", pr).Int("threads", len(threads)).Msg("loaded review threads")
	return threads, nil
}

// SubmitPending posts pending comments to the pull request as review
// comments on the head commit.
func (c *Client) SubmitPending(ctx context.Context, pr int, pending []review.PendingComment) error {
	if len(pending) == 0 {
		return nil
	}

	if err := c.resolveRepo(ctx); err != nil {
		return err
	}

	out, err := c.exec.RunDir(ctx, c.dir, c.ghPath, "pr", "view", "--json", "headRefOid")
	if err != nil {
		return fmt.Errorf("gh pr view: %w", err)
	}
	var head struct {
		HeadRefOid string `json:"headRefOid"`
	}
	if err := json.Unmarshal(out, &head); err != nil {
		return fmt.Errorf("parse pr head: %w", err)
	}

	endpoint := fmt.Sprintf("repos/%s/%s/pulls/%d/comments", c.owner, c.name, pr)
	for _, p := range pending {
		_, err := c.exec.RunDir(ctx, c.dir, c.ghPath, "api", endpoint,
			"-f", "body="+p.Body,
			"-f", "path="+p.Path,
			"-f", "commit_id="+head.HeadRefOid,
			"-F", "line="+strconv.Itoa(p.Line),
			"-f", "side="+sideToAPI(p.Side),
		)
		if err != nil {
			return fmt.Errorf("post comment on %s:%d: %w", p.Path, p.Line, err)
		}
	}
	return nil
}

// resolveRepo fills in owner/name from gh repo view on first use.
func (c *Client) resolveRepo(ctx context.Context) error {
	if c.owner != "" && c.name != "" {
		return nil
	}

	out, err := c.exec.RunDir(ctx, c.dir, c.ghPath, "repo", "view", "--json", "owner,name")
	if err != nil {
		return fmt.Errorf("gh repo view: %w", err)
	}

	var raw struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		return fmt.Errorf("parse repo view output: %w", err)
	}
	if raw.Owner.Login == "" || raw.Name == "" {
		return fmt.Errorf("could not determine repository from gh repo view")
	}

	c.owner = raw.Owner.Login
	c.name = raw.Name
	return nil
}

func sideFromAPI(s string) diff.Side {
	if s == "LEFT" {
		return diff.SideLeft
	}
	return diff.SideRight
}

func sideToAPI(s diff.Side) string {
	if s == diff.SideLeft {
		return "LEFT"
	}
	return "RIGHT"
}
