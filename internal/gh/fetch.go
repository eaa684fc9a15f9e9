package gh

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/octoprofile/octoprofile/schema"
)

// ResolveUser resolves the target login and returns its profile. A failure
// here aborts the whole run; there is nothing useful to render without it.
func (c *Client) ResolveUser(ctx context.Context, login string) (*schema.UserProfile, error) {
	var payload userEnvelope
	if err := c.query(ctx, userQuery, map[string]any{"login": login}, &payload); err != nil {
		return nil, fmt.Errorf("failed to resolve user %q: %w", login, err)
	}
	if payload.User == nil {
		return nil, fmt.Errorf("user %q not found or no access permissions", login)
	}

	u := payload.User
	profile := &schema.UserProfile{
		Login:             u.Login,
		Name:              u.Name,
		Bio:               u.Bio,
		Company:           u.Company,
		Location:          u.Location,
		Email:             u.Email,
		Website:           u.WebsiteURL,
		Twitter:           u.TwitterUsername,
		CreatedAt:         u.CreatedAt,
		Followers:         u.Followers.TotalCount,
		Following:         u.Following.TotalCount,
		StarredRepos:      u.StarredRepos.TotalCount,
		ContributedRepos:  u.ContributedTo.TotalCount,
		TotalIssues:       u.ContributionsCollection.TotalIssueContributions,
		TotalPullRequests: u.ContributionsCollection.TotalPullRequestContributions,
		TotalReviews:      u.ContributionsCollection.TotalPullRequestReviewContributions,
	}

	// Rollups over owned public repositories.
	langCounts := make(map[string]int)
	for _, repo := range u.Repositories.Nodes {
		if repo.IsPrivate {
			continue
		}
		profile.TotalStars += repo.StargazerCount
		profile.TotalForks += repo.ForkCount
		if !repo.IsFork {
			profile.PublicRepos++
		}
		if repo.PrimaryLanguage != nil {
			langCounts[repo.PrimaryLanguage.Name]++
		}
	}
	best := 0
	for name, n := range langCounts {
		if n > best || (n == best && name < profile.MostUsedLanguage) {
			profile.MostUsedLanguage = name
			best = n
		}
	}
	return profile, nil
}

// Contributions fetches the commit contributions of one year slice, grouped
// by repository. A year with no contributions yields an empty slice.
func (c *Client) Contributions(ctx context.Context, login string, year int, from, to time.Time) ([]schema.RepoActivity, error) {
	vars := map[string]any{
		"login": login,
		"from":  isoTime(from),
		"to":    isoTime(to),
	}
	var payload contributionsEnvelope
	if err := c.query(ctx, contributionsQuery, vars, &payload); err != nil {
		return nil, err
	}
	if payload.User == nil {
		return nil, fmt.Errorf("no user data returned for %d", year)
	}

	var records []schema.RepoActivity
	for _, contrib := range payload.User.ContributionsCollection.CommitContributionsByRepository {
		repo := contrib.Repository
		if contrib.Contributions.TotalCount == 0 {
			continue
		}

		record := schema.RepoActivity{
			NameWithOwner: repo.NameWithOwner,
			Owner:         repo.Owner.Login,
			Name:          repo.Name,
			Year:          year,
			Commits:       contrib.Contributions.TotalCount,
			IsFork:        repo.IsFork,
			IsPrivate:     repo.IsPrivate,
			TotalBytes:    repo.Languages.TotalSize,
		}
		if repo.PrimaryLanguage != nil {
			record.PrimaryLang = repo.PrimaryLanguage.Name
			record.PrimaryColor = schema.LanguageColor(repo.PrimaryLanguage.Name, repo.PrimaryLanguage.Color)
		}
		for _, edge := range repo.Languages.Edges {
			record.Languages = append(record.Languages, schema.LanguageSlice{
				Name:  edge.Node.Name,
				Color: schema.LanguageColor(edge.Node.Name, edge.Node.Color),
				Bytes: edge.Size,
			})
		}
		records = append(records, record)
	}
	return records, nil
}

// RepoLineStats sums addition/deletion counts of default-branch commits that
// are attributable to the target login within the window. Only commits whose
// author resolves to a registered account matching the login
// (case-insensitive) are counted; commits with no resolvable account are
// excluded, not treated as errors. A repository without a default branch
// yields zero stats.
func (c *Client) RepoLineStats(ctx context.Context, owner, name, login string, from, to time.Time) (schema.LineStats, error) {
	vars := map[string]any{
		"owner": owner,
		"name":  name,
		"since": isoTime(from),
		"until": isoTime(to),
	}
	var payload historyEnvelope
	if err := c.query(ctx, historyQuery, vars, &payload); err != nil {
		return schema.LineStats{}, err
	}
	if payload.Repository == nil || payload.Repository.DefaultBranchRef == nil || payload.Repository.DefaultBranchRef.Target == nil {
		return schema.LineStats{}, nil
	}

	var stats schema.LineStats
	for _, commit := range payload.Repository.DefaultBranchRef.Target.History.Nodes {
		if commit.Author.User == nil {
			continue
		}
		if !strings.EqualFold(commit.Author.User.Login, login) {
			continue
		}
		stats.Additions += commit.Additions
		stats.Deletions += commit.Deletions
	}
	return stats, nil
}
