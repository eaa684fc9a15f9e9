package gh

import "time"

// totalCount wraps the totalCount rollup returned by many connections.
type totalCount struct {
	TotalCount int `json:"totalCount"`
}

// langNode is a language reference with its display color.
type langNode struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// profileRepoNode is one owned repository in the profile query.
type profileRepoNode struct {
	StargazerCount  int       `json:"stargazerCount"`
	ForkCount       int       `json:"forkCount"`
	IsPrivate       bool      `json:"isPrivate"`
	IsFork          bool      `json:"isFork"`
	PrimaryLanguage *langNode `json:"primaryLanguage"`
}

// userEnvelope is the payload of userQuery. User is nil when the login does
// not resolve.
type userEnvelope struct {
	User *userNode `json:"user"`
}

type userNode struct {
	Login           string     `json:"login"`
	Name            string     `json:"name"`
	Bio             string     `json:"bio"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Email           string     `json:"email"`
	WebsiteURL      string     `json:"websiteUrl"`
	TwitterUsername string     `json:"twitterUsername"`
	CreatedAt       time.Time  `json:"createdAt"`
	Followers       totalCount `json:"followers"`
	Following       totalCount `json:"following"`
	StarredRepos    totalCount `json:"starredRepositories"`
	ContributedTo   totalCount `json:"repositoriesContributedTo"`

	Repositories struct {
		TotalCount int               `json:"totalCount"`
		Nodes      []profileRepoNode `json:"nodes"`
	} `json:"repositories"`

	ContributionsCollection struct {
		TotalCommitContributions            int `json:"totalCommitContributions"`
		TotalIssueContributions             int `json:"totalIssueContributions"`
		TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
		TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
	} `json:"contributionsCollection"`
}

// contributionsEnvelope is the payload of contributionsQuery.
type contributionsEnvelope struct {
	User *struct {
		ContributionsCollection struct {
			TotalCommitContributions        int                `json:"totalCommitContributions"`
			CommitContributionsByRepository []repoContribution `json:"commitContributionsByRepository"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

type repoContribution struct {
	Repository struct {
		Name            string    `json:"name"`
		NameWithOwner   string    `json:"nameWithOwner"`
		Owner           struct{ Login string } `json:"owner"`
		IsPrivate       bool      `json:"isPrivate"`
		IsFork          bool      `json:"isFork"`
		PrimaryLanguage *langNode `json:"primaryLanguage"`
		Languages       struct {
			TotalSize int64 `json:"totalSize"`
			Edges     []struct {
				Size int64    `json:"size"`
				Node langNode `json:"node"`
			} `json:"edges"`
		} `json:"languages"`
	} `json:"repository"`
	Contributions totalCount `json:"contributions"`
}

// historyEnvelope is the payload of historyQuery. Every pointer along the
// chain may be nil (empty repository, no default branch).
type historyEnvelope struct {
	Repository *struct {
		DefaultBranchRef *struct {
			Target *struct {
				History struct {
					TotalCount int          `json:"totalCount"`
					Nodes      []commitNode `json:"nodes"`
				} `json:"history"`
			} `json:"target"`
		} `json:"defaultBranchRef"`
	} `json:"repository"`
}

type commitNode struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Author    struct {
		User *struct {
			Login string `json:"login"`
		} `json:"user"`
	} `json:"author"`
}
