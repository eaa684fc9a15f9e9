package gh

// userQuery resolves the target user and pulls the profile fields plus the
// rollup counters shown on the rendered panels.
const userQuery = `
query($login: String!) {
  user(login: $login) {
    login
    name
    bio
    company
    location
    email
    websiteUrl
    twitterUsername
    createdAt
    followers {
      totalCount
    }
    following {
      totalCount
    }
    starredRepositories {
      totalCount
    }
    repositoriesContributedTo {
      totalCount
    }
    repositories(first: 100, privacy: PUBLIC, ownerAffiliations: [OWNER]) {
      totalCount
      nodes {
        stargazerCount
        forkCount
        isPrivate
        isFork
        primaryLanguage {
          name
        }
      }
    }
    contributionsCollection {
      totalCommitContributions
      totalIssueContributions
      totalPullRequestContributions
      totalPullRequestReviewContributions
    }
  }
}`

// contributionsQuery pulls commit contributions grouped by repository for
// one year slice, with each repository's language byte breakdown.
const contributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      totalCommitContributions
      commitContributionsByRepository {
        repository {
          name
          nameWithOwner
          owner {
            login
          }
          isPrivate
          isFork
          primaryLanguage {
            name
            color
          }
          languages(first: 15, orderBy: {field: SIZE, direction: DESC}) {
            totalSize
            edges {
              size
              node {
                name
                color
              }
            }
          }
        }
        contributions(first: 100) {
          totalCount
        }
      }
    }
  }
}`

// historyQuery pulls per-commit addition/deletion counts from a repository's
// default branch for one year slice.
const historyQuery = `
query($owner: String!, $name: String!, $since: GitTimestamp!, $until: GitTimestamp!) {
  repository(owner: $owner, name: $name) {
    defaultBranchRef {
      target {
        ... on Commit {
          history(first: 100, since: $since, until: $until) {
            totalCount
            nodes {
              additions
              deletions
              author {
                user {
                  login
                }
              }
            }
          }
        }
      }
    }
  }
}`
