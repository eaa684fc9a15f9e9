package render

import (
	"testing"
	"time"

	"github.com/octoprofile/octoprofile/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *schema.Report {
	return &schema.Report{
		Login: "octocat",
		Period: schema.Period{
			From: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		TotalCommits:   120,
		TotalAdditions: 5400,
		TotalDeletions: 1200,
		RepoCount:      8,
		Languages: []schema.LanguageReport{
			{Name: "Go", Color: "#00ADD8", Commits: 80, WeightedCommits: 72.5, Percent: 60.4},
			{Name: "TypeScript", Color: "#3178c6", Commits: 40, WeightedCommits: 47.5, Percent: 39.6},
		},
		Repositories: []schema.RepoReport{
			{NameWithOwner: "octocat/project", Commits: 120, PrimaryLang: "Go"},
		},
		YearlyCommits: map[int]int{2023: 70, 2024: 50},
	}
}

func testProfile() *schema.UserProfile {
	return &schema.UserProfile{
		Login:       "octocat",
		Name:        "The Octocat",
		Bio:         "Mascot and part-time developer",
		Location:    "San Francisco",
		CreatedAt:   time.Date(2011, time.January, 25, 0, 0, 0, 0, time.UTC),
		Followers:   9000,
		Following:   9,
		PublicRepos: 8,
		TotalStars:  15000,
		TotalForks:  1200,
	}
}

func TestCardDispatch(t *testing.T) {
	tests := []struct {
		name  string
		style schema.CardStyle
		theme schema.Theme
	}{
		{"neofetch dark", schema.NeofetchStyle, schema.DarkTheme},
		{"neofetch light", schema.NeofetchStyle, schema.LightTheme},
		{"terminal dark", schema.TerminalStyle, schema.DarkTheme},
		{"terminal light", schema.TerminalStyle, schema.LightTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Card(tt.style, tt.theme, testReport(), testProfile(), 6)
			require.NoError(t, err)
			assert.Contains(t, doc, "<svg")
			assert.Contains(t, doc, "</svg>")
			assert.Contains(t, doc, "octocat")
		})
	}
}

func TestCardUnknownStyle(t *testing.T) {
	_, err := Card(schema.CardStyle("poster"), schema.DarkTheme, testReport(), testProfile(), 6)
	require.Error(t, err)
}

func TestNeofetchCardContent(t *testing.T) {
	doc := NeofetchCard(testReport(), testProfile(), schema.DarkTheme)

	assert.Contains(t, doc, "The Octocat")
	assert.Contains(t, doc, "@octocat")
	assert.Contains(t, doc, "San Francisco")
	// Language bar segments carry the API colors.
	assert.Contains(t, doc, "#00ADD8")
	assert.Contains(t, doc, "#3178c6")
}

func TestNeofetchCardThemesDiffer(t *testing.T) {
	dark := NeofetchCard(testReport(), testProfile(), schema.DarkTheme)
	light := NeofetchCard(testReport(), testProfile(), schema.LightTheme)
	assert.NotEqual(t, dark, light)
}

func TestTerminalCardContent(t *testing.T) {
	doc := TerminalCard(testReport(), testProfile(), schema.DarkTheme, 6)

	assert.Contains(t, doc, "octocat@github:~$")
	assert.Contains(t, doc, "Language Analysis")
	assert.Contains(t, doc, "Go")
	// Line stats present, so the code statistics section renders.
	assert.Contains(t, doc, "Code Statistics")
	assert.Contains(t, doc, "Net Change: +")
}

func TestTerminalCardNoLineStats(t *testing.T) {
	report := testReport()
	report.TotalAdditions = 0
	report.TotalDeletions = 0

	doc := TerminalCard(report, testProfile(), schema.DarkTheme, 6)
	assert.NotContains(t, doc, "Code Statistics")
}

func TestTerminalCardTopNLimit(t *testing.T) {
	doc := TerminalCard(testReport(), testProfile(), schema.DarkTheme, 1)

	assert.Contains(t, doc, "Go")
	assert.NotContains(t, doc, "TypeScript")
}

// TestTerminalCardEscapesMarkup verifies user-controlled fields cannot break
// the SVG document.
func TestTerminalCardEscapesMarkup(t *testing.T) {
	profile := testProfile()
	profile.Bio = `<script>alert("x")</script>`

	doc := TerminalCard(testReport(), profile, schema.DarkTheme, 6)
	assert.NotContains(t, doc, "<script>")
}

func TestUptimeString(t *testing.T) {
	created := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	got := uptimeString(created, now)
	assert.Contains(t, got, "4 years")
}
