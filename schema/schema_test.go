package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineStatsNet(t *testing.T) {
	assert.Equal(t, 50, LineStats{Additions: 80, Deletions: 30}.Net())
	assert.Equal(t, -10, LineStats{Additions: 20, Deletions: 30}.Net())
	assert.Zero(t, LineStats{}.Net())
}

func TestLanguageStatRepoCount(t *testing.T) {
	ls := &LanguageStat{Name: "Go"}
	assert.Zero(t, ls.RepoCount())

	ls.MarkRepo("octocat/alpha")
	ls.MarkRepo("octocat/beta")
	ls.MarkRepo("octocat/alpha")

	// Marking the same repository twice counts once.
	assert.Equal(t, 2, ls.RepoCount())
}

func TestUserProfileDisplayName(t *testing.T) {
	assert.Equal(t, "The Octocat", (&UserProfile{Login: "octocat", Name: "The Octocat"}).DisplayName())
	assert.Equal(t, "octocat", (&UserProfile{Login: "octocat"}).DisplayName())
}

func TestLanguageColor(t *testing.T) {
	tests := []struct {
		name     string
		language string
		apiColor string
		want     string
	}{
		{"api color wins", "Go", "#123456", "#123456"},
		{"fallback palette", "Go", "", "#00ADD8"},
		{"unknown language", "Brainfuck", "", DefaultLanguageColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageColor(tt.language, tt.apiColor))
		})
	}
}

func TestStyleExpansion(t *testing.T) {
	assert.Equal(t, []CardStyle{NeofetchStyle}, NeofetchStyle.Styles())
	assert.Equal(t, []CardStyle{NeofetchStyle, TerminalStyle}, BothStyles.Styles())
	assert.Equal(t, []Theme{DarkTheme, LightTheme}, BothThemes.Themes())
	assert.Equal(t, []Theme{LightTheme}, LightTheme.Themes())
}

func TestValidMaps(t *testing.T) {
	for _, style := range []CardStyle{NeofetchStyle, TerminalStyle, BothStyles} {
		_, ok := ValidCardStyles[style]
		assert.True(t, ok, "style %s should be valid", style)
	}
	_, ok := ValidCardStyles[CardStyle("poster")]
	assert.False(t, ok)

	for _, theme := range []Theme{DarkTheme, LightTheme, BothThemes} {
		_, ok := ValidThemes[theme]
		assert.True(t, ok, "theme %s should be valid", theme)
	}
	_, ok = ValidThemes[Theme("sepia")]
	assert.False(t, ok)
}
