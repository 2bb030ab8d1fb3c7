package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepository struct {
	exact   map[string]*MusicalShow
	partial map[string]*MusicalShow
	byID    map[uint]*MusicalShow
	bands   map[string]*BandProfile
}

func (r *stubRepository) FindMusicalByTitle(title string) (*MusicalShow, error) {
	if show, ok := r.exact[title]; ok {
		return show, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepository) FindMusicalByTitleContaining(title string) (*MusicalShow, error) {
	if show, ok := r.partial[title]; ok {
		return show, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepository) FindMusicalWithCharacters(id uint) (*MusicalShow, error) {
	if show, ok := r.byID[id]; ok {
		return show, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepository) FindBandByName(name string) (*BandProfile, error) {
	for bandName, band := range r.bands {
		if strings.EqualFold(bandName, name) {
			return band, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func emptyRepo() *stubRepository {
	return &stubRepository{
		exact:   map[string]*MusicalShow{},
		partial: map[string]*MusicalShow{},
		byID:    map[uint]*MusicalShow{},
		bands:   map[string]*BandProfile{},
	}
}

func TestGeneratePromptRejectsUnknownGenre(t *testing.T) {
	svc := NewService(emptyRepo(), nil)

	_, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title: "Carmen",
		Genre: "OPERA",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedGenre)
}

func TestGeneratePromptGenreIsCaseInsensitive(t *testing.T) {
	svc := NewService(emptyRepo(), nil)

	resp, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title: "Unknown Show",
		Genre: "musical",
	})

	require.NoError(t, err)
	assert.Equal(t, "MUSICAL", resp.Meta["structure"])
	assert.Equal(t, "gothic", resp.Meta["style"])
	assert.Equal(t, "emotional", resp.Meta["tone"])
	assert.Equal(t, []string{"obsession", "conflict"}, resp.Meta["inferred_keywords"])
}

func TestGenerateBandPromptUsesDefaultsWhenBandUnknown(t *testing.T) {
	svc := NewService(emptyRepo(), nil)

	resp, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title:    "Nameless Band",
		Location: "Olympic Hall",
		Date:     "2025-07-12",
		Genre:    "BAND",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Prompt, "Nameless Band")
	assert.Contains(t, resp.Prompt, "emotional and powerful music")
	assert.Contains(t, resp.Prompt, "deep blue and purple")
	assert.Contains(t, resp.Prompt, "stage design")
	assert.Contains(t, resp.Prompt, "Olympic Hall")
	assert.Contains(t, resp.Prompt, "2025-07-12")
	assert.Contains(t, resp.Prompt, "No captions, no letters, no words")
}

func TestGenerateBandPromptUsesCuratedProfile(t *testing.T) {
	repo := emptyRepo()
	repo.bands["Jannabi"] = &BandProfile{
		BandName:        "Jannabi",
		BandNameMeaning: strp("playful nostalgia"),
		PosterColor:     strp("warm sepia"),
		BandSymbol:      strp("retro cassette tape"),
	}
	svc := NewService(repo, nil)

	resp, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title: "jannabi",
		Genre: "BAND",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Prompt, "playful nostalgia")
	assert.Contains(t, resp.Prompt, "warm sepia")
	assert.Contains(t, resp.Prompt, "retro cassette tape")
	assert.NotContains(t, resp.Prompt, "deep blue and purple")
}

func TestGenerateMusicalPromptWithCuratedShow(t *testing.T) {
	show := &MusicalShow{
		ID:                 1,
		Title:              "ThePhantomoftheOpera",
		Summary:            strp("a masked genius haunts an opera house"),
		Background:         strp("the Paris Opera House"),
		MainCharacterCount: intp(2),
	}
	withCharacters := &MusicalShow{
		ID:                 1,
		Title:              show.Title,
		Summary:            show.Summary,
		Background:         show.Background,
		MainCharacterCount: show.MainCharacterCount,
		Characters: []MusicalCharacter{
			{Name: "The Phantom", Age: strp("40s"), Gender: strp("male"), Occupation: strp("composer")},
			{Name: "Christine", Age: strp("20s"), Gender: strp("female"), Occupation: strp("soprano")},
			{Name: "Raoul", Age: strp("20s"), Gender: strp("male")},
		},
	}

	repo := emptyRepo()
	repo.exact["ThePhantomoftheOpera"] = show
	repo.byID[1] = withCharacters
	svc := NewService(repo, nil)

	// Spaced title resolves through the normalized exact lookup
	resp, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title: "The Phantom of the Opera",
		Genre: "MUSICAL",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Prompt, "a masked genius haunts an opera house")
	assert.Contains(t, resp.Prompt, "the Paris Opera House")
	assert.Contains(t, resp.Prompt, "exactly 2 characters")
	assert.Contains(t, resp.Prompt, "CRITICAL: The scene must contain exactly 2 characters")
	// Character count caps the described cast
	assert.Contains(t, resp.Prompt, "The Phantom")
	assert.Contains(t, resp.Prompt, "Christine")
	assert.NotContains(t, resp.Prompt, "Raoul")
	assert.Contains(t, resp.Prompt, "STRICT: Absolutely no text")
}

func TestGenerateMusicalPromptFallsBackToPartialMatch(t *testing.T) {
	show := &MusicalShow{ID: 7, Title: "HedwigandtheAngryInch", MainCharacterCount: intp(1)}
	repo := emptyRepo()
	repo.partial["Hedwig"] = show
	repo.byID[7] = show
	svc := NewService(repo, nil)

	resp, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title: "Hedwig",
		Genre: "MUSICAL",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Prompt, "exactly 1 characters")
}

func TestGeneratePromptClampsLength(t *testing.T) {
	repo := emptyRepo()
	repo.bands["Longwinded"] = &BandProfile{
		BandName:        "Longwinded",
		BandNameMeaning: strp(strings.Repeat("a very long band origin story ", 100)),
	}
	svc := NewService(repo, nil)

	resp, err := svc.GeneratePrompt(context.Background(), GeneratePromptRequest{
		Title: "Longwinded",
		Genre: "BAND",
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(resp.Prompt)), maxPromptLength)
}

func TestTranslateToEnglish(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty becomes unknown", "", "unknown"},
		{"whitespace becomes unknown", "   ", "unknown"},
		{"english passes through trimmed", "  deep blue  ", "deep blue"},
		{"korean maps to english", "뮤지컬", "musical"},
		{"stage lighting resolves before stage", "무대조명", "stage lighting"},
		{"unmapped hangul is dropped", "감동적 미지어", "emotional"},
		{"only unmapped hangul becomes unknown", "미지어", "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, translateToEnglish(tc.input))
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "ThePhantomoftheOpera", normalizeTitle("  The Phantom of the Opera "))
	assert.Equal(t, "Hedwig", normalizeTitle("Hed\twig"))
	assert.Equal(t, "Cats", normalizeTitle("Ca\u200bts"))
	assert.Equal(t, "Cats", normalizeTitle("\uFEFFCats\u00A0"))
}

func TestClampPromptCountsRunes(t *testing.T) {
	korean := strings.Repeat("가", 20)
	assert.Equal(t, korean, clampPrompt(korean, 20))
	assert.Equal(t, strings.Repeat("가", 10), clampPrompt(korean, 10))
}

func TestCleanCharacterDescription(t *testing.T) {
	assert.Equal(t, "", cleanCharacterDescription("  "))
	assert.Equal(t, "a defiant rock singer", cleanCharacterDescription("a defiant rock singer"))
	assert.Equal(t, "Hedwig (rock singer)", cleanCharacterDescription("{name=Hedwig, description=rock singer}"))
	assert.Equal(t, "Hedwig", cleanCharacterDescription("{name=Hedwig}"))
}

func TestDescribeCharacters(t *testing.T) {
	characters := []MusicalCharacter{
		{Name: "Hedwig", Age: strp("30s"), Gender: strp("female"), Occupation: strp("rock singer"), Description: strp("glam wig, defiant")},
		{Name: "Yitzhak"},
	}

	detail := describeCharacters(characters, 2)
	assert.Contains(t, detail, "Hedwig (a 30s female rock singer, glam wig, defiant)")
	assert.Contains(t, detail, "Yitzhak")

	assert.Equal(t, "", describeCharacters(nil, 3))
}

func strp(v string) *string { return &v }
func intp(v int) *int       { return &v }
