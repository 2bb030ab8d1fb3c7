package prompts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketlog/internal/shared/constants"
	"ticketlog/pkg/cache"
	"ticketlog/pkg/logger"

	"gorm.io/gorm"
)

var ErrUnsupportedGenre = errors.New("unsupported genre")

const (
	GenreMusical = "MUSICAL"
	GenreBand    = "BAND"

	maxPromptLength  = 1400
	maxPromptedCast  = 5
	defaultCharCount = 3
)

type Service interface {
	SetCacheService(cacheService cache.Service)
	GeneratePrompt(ctx context.Context, req GeneratePromptRequest) (*GeneratePromptResponse, error)
}

type service struct {
	repo         Repository
	analyzer     ReviewAnalyzer
	cacheService cache.Service
}

func NewService(repo Repository, analyzer ReviewAnalyzer) Service {
	return &service{repo: repo, analyzer: analyzer}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GeneratePrompt(ctx context.Context, req GeneratePromptRequest) (*GeneratePromptResponse, error) {
	var basePrompt string
	var err error

	switch strings.ToUpper(req.Genre) {
	case GenreMusical:
		basePrompt, err = s.generateMusicalPrompt(ctx, req)
	case GenreBand:
		basePrompt, err = s.generateBandPrompt(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGenre, req.Genre)
	}
	if err != nil {
		return nil, err
	}

	return &GeneratePromptResponse{
		Prompt: clampPrompt(basePrompt, maxPromptLength),
		Meta: map[string]interface{}{
			"structure":         strings.ToUpper(req.Genre),
			"style":             "gothic",
			"tone":              "emotional",
			"inferred_keywords": []string{"obsession", "conflict"},
		},
	}, nil
}

// generateMusicalPrompt prefers curated show data; without it the scene is
// built from the review analysis alone.
func (s *service) generateMusicalPrompt(ctx context.Context, req GeneratePromptRequest) (string, error) {
	show := s.lookupMusical(ctx, req.Title)

	analysis := s.analyzeReview(ctx, req.Review)

	if show != nil && (len(show.Characters) > 0 || show.MainCharacterCount != nil) {
		return s.buildCuratedMusicalPrompt(show, analysis), nil
	}

	return s.buildReviewOnlyMusicalPrompt(analysis), nil
}

// lookupMusical tries exact then partial matches, with both the normalized
// and the raw title. Returns nil when the show is unknown. Resolved shows
// are cached by normalized title; misses are not.
func (s *service) lookupMusical(ctx context.Context, title string) *MusicalShow {
	normalized := normalizeTitle(title)
	raw := strings.TrimSpace(title)

	if s.cacheService != nil {
		var cached MusicalShow
		if err := s.cacheService.Get(ctx, constants.BuildMusicalShowKey(normalized), &cached); err == nil {
			return &cached
		}
	}

	var found *MusicalShow
	for _, lookup := range []func() (*MusicalShow, error){
		func() (*MusicalShow, error) { return s.repo.FindMusicalByTitle(normalized) },
		func() (*MusicalShow, error) { return s.repo.FindMusicalByTitle(raw) },
		func() (*MusicalShow, error) { return s.repo.FindMusicalByTitleContaining(normalized) },
		func() (*MusicalShow, error) { return s.repo.FindMusicalByTitleContaining(raw) },
	} {
		show, err := lookup()
		if err == nil {
			found = show
			break
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.GetDefault().Warn("musical lookup failed", "title", title, "error", err)
			return nil
		}
	}
	if found == nil {
		return nil
	}

	withCharacters, err := s.repo.FindMusicalWithCharacters(found.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.GetDefault().Warn("musical character lookup failed", "musical_id", found.ID, "error", err)
		}
		s.cacheShow(ctx, normalized, found)
		return found
	}
	s.cacheShow(ctx, normalized, withCharacters)
	return withCharacters
}

func (s *service) cacheShow(ctx context.Context, normalizedTitle string, show *MusicalShow) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Set(ctx, constants.BuildMusicalShowKey(normalizedTitle), show, constants.TTL_PROMPT_REFERENCE); err != nil {
		logger.GetDefault().Warn("failed to cache musical show", "title", normalizedTitle, "error", err)
	}
}

func (s *service) analyzeReview(ctx context.Context, review string) map[string]string {
	if s.analyzer == nil || strings.TrimSpace(review) == "" {
		return map[string]string{}
	}
	analysis, err := s.analyzer.AnalyzeReview(ctx, review)
	if err != nil {
		logger.GetDefault().Warn("review analysis failed, continuing without it", "error", err)
		return map[string]string{}
	}
	return analysis
}

func (s *service) buildCuratedMusicalPrompt(show *MusicalShow, analysis map[string]string) string {
	summary := analysis["theme"]
	if show.Summary != nil {
		summary = *show.Summary
	}
	background := analysis["setting"]
	if show.Background != nil {
		background = *show.Background
	}

	characterCount := defaultCharCount
	if show.MainCharacterCount != nil {
		characterCount = *show.MainCharacterCount
	} else if len(show.Characters) > 0 {
		characterCount = len(show.Characters)
	}

	characterDetails := describeCharacters(show.Characters, characterCount)
	if characterDetails == "" {
		characterDetails = fmt.Sprintf("%d distinct characters", characterCount)
	}

	return fmt.Sprintf(
		"A %s musical theater scene about %s,\n"+
			"set in %s and depicting %s,\n"+
			"featuring exactly %d characters only: %s.\n"+
			"CRITICAL: The scene must contain exactly %d characters, no more, no less. No background characters, no extras, no additional people.\n"+
			"with %s,\n"+
			"under %s.\n"+
			"STRICT: Absolutely no text, no letters, no words, no captions, no logos, no watermarks, no writing of any kind visible in the image.",
		translateToEnglish(analysis["emotion"]),
		translateToEnglish(summary),
		translateToEnglish(background),
		translateToEnglish(analysis["relationship"]),
		characterCount,
		translateToEnglish(characterDetails),
		characterCount,
		translateToEnglish(analysis["actions"]),
		translateToEnglish(analysis["lighting"]),
	)
}

func (s *service) buildReviewOnlyMusicalPrompt(analysis map[string]string) string {
	var characterPart strings.Builder
	for i := 1; i <= maxPromptedCast; i++ {
		clean := cleanCharacterDescription(analysis[fmt.Sprintf("character%d", i)])
		if clean == "" {
			continue
		}
		if characterPart.Len() > 0 {
			if i == 2 {
				characterPart.WriteString(" and ")
			} else {
				characterPart.WriteString(", and ")
			}
		}
		characterPart.WriteString(clean)
	}
	characters := characterPart.String()
	if characters == "" {
		characters = "the main characters"
	}

	return fmt.Sprintf(
		"A %s musical theater scene about %s,\n"+
			"set in %s and depicting %s,\n"+
			"featuring %s,\n"+
			"with %s,\n"+
			"under %s.\n"+
			"STRICT: Absolutely no text, no letters, no words, no captions, no logos, no watermarks, no writing of any kind visible in the image.",
		translateToEnglish(analysis["emotion"]),
		translateToEnglish(analysis["theme"]),
		translateToEnglish(analysis["setting"]),
		translateToEnglish(analysis["relationship"]),
		translateToEnglish(characters),
		translateToEnglish(analysis["actions"]),
		translateToEnglish(analysis["lighting"]),
	)
}

func (s *service) generateBandPrompt(ctx context.Context, req GeneratePromptRequest) (string, error) {
	bandNameMeaning := "emotional and powerful music"
	posterColor := "deep blue and purple"
	bandSymbol := "stage design"

	band := s.lookupBand(ctx, req.Title)
	if band != nil {
		if band.BandNameMeaning != nil {
			bandNameMeaning = *band.BandNameMeaning
		}
		if band.PosterColor != nil {
			posterColor = *band.PosterColor
		}
		if band.BandSymbol != nil {
			bandSymbol = *band.BandSymbol
		}
	}

	return fmt.Sprintf(
		"A moody alternative rock live performance scene by %s,\n"+
			"featuring %s,\n"+
			"set during autumn,\n"+
			"at %s on %s,\n"+
			"with a stage design inspired by %s,\n"+
			"including %s lighting, fog machines and backlights,\n"+
			"without showing any characters or text.\n"+
			"No captions, no letters, no words, no logos, no watermarks.",
		translateToEnglish(req.Title),
		translateToEnglish(bandNameMeaning),
		translateToEnglish(req.Location),
		req.Date,
		translateToEnglish(bandSymbol),
		translateToEnglish(posterColor),
	), nil
}

func (s *service) lookupBand(ctx context.Context, name string) *BandProfile {
	key := constants.BuildBandProfileKey(strings.ToLower(normalizeTitle(name)))

	if s.cacheService != nil {
		var cached BandProfile
		if err := s.cacheService.Get(ctx, key, &cached); err == nil {
			return &cached
		}
	}

	band, err := s.repo.FindBandByName(name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.GetDefault().Warn("band lookup failed", "band", name, "error", err)
		}
		return nil
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, key, band, constants.TTL_PROMPT_REFERENCE); err != nil {
			logger.GetDefault().Warn("failed to cache band profile", "band", name, "error", err)
		}
	}
	return band
}

// describeCharacters renders up to characterCount (capped at 5) characters
// as "Name (a age gender occupation, description)" fragments.
func describeCharacters(characters []MusicalCharacter, characterCount int) string {
	if len(characters) == 0 {
		return ""
	}

	limit := len(characters)
	if characterCount < limit {
		limit = characterCount
	}
	if limit > maxPromptedCast {
		limit = maxPromptedCast
	}

	var details strings.Builder
	for i := 0; i < limit; i++ {
		character := characters[i]
		if i > 0 {
			details.WriteString(", ")
		}
		details.WriteString(character.Name)

		var attributes []string
		for _, field := range []*string{character.Age, character.Gender, character.Occupation} {
			if field != nil && strings.TrimSpace(*field) != "" {
				attributes = append(attributes, translateToEnglish(*field))
			}
		}
		attrText := strings.Join(attributes, " ")
		if character.Description != nil && strings.TrimSpace(*character.Description) != "" {
			if attrText != "" {
				attrText += ", "
			}
			attrText += translateToEnglish(*character.Description)
		}
		if attrText != "" {
			details.WriteString(" (a " + attrText + ")")
		}
	}
	return details.String()
}

// cleanCharacterDescription unwraps "{name=X, description=Y}" fragments the
// analyzer occasionally emits instead of plain prose.
func cleanCharacterDescription(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}

	if strings.HasPrefix(description, "{") && strings.Contains(description, "name=") {
		name := extractBetween(description, "name=")
		if name != "" {
			if desc := extractBetween(description, "description="); desc != "" {
				return name + " (" + desc + ")"
			}
			return name
		}
	}

	return description
}

func extractBetween(text, marker string) string {
	start := strings.Index(text, marker)
	if start < 0 {
		return ""
	}
	start += len(marker)
	end := strings.IndexAny(text[start:], ",}")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(text[start : start+end])
}
