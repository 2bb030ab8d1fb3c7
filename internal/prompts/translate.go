package prompts

import (
	"regexp"
	"strings"
)

// The image API only accepts English prompts, so Korean fragments are mapped
// through a fixed dictionary. Replacements run in order; anything left in
// Hangul after the pass is dropped.
var koreanReplacer = strings.NewReplacer(
	// emotions
	"아쉬움", "regret",
	"답답함", "frustration",
	"분노", "anger",
	"만족", "satisfaction",
	"기쁨", "joy",
	"슬픔", "sadness",
	"사랑", "love",
	"증오", "hatred",
	"감동적", "emotional",
	"긴장", "tension",
	"갈등", "conflict",
	"여운", "lingering emotion",
	"놀람", "surprise",
	"아리함", "confusion",
	"깊은", "deep",

	// genre / setting
	"뮤지컬", "musical",
	"밴드", "band",
	"콘서트", "concert",
	"극장", "theater",
	"무대조명", "stage lighting",
	"무대", "stage",
	"호텔", "hotel",
	"방", "room",
	"일제강점기", "Japanese colonial period",
	"의", " of",
	"은유", "metaphor",
	"창작", "creation",
	"추락", "fall",
	"현실", "reality",
	"허상", "illusion",
	"예술", "art",
	"본질", "essence",
	"인간", "human",
	"존엄", "dignity",
	"납치", "abduction",

	// age / gender
	"20대 중반", "mid-20s",
	"20대 초중반", "early to mid-20s",
	"20대 초반", "early 20s",
	"20대 후반", "late 20s",
	"30대", "30s",
	"40대", "40s",
	"50대", "50s",
	"남성", "male",
	"여성", "female",
	"남자", "male",
	"여자", "female",

	// relationships
	"연인", "lovers",
	"친구", "friends",
	"가족", "family",
	"동료", "colleagues",

	// actions
	"노래", "singing",
	"춤", "dancing",
	"연기", "acting",
	"연주", "playing",
	"공연", "performance",

	// occupations
	"시인", "poet",
	"건축가", "architect",
	"기생", "gisaeng",
	"배우", "actor",
	"가수", "singer",
	"댄서", "dancer",

	// lighting
	"어둠", "darkness",
	"밝음", "brightness",
	"스포트라이트", "spotlight",
)

var (
	hangulPattern     = regexp.MustCompile(`[가-힣]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	// zero-width and typographic space characters that sneak into titles
	invisiblePattern = regexp.MustCompile("[\u00A0\u2000-\u200B\u2028\u2029\uFEFF]")
)

// translateToEnglish maps Korean fragments to English and strips whatever
// Hangul remains. Pure English input passes through untouched.
func translateToEnglish(text string) string {
	if strings.TrimSpace(text) == "" {
		return "unknown"
	}
	if !hangulPattern.MatchString(text) {
		return strings.TrimSpace(text)
	}

	text = koreanReplacer.Replace(text)
	text = hangulPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if text == "" {
		return "unknown"
	}
	return text
}

// normalizeTitle removes every kind of whitespace so titles match the
// reference table regardless of spacing habits.
func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = whitespacePattern.ReplaceAllString(title, "")
	return invisiblePattern.ReplaceAllString(title, "")
}

// clampPrompt caps prompt length; overly long prompts degrade image quality.
func clampPrompt(prompt string, max int) string {
	runes := []rune(prompt)
	if len(runes) <= max {
		return prompt
	}
	return string(runes[:max])
}
