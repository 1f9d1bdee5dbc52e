package usecase

import (
	"regexp"
	"strings"
)

// MockupVariants are the five style previews built for every prospect.
var MockupVariants = []string{"dark", "light", "bold", "classic", "modern"}

// stripSuffixes are generic trailing words a business name tends to carry
// that the mockup directories usually drop.
var stripSuffixes = map[string]bool{
	"ltd": true, "limited": true, "solutions": true, "services": true,
	"group": true, "company": true, "co": true, "inc": true, "uk": true,
	"plumbing": true, "electrical": true, "building": true, "roofing": true,
	"landscaping": true, "construction": true, "contractors": true,
	"developments": true,
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases, collapses non-alphanumeric runs to hyphens and trims.
func Slugify(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// SlugCandidates generates progressively shorter slugs to probe, in order:
// the full slug, the suffix-stripped slug, its first three then two words,
// and finally the first two words of the original.
func SlugCandidates(rawSlug string) []string {
	words := splitWords(rawSlug)
	if len(words) == 0 {
		return nil
	}

	candidates := []string{strings.Join(words, "-")}

	stripped := words
	for len(stripped) > 1 && stripSuffixes[stripped[len(stripped)-1]] {
		stripped = stripped[:len(stripped)-1]
	}
	strippedSlug := strings.Join(stripped, "-")
	if strippedSlug != candidates[0] {
		candidates = append(candidates, strippedSlug)
	}

	if len(stripped) > 3 {
		candidates = append(candidates, strings.Join(stripped[:3], "-"))
	}
	if len(stripped) > 2 {
		candidates = append(candidates, strings.Join(stripped[:2], "-"))
	}

	if len(words) > 2 {
		first2 := strings.Join(words[:2], "-")
		if !contains(candidates, first2) {
			candidates = append(candidates, first2)
		}
	}

	return candidates
}

func splitWords(slug string) []string {
	var words []string
	for _, w := range strings.Split(slug, "-") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type FindMockupsOutput struct {
	Slug    string   `json:"slug"`
	Mockups []string `json:"mockups"`
}

// FindMockupsUseCase is a best-effort matcher from business name to uploaded
// mockup directories. False negatives are fine; it only saves typing.
type FindMockupsUseCase struct {
	Checker MockupDirectoryChecker
	BaseURL string
}

func NewFindMockupsUseCase(checker MockupDirectoryChecker, baseURL string) *FindMockupsUseCase {
	return &FindMockupsUseCase{Checker: checker, BaseURL: baseURL}
}

// Execute probes each candidate slug's variant directories and stops at the
// first candidate with at least one hit.
func (uc *FindMockupsUseCase) Execute(raw string) (*FindMockupsOutput, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "slug is required"}
	}

	slug := Slugify(raw)
	for _, candidate := range SlugCandidates(slug) {
		if found := uc.findVariants(candidate); len(found) > 0 {
			return &FindMockupsOutput{Slug: candidate, Mockups: found}, nil
		}
	}
	return &FindMockupsOutput{Slug: slug, Mockups: []string{}}, nil
}

func (uc *FindMockupsUseCase) findVariants(slug string) []string {
	var found []string
	for _, variant := range MockupVariants {
		name := slug + "-" + variant
		if uc.Checker.Exists(name) {
			found = append(found, uc.BaseURL+"/mockups/"+name)
		}
	}
	return found
}
