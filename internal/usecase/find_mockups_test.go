package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "kershaw-construction-ltd", Slugify("Kershaw Construction Ltd"))
	assert.Equal(t, "j-b-plumbing-heating", Slugify("J&B Plumbing + Heating"))
	assert.Equal(t, "smith-sons", Slugify("  Smith & Sons  "))
}

func TestSlugCandidates_OrderAndSuffixStripping(t *testing.T) {
	candidates := SlugCandidates("kershaw-building-solutions-ltd")

	// Full slug first, then suffix-stripped, then shrinking prefixes.
	assert.Equal(t, "kershaw-building-solutions-ltd", candidates[0])
	assert.Contains(t, candidates, "kershaw")
	assert.Contains(t, candidates, "kershaw-building")
}

func TestSlugCandidates_ShortNameNoDuplicates(t *testing.T) {
	candidates := SlugCandidates("kershaw")
	assert.Equal(t, []string{"kershaw"}, candidates)
}

func TestFindMockups_FirstCandidateWins(t *testing.T) {
	checker := new(MockMockupChecker)
	uc := NewFindMockupsUseCase(checker, "https://construction-sites.co.uk")

	// Nothing uploaded under the full name, but the stripped slug has two
	// variants.
	checker.On("Exists", mock.MatchedBy(func(name string) bool {
		return name == "kershaw-construction-dark" || name == "kershaw-construction-modern"
	})).Return(true)
	checker.On("Exists", mock.Anything).Return(false)

	out, err := uc.Execute("Kershaw Construction Ltd")

	assert.NoError(t, err)
	assert.Equal(t, "kershaw-construction", out.Slug)
	assert.Len(t, out.Mockups, 2)
	assert.Contains(t, out.Mockups, "https://construction-sites.co.uk/mockups/kershaw-construction-dark")
	assert.Contains(t, out.Mockups, "https://construction-sites.co.uk/mockups/kershaw-construction-modern")
}

func TestFindMockups_NoHitsReturnsEmptyList(t *testing.T) {
	checker := new(MockMockupChecker)
	uc := NewFindMockupsUseCase(checker, "https://construction-sites.co.uk")

	checker.On("Exists", mock.Anything).Return(false)

	out, err := uc.Execute("Totally Unknown Builders")

	assert.NoError(t, err)
	assert.Equal(t, "totally-unknown-builders", out.Slug)
	assert.NotNil(t, out.Mockups)
	assert.Empty(t, out.Mockups)
}

func TestFindMockups_BlankInputRejected(t *testing.T) {
	checker := new(MockMockupChecker)
	uc := NewFindMockupsUseCase(checker, "https://construction-sites.co.uk")

	_, err := uc.Execute("   ")
	assert.True(t, IsDomainError(err))
}
