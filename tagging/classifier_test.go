package tagging

import (
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
)

func TestClassify_EmptyTextReturnsDefault(t *testing.T) {
	classifier := DefaultClassifier()

	assert.Equal(t, core.CategorySkills, classifier.Classify(""))
	assert.Equal(t, core.CategorySkills, classifier.Classify("nothing relevant here"))
}

func TestClassify_HighestDistinctCountWins(t *testing.T) {
	classifier := DefaultClassifier()

	// Three ability keywords against one personality keyword.
	got := classifier.Classify("numerical reasoning and verbal aptitude with communication")
	assert.Equal(t, core.CategoryAbility, got)
}

func TestClassify_DistinctPatternsNotOccurrences(t *testing.T) {
	classifier := DefaultClassifier()

	// "simulation" repeated many times is still a single distinct pattern;
	// two distinct personality keywords must win.
	got := classifier.Classify("simulation simulation simulation simulation " +
		"personality traits")
	assert.Equal(t, core.CategoryPersonality, got)
}

func TestClassify_TieResolvedByPriority(t *testing.T) {
	classifier := DefaultClassifier()

	// One personality keyword, one video keyword: P precedes V in the
	// priority order.
	text := "psychometric profile with video interview"
	for range 10 {
		assert.Equal(t, core.CategoryPersonality, classifier.Classify(text))
	}
}

func TestClassify_PriorityIsExplicitOrder(t *testing.T) {
	// A reduced table where the tie is between two categories whose
	// natural code order disagrees with the priority order.
	classifier := NewClassifier(map[core.Category][]string{
		core.CategoryDevelopment: {"alpha"},
		core.CategorySimulation:  {"beta"},
	}, []core.Category{core.CategorySimulation, core.CategoryDevelopment})

	assert.Equal(t, core.CategorySimulation, classifier.Classify("alpha beta"))
}

func TestClassify_TiedCategoryMissingFromPriority(t *testing.T) {
	// Neither tied category appears in the priority list; the first
	// candidate in deterministic iteration order (sorted codes) wins.
	classifier := NewClassifier(map[core.Category][]string{
		core.CategoryVideo:   {"alpha"},
		core.CategoryBiodata: {"alpha"},
	}, nil)

	assert.Equal(t, core.CategoryBiodata, classifier.Classify("alpha"))
}

func TestClassify_Deterministic(t *testing.T) {
	classifier := DefaultClassifier()
	text := "coding skills for java and sql programming knowledge"

	first := classifier.Classify(text)
	assert.Equal(t, core.CategorySkills, first)
	for range 10 {
		assert.Equal(t, first, classifier.Classify(text))
	}
}

func TestClassify_AlwaysInClosedSet(t *testing.T) {
	classifier := DefaultClassifier()

	texts := []string{
		"",
		"biodata and situational judgement scenarios",
		"competency framework based on ucf",
		"360 feedback report for leadership development",
		"assessment exercise pack",
		"call center simulation",
		"recorded interview with video feedback",
		"random unrelated prose about gardening",
	}
	for _, text := range texts {
		assert.NoError(t, core.ValidateCategory(classifier.Classify(text)))
	}
}
