package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that the same catalog
// page always maps to the same stored record.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category is the single-letter type code assigned to a catalog item.
type Category string

// The closed set of catalog categories.
const (
	CategoryAbility     Category = "A" // ability and aptitude tests
	CategoryBiodata     Category = "B" // biodata and situational judgement
	CategoryCompetency  Category = "C" // competency frameworks
	CategoryDevelopment Category = "D" // development and 360 feedback
	CategoryExercise    Category = "E" // assessment exercises
	CategorySkills      Category = "K" // knowledge, skills and technical tests
	CategoryPersonality Category = "P" // personality and behaviour
	CategorySimulation  Category = "S" // simulations
	CategoryVideo       Category = "V" // video interviews
)

// Categories lists every valid category code.
var Categories = []Category{
	CategoryAbility,
	CategoryBiodata,
	CategoryCompetency,
	CategoryDevelopment,
	CategoryExercise,
	CategorySkills,
	CategoryPersonality,
	CategorySimulation,
	CategoryVideo,
}

// MaxCanonicalTextLen bounds the canonical text stored per item.
const MaxCanonicalTextLen = 5000

// CatalogItem is one assessment product in the catalog.
// Items are created once during a catalog build and never mutated afterwards.
// Row position in the embedding matrix follows label order, so any change
// to the set of items requires a full reindex.
type CatalogItem struct {
	Id         ID
	Label      string // display identifier assigned by build order, e.g. "A0001"
	Name       string
	URL        string
	Category   Category
	Skills     []string // canonical skill tags, discovery order, no duplicates
	Text       string   // canonical text used for classification, embedding and boosting
	Vector     []float32
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// SkillsTag returns the skill tags in their comma-delimited canonical form.
func (item *CatalogItem) SkillsTag() string {
	return strings.Join(item.Skills, ",")
}

// Recommendation is a single ranked query result.
// It carries only the externally relevant fields; the canonical text used
// for boosting is not re-exposed.
type Recommendation struct {
	Label    string
	Name     string
	URL      string
	Category Category
	Skills   []string
	Score    float64
}

// SkillsTag returns the skill tags in their comma-delimited canonical form,
// matching CatalogItem.SkillsTag.
func (r *Recommendation) SkillsTag() string {
	return strings.Join(r.Skills, ",")
}
