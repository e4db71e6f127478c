package tagging

import "github.com/poiesic/assessrec/core"

// CanonicalSkills is the set of normalized skill names allowed in output.
var CanonicalSkills = []string{
	"sql", "java", "javascript", "python", "react", "aws", "excel",
	"communication", "leadership", "teamwork", "sales", "verbal",
	"numerical", "logical", "management", "customer service",
	"cognitive", "data warehousing", "data entry", "hadoop", "spark",
	"tableau", "power bi", "nlp", "machine learning", "deep learning",
	"devops", "docker", "kubernetes", "microsoft office",
}

// Synonyms maps alternate spellings to canonical skill names.
// The slice is ordered because registry construction order feeds directly
// into tag discovery order.
var Synonyms = []Synonym{
	// AWS variants
	{"aws", "aws"},
	{"amazon", "aws"},
	{"amazon web services", "aws"},
	{"amazon-aws", "aws"},
	{"amazon aws", "aws"},
	{"cloud", "aws"}, // broad mapping, kept from the catalog cleaning rules

	// SQL variants
	{"ms sql", "sql"},
	{"mssql", "sql"},
	{"mysql", "sql"},
	{"postgres", "sql"},
	{"postgresql", "sql"},

	// Java / JS
	{"java script", "javascript"},
	{"js", "javascript"},

	// Excel / Office
	{"ms excel", "excel"},
	{"microsoft excel", "excel"},
	{"ms office", "microsoft office"},

	// Data / BI
	{"datawarehouse", "data warehousing"},
	{"data-warehousing", "data warehousing"},
	{"data warehouse", "data warehousing"},
	{"powerbi", "power bi"},

	// ML / NLP
	{"natural language processing", "nlp"},
	{"nlp", "nlp"},
	{"deep-learning", "deep learning"},
	{"ml", "machine learning"},

	// DevOps
	{"k8s", "kubernetes"},

	// Misc
	{"customer-service", "customer service"},
	{"customerservice", "customer service"},
	{"call centre", "customer service"},
	{"call center", "customer service"},
}

// MultiWordSkills are phrases that must be matched before their component
// words so the phrase's canonical label keeps precedence in discovery order.
var MultiWordSkills = []string{
	"data warehousing",
	"data entry",
	"machine learning",
	"deep learning",
	"customer service",
	"power bi",
	"natural language processing",
	"microsoft office",
}

// CategoryKeywords maps each category to the keyword phrases that vote for it.
var CategoryKeywords = map[core.Category][]string{
	core.CategoryAbility: {
		"ability", "aptitude", "cognitive", "reasoning",
		"numerical", "verbal ability", "verbal", "logic", "logical",
	},
	core.CategoryBiodata: {
		"biodata", "situational judgement", "sjt",
		"scenario based", "what would you do",
	},
	core.CategoryCompetency: {
		"competency", "competencies", "competency framework", "ucf",
	},
	core.CategoryDevelopment: {
		"360", "leadership development", "development report",
		"feedback report", "development center", "assessment center",
	},
	core.CategoryExercise: {
		"assessment exercise", "exercise", "assessment exercises",
	},
	core.CategorySkills: {
		"skill", "skills", "technical", "coding", "programming",
		"knowledge", "sql", "java", "python", "it skills",
	},
	core.CategoryPersonality: {
		"personality", "motivational", "behaviour", "behavior",
		"leadership style", "opq", "mq", "team types",
		"interpersonal", "communication", "traits", "psychometric",
	},
	core.CategorySimulation: {
		"simulation", "simulations", "call center simulation",
		"job simulation", "scenario simulation",
	},
	core.CategoryVideo: {
		"video interview", "smart interview", "recorded interview",
		"video feedback",
	},
}

// CategoryPriority is the total order used to break classification ties.
// Earlier entries win. Skills is first because it is also the fallback
// for text that matches no keyword at all.
var CategoryPriority = []core.Category{
	core.CategorySkills,
	core.CategoryPersonality,
	core.CategoryAbility,
	core.CategorySimulation,
	core.CategoryVideo,
	core.CategoryDevelopment,
	core.CategoryCompetency,
	core.CategoryExercise,
	core.CategoryBiodata,
}
