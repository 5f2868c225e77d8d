package extraction

import (
	"github.com/jonathan/resume-optimizer/internal/textproc"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Curated category vocabularies. Lookup happens on normalized terms so
// inflected forms in a job description still match; the lists here are kept
// in plain surface form and normalized once at package init.
var technicalTerms = []string{
	"python", "java", "javascript", "typescript", "golang", "ruby", "php",
	"c++", "c#", "rust", "scala", "kotlin", "swift", "sql", "nosql",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "git",
	"aws", "azure", "gcp", "linux", "unix", "bash",
	"react", "angular", "vue", "django", "flask", "spring", "node.js",
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "spark", "hadoop", "airflow",
	"api", "rest", "graphql", "grpc", "microservices", "ci/cd", "devops",
	"tensorflow", "pytorch", "html", "css", "backend", "frontend",
	"serverless", "containerization", "etl", "webpack", "grafana",
}

var softTerms = []string{
	"leadership", "communication", "collaboration", "teamwork", "mentoring",
	"ownership", "adaptability", "initiative", "organized", "analytical",
	"prioritization", "stakeholder", "presentation", "negotiation",
	"facilitation", "coaching",
}

var domainTerms = []string{
	"fintech", "healthcare", "ecommerce", "logistics", "banking",
	"insurance", "telecom", "security", "compliance", "analytics",
	"saas", "blockchain", "gaming", "advertising", "retail",
	"manufacturing", "biotech", "edtech",
}

// categoryIndex maps normalized term -> category.
var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]types.KeywordCategory {
	idx := make(map[string]types.KeywordCategory)
	// Later entries never overwrite earlier ones, so technical wins if a
	// term somehow appears in two lists.
	add := func(terms []string, cat types.KeywordCategory) {
		for _, t := range terms {
			n := textproc.NormalizeTerm(t)
			if n == "" {
				continue
			}
			if _, ok := idx[n]; !ok {
				idx[n] = cat
			}
		}
	}
	add(technicalTerms, types.CategoryTechnical)
	add(softTerms, types.CategorySoft)
	add(domainTerms, types.CategoryDomain)
	return idx
}

// CategoryOf returns the curated category for a normalized term, falling
// back to generic when no list matches.
func CategoryOf(normalizedTerm string) types.KeywordCategory {
	if cat, ok := categoryIndex[normalizedTerm]; ok {
		return cat
	}
	return types.CategoryGeneric
}
