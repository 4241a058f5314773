package ats

import "strings"

// skillCategory groups canonical skill terms under a taxonomy name.
type skillCategory struct {
	name  string
	terms []string
}

// skillTaxonomy is the fixed catalog of canonical skill terms, grouped by
// category. Immutable and process-wide. Matching is substring containment
// against the whole lowercased text, not token equality, so multi-word and
// punctuated terms ("c++", "project management") match correctly.
var skillTaxonomy = []skillCategory{
	{"programming", []string{"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust", "scala"}},
	{"web_frameworks", []string{"react", "angular", "vue", "next.js", "nuxt", "svelte", "django", "flask", "fastapi", "express", "spring"}},
	{"databases", []string{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb", "firestore"}},
	{"cloud", []string{"aws", "azure", "gcp", "heroku", "vercel", "netlify"}},
	{"devops", []string{"docker", "kubernetes", "jenkins", "gitlab", "github", "terraform", "ansible", "circleci"}},
	{"soft_skills", []string{"leadership", "communication", "teamwork", "problem-solving", "project management", "agile", "scrum"}},
}

// MatchSkills scores how many of the job's taxonomy skills appear in the
// resume: 100 * found / total job skills, 0 when the job mentions none.
func MatchSkills(resumeText, jobText string) float64 {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobText)

	var found, total int
	for _, cat := range skillTaxonomy {
		for _, term := range cat.terms {
			if strings.Contains(job, term) {
				total++
				if strings.Contains(resume, term) {
					found++
				}
			}
		}
	}

	if total == 0 {
		return 0
	}
	return float64(found) / float64(total) * 100
}
