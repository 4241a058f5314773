// Package interview implements mock-interview question generation, free-text
// answer analysis, persistent practice sessions, and an optional LLM-backed
// coach. Question selection and answer scoring are deterministic template and
// rule tables; only the coach touches the network.
package interview

import "strings"

// Question categories, in selection order.
const (
	CategoryBehavioral  = "behavioral"
	CategoryTechnical   = "technical"
	CategorySituational = "situational"
	CategoryGeneral     = "general"
)

// Difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// categoryOrder fixes iteration order over the template catalog.
var categoryOrder = []string{CategoryBehavioral, CategoryTechnical, CategorySituational}

// questionTemplates is the fixed question catalog, keyed by category then
// difficulty. Immutable and process-wide; callers receive copies, never the
// underlying slices.
var questionTemplates = map[string]map[string][]string{
	CategoryBehavioral: {
		DifficultyEasy: {
			"Tell me about yourself and your professional background.",
			"Why are you interested in this position?",
			"What are your greatest strengths?",
			"Describe a time when you had to learn something new quickly.",
			"How do you handle feedback from colleagues?",
		},
		DifficultyMedium: {
			"Tell me about a time you had to work with a difficult team member. How did you handle it?",
			"Describe a situation where you had to meet a tight deadline. What was your approach?",
			"Give an example of when you took initiative on a project.",
			"Tell me about a time you failed. What did you learn from it?",
			"Describe a situation where you had to adapt to change.",
		},
		DifficultyHard: {
			"Tell me about a time you had to make a difficult decision with incomplete information.",
			"Describe a situation where you had to lead a team through a major challenge.",
			"Give an example of when you had to influence someone without direct authority.",
			"Tell me about a time you had to balance competing priorities.",
			"Describe a situation where you had to take responsibility for a team's failure.",
		},
	},
	CategoryTechnical: {
		DifficultyEasy: {
			"What programming languages are you proficient in?",
			"Explain the difference between a list and a dictionary.",
			"What is version control and why is it important?",
			"Describe the basic structure of a web application.",
			"What is the difference between SQL and NoSQL databases?",
		},
		DifficultyMedium: {
			"How would you optimize a slow database query?",
			"Explain the concept of RESTful APIs and their benefits.",
			"What is the difference between synchronous and asynchronous programming?",
			"How would you approach debugging a complex issue in production?",
			"Explain the MVC architecture pattern.",
		},
		DifficultyHard: {
			"Design a system to handle millions of concurrent users.",
			"How would you implement caching in a distributed system?",
			"Explain the CAP theorem and its implications.",
			"How would you approach optimizing a microservices architecture?",
			"Design a real-time notification system for a social media platform.",
		},
	},
	CategorySituational: {
		DifficultyEasy: {
			"What would you do if you didn't understand a task assigned to you?",
			"If you had to choose between speed and quality, how would you decide?",
			"What would you do if you discovered a bug in production?",
			"How would you handle a situation where you disagree with your manager?",
			"What would you do if a project deadline was moved up?",
		},
		DifficultyMedium: {
			"If you had to choose between helping a colleague or meeting your own deadline, what would you do?",
			"What would you do if you realized you made a mistake that affected the team?",
			"How would you handle a situation where you had to work with someone you didn't get along with?",
			"If a client requested a feature that goes against best practices, how would you handle it?",
			"What would you do if you felt overwhelmed by your workload?",
		},
		DifficultyHard: {
			"If you had to choose between being right and maintaining team harmony, what would you do?",
			"How would you handle a situation where your team was resistant to necessary changes?",
			"If you discovered a colleague was underperforming, how would you address it?",
			"What would you do if you had to deliver bad news to stakeholders?",
			"If you had to make a decision that would disappoint some team members, how would you approach it?",
		},
	},
}

// defaultQuestions is the fallback set used when template selection yields
// nothing usable.
var defaultQuestions = []Question{
	{Question: "Tell me about yourself.", Category: CategoryBehavioral},
	{Question: "Why are you interested in this position?", Category: CategoryBehavioral},
	{Question: "What are your greatest strengths?", Category: CategoryBehavioral},
	{Question: "Describe a challenge you overcame.", Category: CategoryBehavioral},
	{Question: "Where do you see yourself in 5 years?", Category: CategoryBehavioral},
}

var technicalKeywords = []string{"python", "java", "javascript", "sql", "api", "database", "code", "algorithm", "system design"}

var situationalKeywords = []string{"leadership", "manage", "team", "project", "decision", "problem-solving"}

// SelectCategories decides which question categories fit the job description.
// Behavioral is always included; technical and situational are added when the
// lowercased description contains any of their trigger keywords.
func SelectCategories(jobDescription string) []string {
	categories := []string{CategoryBehavioral}
	lower := strings.ToLower(jobDescription)

	if containsAny(lower, technicalKeywords) {
		categories = append(categories, CategoryTechnical)
	}
	if containsAny(lower, situationalKeywords) {
		categories = append(categories, CategorySituational)
	}
	return categories
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// DefaultQuestions returns up to count fallback questions.
func DefaultQuestions(count int) []Question {
	if count > len(defaultQuestions) {
		count = len(defaultQuestions)
	}
	out := make([]Question, count)
	copy(out, defaultQuestions[:count])
	return out
}
