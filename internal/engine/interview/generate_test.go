package interview

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestSelectCategories(t *testing.T) {
	tests := []struct {
		name string
		jd   string
		want []string
	}{
		{
			name: "plain description",
			jd:   "We want a friendly person for our office.",
			want: []string{CategoryBehavioral},
		},
		{
			name: "technical keywords",
			jd:   "Looking for a Python developer with SQL knowledge.",
			want: []string{CategoryBehavioral, CategoryTechnical},
		},
		{
			name: "situational keywords",
			jd:   "You will manage a small group and drive decisions.",
			want: []string{CategoryBehavioral, CategorySituational},
		},
		{
			name: "both keyword sets",
			jd:   "Python engineer with leadership responsibilities.",
			want: []string{CategoryBehavioral, CategoryTechnical, CategorySituational},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectCategories(tt.jd)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectCategories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	jd := "Python developer with SQL, leading a team on API design decisions."

	// all template texts at a difficulty, across categories
	bank := func(difficulty string) map[string]bool {
		all := make(map[string]bool)
		for _, cat := range categoryOrder {
			for _, q := range questionTemplates[cat][difficulty] {
				all[q] = true
			}
		}
		return all
	}

	t.Run("exact count and template membership", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		questions, outcome := Generate(jd, "Backend Engineer", DifficultyMedium, 5, rng)
		if outcome != OutcomeOK {
			t.Fatalf("outcome = %v, want OutcomeOK", outcome)
		}
		if len(questions) != 5 {
			t.Fatalf("got %d questions, want 5", len(questions))
		}

		valid := bank(DifficultyMedium)
		allowed := map[string]bool{
			CategoryBehavioral:  true,
			CategoryTechnical:   true,
			CategorySituational: true,
			CategoryGeneral:     true,
		}
		for _, q := range questions {
			if !valid[q.Question] {
				t.Errorf("question not in template bank: %q", q.Question)
			}
			if !allowed[q.Category] {
				t.Errorf("unexpected category %q", q.Category)
			}
		}
	})

	t.Run("seeded runs are deterministic", func(t *testing.T) {
		q1, _ := Generate(jd, "", DifficultyHard, 7, rand.New(rand.NewPCG(42, 7)))
		q2, _ := Generate(jd, "", DifficultyHard, 7, rand.New(rand.NewPCG(42, 7)))
		if !reflect.DeepEqual(q1, q2) {
			t.Errorf("same seed produced different questions:\n%v\n%v", q1, q2)
		}
	})

	t.Run("backfill tagged general", func(t *testing.T) {
		// Single selected category caps at 5 templates; the remainder comes
		// from the cross-category pool.
		rng := rand.New(rand.NewPCG(3, 4))
		questions, outcome := Generate("We want a friendly person.", "", DifficultyEasy, 10, rng)
		if outcome != OutcomeOK {
			t.Fatalf("outcome = %v, want OutcomeOK", outcome)
		}
		if len(questions) != 10 {
			t.Fatalf("got %d questions, want 10", len(questions))
		}
		sawGeneral := false
		for _, q := range questions {
			if q.Category == CategoryGeneral {
				sawGeneral = true
			}
		}
		if !sawGeneral {
			t.Error("expected backfilled questions tagged general")
		}
	})

	t.Run("unknown difficulty falls back to medium templates", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(5, 6))
		questions, _ := Generate("We want a friendly person.", "", "brutal", 3, rng)
		if len(questions) != 3 {
			t.Fatalf("got %d questions, want 3", len(questions))
		}
		valid := bank(DifficultyMedium)
		for _, q := range questions {
			if !valid[q.Question] {
				t.Errorf("question not from medium templates: %q", q.Question)
			}
		}
	})

	t.Run("non-positive count", func(t *testing.T) {
		questions, outcome := Generate(jd, "", DifficultyMedium, 0, nil)
		if len(questions) != 0 {
			t.Errorf("got %d questions, want 0", len(questions))
		}
		if outcome != OutcomeOK {
			t.Errorf("outcome = %v, want OutcomeOK", outcome)
		}
	})
}

func TestDefaultQuestions(t *testing.T) {
	qs := DefaultQuestions(3)
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	for _, q := range qs {
		if q.Category != CategoryBehavioral {
			t.Errorf("category = %q, want behavioral", q.Category)
		}
	}

	if got := DefaultQuestions(50); len(got) != 5 {
		t.Errorf("got %d questions, want 5", len(got))
	}
}
