package ats

import "testing"

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		job    string
		want   float64
	}{
		{
			name:   "job mentions no taxonomy skills",
			resume: "python developer",
			job:    "we want a friendly person",
			want:   0,
		},
		{
			name:   "full coverage",
			resume: "Python and Docker and AWS experience",
			job:    "Must know Python, Docker, AWS",
			want:   100,
		},
		{
			name:   "partial coverage",
			resume: "I know python",
			job:    "python and kubernetes required",
			want:   50,
		},
		{
			name:   "punctuated terms match by substring",
			resume: "Strong C++ background with project management duties",
			job:    "Looking for c++ and project management",
			want:   100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSkills(tt.resume, tt.job)
			if got != tt.want {
				t.Errorf("MatchSkills() = %v, want %v", got, tt.want)
			}
		})
	}
}
