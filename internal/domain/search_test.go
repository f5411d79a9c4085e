package domain

import "testing"

func TestSearchCriteriaIsEmpty(t *testing.T) {
	if !NewSearchCriteria("", " ", "").IsEmpty() {
		t.Error("expected blank criteria to be empty")
	}
	if NewSearchCriteria("", "dune", "").IsEmpty() {
		t.Error("expected title criterion to make criteria non-empty")
	}
}

func TestSearchCriteriaMatches(t *testing.T) {
	dune := BookMetadata{Title: "Dune", Author: "Frank Herbert", Description: "Spice and sand worms on Arrakis."}

	tests := []struct {
		name     string
		criteria SearchCriteria
		want     bool
	}{
		{name: "no criteria", criteria: SearchCriteria{}, want: true},
		{name: "title case insensitive", criteria: NewSearchCriteria("", "dun", ""), want: true},
		{name: "author upper case", criteria: NewSearchCriteria("HERBERT", "", ""), want: true},
		{name: "description fragment", criteria: NewSearchCriteria("", "", "sand worms"), want: true},
		{name: "all must match", criteria: NewSearchCriteria("herbert", "foundation", ""), want: false},
		{name: "missing fragment", criteria: NewSearchCriteria("", "", "robots"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(dune); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
