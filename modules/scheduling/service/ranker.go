package service

import (
	"sort"

	"planit-api/core/errors"
	"planit-api/modules/scheduling/entity"
)

const baseScore = 100

// Ranker runs the full pipeline over a request: generate candidates,
// evaluate each, discard disqualified slots, score, sort and truncate.
type Ranker struct {
	generator      *Generator
	evaluator      *Evaluator
	maxSuggestions int
}

func NewRanker(matcher PreferenceMatcher, maxSuggestions int) *Ranker {
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}
	return &Ranker{
		generator:      NewGenerator(),
		evaluator:      NewEvaluator(matcher),
		maxSuggestions: maxSuggestions,
	}
}

// Rank returns the ordered suggestion list for a request. Identical input
// always yields identical output order and scores: sorting is by score
// descending with earliest-date-then-earliest-start tie-breaks.
func (r *Ranker) Rank(req *entity.Request) (*entity.Result, *errors.AppError) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	candidates := r.generator.Generate(req)

	suggestions := make([]entity.Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		eval := r.evaluator.Evaluate(candidate, req)
		if eval.Disqualified {
			continue
		}

		suggestions = append(suggestions, entity.Suggestion{
			Date:         candidate.Date,
			Start:        candidate.Start,
			End:          candidate.End,
			Score:        clampScore(baseScore + eval.Penalty),
			Conflicts:    eval.Conflicts,
			Advantages:   eval.Advantages,
			Availability: eval.Availability,
		})
	}

	if len(suggestions) == 0 {
		return &entity.Result{Suggestions: []entity.Suggestion{}, Reason: entity.ReasonNoFeasibleSlot}, nil
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := &suggestions[i], &suggestions[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.Start < b.Start
	})

	if len(suggestions) > r.maxSuggestions {
		suggestions = suggestions[:r.maxSuggestions]
	}

	return &entity.Result{Suggestions: suggestions}, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > baseScore {
		return baseScore
	}
	return score
}
