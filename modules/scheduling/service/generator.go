package service

import "planit-api/modules/scheduling/entity"

// SlotGranularityMinutes is the step between candidate start times.
// Slots start on the hour or half-hour only.
const SlotGranularityMinutes = 30

// Generator enumerates candidate meeting slots within a request's date
// range and working hours.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate emits one candidate per granularity step per day. A day whose
// working window is shorter than the duration simply yields nothing;
// an entirely empty result is valid and handled by the ranker.
func (g *Generator) Generate(req *entity.Request) []entity.Candidate {
	var candidates []entity.Candidate

	lastStart := req.WorkingHours.End - req.DurationMinutes
	for date := req.DateRange.Start; !date.After(req.DateRange.End); date = date.AddDays(1) {
		for start := req.WorkingHours.Start; start <= lastStart; start += SlotGranularityMinutes {
			candidates = append(candidates, entity.Candidate{
				Date:  date,
				Start: start,
				End:   start + req.DurationMinutes,
			})
		}
	}

	return candidates
}
