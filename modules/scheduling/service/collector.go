package service

import (
	"sort"

	"planit-api/modules/scheduling/dto"
	"planit-api/modules/scheduling/entity"
)

// Collector normalizes raw schedule records into per-participant busy
// commitments. Broken records are dropped and counted, never fatal:
// upstream data is user-entered and may be malformed.
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

// Collect builds the ordered commitment list for one participant and
// returns it with the number of records it had to drop.
func (c *Collector) Collect(participantID string, schedule dto.MemberSchedule) ([]entity.Commitment, int) {
	var commitments []entity.Commitment
	skipped := 0

	for _, a := range schedule.Activities {
		cm, ok := c.collectActivity(participantID, a)
		if !ok {
			skipped++
			continue
		}
		commitments = append(commitments, cm)
	}

	for _, g := range schedule.Goals {
		for _, tl := range g.Timelines {
			expanded, ok := c.collectTimeline(participantID, g.GoalTitle, tl)
			if !ok {
				skipped++
				continue
			}
			commitments = append(commitments, expanded...)
		}
	}

	for _, m := range schedule.Meetings {
		cm, ok := c.collectMeeting(participantID, m)
		if !ok {
			skipped++
			continue
		}
		commitments = append(commitments, cm)
	}

	sort.SliceStable(commitments, func(i, j int) bool {
		a, b := commitments[i].Interval, commitments[j].Interval
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.Start < b.Start
	})

	return commitments, skipped
}

func (c *Collector) collectActivity(participantID string, a dto.ActivityRecord) (entity.Commitment, bool) {
	date, err := entity.ParseDate(a.ActivityDate)
	if err != nil {
		return entity.Commitment{}, false
	}

	interval, ok := buildInterval(date, a.ActivityStartTime, a.ActivityEndTime)
	if !ok {
		return entity.Commitment{}, false
	}

	return entity.Commitment{
		ParticipantID: participantID,
		Kind:          entity.KindActivity,
		Interval:      interval,
		Label:         a.ActivityTitle,
		Weight:        entity.WeightFromUrgency(a.ActivityUrgency),
	}, true
}

// collectTimeline expands a goal timeline into one commitment per covered
// date. Timelines with explicit hours are fixed; all-day ones are low
// weight, surfacing the overlap without blocking whole days.
func (c *Collector) collectTimeline(participantID, goalTitle string, tl dto.TimelineRecord) ([]entity.Commitment, bool) {
	start, err := entity.ParseDate(tl.TimelineStartDate)
	if err != nil {
		return nil, false
	}
	end, err := entity.ParseDate(tl.TimelineEndDate)
	if err != nil {
		return nil, false
	}

	dates, err := entity.SpanDates(start, end)
	if err != nil {
		return nil, false
	}

	label := goalTitle
	if tl.TimelineTitle != "" {
		label = goalTitle + " - " + tl.TimelineTitle
	}

	timed := tl.TimelineStartTime != "" && tl.TimelineEndTime != ""
	weight := entity.WeightLow
	if timed {
		weight = entity.WeightFixed
	}

	commitments := make([]entity.Commitment, 0, len(dates))
	for _, date := range dates {
		interval, ok := buildInterval(date, tl.TimelineStartTime, tl.TimelineEndTime)
		if !ok {
			return nil, false
		}
		commitments = append(commitments, entity.Commitment{
			ParticipantID: participantID,
			Kind:          entity.KindGoalTimeline,
			Interval:      interval,
			Label:         label,
			Weight:        weight,
		})
	}
	return commitments, true
}

func (c *Collector) collectMeeting(participantID string, m dto.MeetingRecord) (entity.Commitment, bool) {
	date, err := entity.ParseDate(m.MeetingDate)
	if err != nil {
		return entity.Commitment{}, false
	}

	interval, ok := buildInterval(date, m.MeetingStartTime, m.MeetingEndTime)
	if !ok {
		return entity.Commitment{}, false
	}

	return entity.Commitment{
		ParticipantID: participantID,
		Kind:          entity.KindMeeting,
		Interval:      interval,
		Label:         m.MeetingTitle,
		Weight:        entity.WeightFixed,
	}, true
}

// buildInterval turns optional HH:MM strings into a timed or all-day
// interval. Returns false when the times are present but unusable.
func buildInterval(date entity.Date, startTime, endTime string) (entity.Interval, bool) {
	if startTime == "" || endTime == "" {
		return entity.NewAllDayInterval(date), true
	}

	start, err := entity.ParseClock(startTime)
	if err != nil {
		return entity.Interval{}, false
	}
	end, err := entity.ParseClock(endTime)
	if err != nil {
		return entity.Interval{}, false
	}

	interval, err := entity.NewInterval(date, start, end)
	if err != nil {
		return entity.Interval{}, false
	}
	return interval, true
}
