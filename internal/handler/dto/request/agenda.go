package request

import (
	"strings"
	"time"

	"studio-agenda/internal/domain/schedule"
	"studio-agenda/internal/usecase/queries"
)

type AgendaQuery struct {
	Date   string `form:"date"`
	Studio string `form:"studio"`
	Week   int    `form:"week"`
}

// ToWindowChange leaves the session window untouched for omitted parameters.
func (q AgendaQuery) ToWindowChange(loc *time.Location) (queries.WindowChange, error) {
	var change queries.WindowChange
	if date := strings.TrimSpace(q.Date); date != "" {
		d, err := schedule.ParseDay(date, loc)
		if err != nil {
			return queries.WindowChange{}, err
		}
		change.Date = d
	}
	change.WeekShift = q.Week
	if strings.TrimSpace(q.Studio) != "" {
		filter := schedule.NewStudioFilter(q.Studio)
		change.Filter = &filter
	}
	return change, nil
}

type ClassesQuery struct {
	Date   string `form:"date"`
	Studio string `form:"studio"`
}

// ParseDate returns the zero time for an omitted date, which lists today's classes.
func (q ClassesQuery) ParseDate(loc *time.Location) (time.Time, error) {
	date := strings.TrimSpace(q.Date)
	if date == "" {
		return time.Time{}, nil
	}
	return schedule.ParseDay(date, loc)
}

func (q ClassesQuery) Filter() schedule.StudioFilter {
	return schedule.NewStudioFilter(q.Studio)
}
