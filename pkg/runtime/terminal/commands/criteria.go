package commands

import (
	"fmt"
	"time"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// filterFlags are the criteria flags shared by the report and export
// commands.
type filterFlags struct {
	start           string
	end             string
	collaborators   []string
	departments     []string
	macroActivities []string
	clients         []string
}

// criteria builds the FilterCriteria from the flags; missing dates
// default to the current calendar year.
func (f *filterFlags) criteria() (domain.FilterCriteria, error) {
	now := time.Now()
	c := domain.FilterCriteria{
		Start:           time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		End:             time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
		Collaborators:   f.collaborators,
		Departments:     f.departments,
		MacroActivities: f.macroActivities,
		Clients:         f.clients,
	}

	if f.start != "" {
		t, err := time.Parse(dateLayout, f.start)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("invalid start date %q", f.start)
		}
		c.Start = t
	}
	if f.end != "" {
		t, err := time.Parse(dateLayout, f.end)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("invalid end date %q", f.end)
		}
		c.End = t
	}
	return c, nil
}
