package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  36,
		ValueWidth: 14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Handle renders the dashboard as a terminal report.
func (c *Reporter) Handle(d domain.Dashboard, criteria domain.FilterCriteria) error {
	funcMap := template.FuncMap{
		"eur": func(v float64) string {
			return fmt.Sprintf("€ %.2f", v)
		},
		"hours": func(v float64) string {
			return fmt.Sprintf("%.1f h", v)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"rate": func(v float64) string {
			// -1 flags compensation with zero logged hours.
			if v == -1 {
				return "compenso senza ore"
			}
			return fmt.Sprintf("€ %.2f/h", v)
		},
		"row": func(name string, value string) string {
			return fmt.Sprintf("| %-*s | %*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
Logbook Report: {{.Criteria.Start.Format "2006-01-02"}} to {{.Criteria.End.Format "2006-01-02"}}
Records: {{.Dashboard.FilteredCount}} filtered of {{.Dashboard.RecordCount}} ({{.Dashboard.DroppedCount}} dropped on import)

=== KPI ===
{{separator}}
{{row "Ore totali" (hours .Dashboard.KPI.TotalHours)}}
{{row "Costo orario medio" (eur .Dashboard.KPI.AverageHourlyCost)}}
{{row "Costo ore filtrate" (eur .Dashboard.KPI.FilteredHoursCost)}}
{{row "Fatturato" (eur .Dashboard.KPI.TotalRevenue)}}
{{row "Margine" (eur .Dashboard.KPI.Margin)}}
{{row "Margine %" (pct .Dashboard.KPI.MarginPercentage)}}
{{separator}}

=== Ore per collaboratore ===
{{separator}}
{{range .Dashboard.HoursByCollaborator}}{{row .Name (hours .Hours)}}
{{end}}{{separator}}

=== Ore per cliente ===
{{separator}}
{{range .Dashboard.HoursByClient}}{{row .Name (hours .Hours)}}
{{end}}{{separator}}

=== Ore per reparto ===
{{separator}}
{{range .Dashboard.HoursByDepartment}}{{row .Name (hours .Hours)}}
{{end}}{{separator}}

=== Collaboratori ===
{{range .Dashboard.Collaborators}}{{.Collaborator}}: {{hours .FilteredHours}} filtrate, {{hours .TotalPeriodHours}} nel periodo, {{.ClientsServed}} clienti, compenso {{eur .TotalCompensation}}, {{rate .EffectiveHourlyRate}}
{{end}}
=== Reparti ===
{{range .Dashboard.Departments}}{{.Department}}: {{hours .FilteredHours}}, costo {{eur .TotalCost}}, fatturato {{eur .TotalRevenue}}, margine {{eur .Margin}} ({{pct .MarginPercentage}})
{{end}}
=== Clienti ===
{{range .Dashboard.Clients}}{{.Client}}: {{hours .FilteredHours}}, costo {{eur .TotalCost}}, fatturato {{eur .TotalRevenue}}, margine {{eur .Margin}} ({{pct .MarginPercentage}})
{{end}}
=== Fatturato mensile ===
{{range .Dashboard.MonthlyRevenue.Rows}}{{row .Client (eur .Total)}}
{{end}}{{row "TOTALE" (eur .Dashboard.MonthlyRevenue.GrandTotal)}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Dashboard domain.Dashboard
		Criteria  domain.FilterCriteria
	}{d, criteria})
}
