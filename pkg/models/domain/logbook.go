package domain

import "time"

// RawRecord is a logbook row as produced by the sheet adapter, before
// date parsing and name canonicalization.
type RawRecord struct {
	Collaborator  string
	Date          string
	Department    string
	MacroActivity string
	MicroActivity string
	Client        string
	Note          string
	Minutes       int
}

// WorkRecord is a fully normalized logbook row. Every WorkRecord has a
// valid calendar date; rows whose date could not be parsed are dropped
// during normalization and never reach the pipeline.
type WorkRecord struct {
	Collaborator  string
	Date          time.Time
	Department    string
	MacroActivity string
	MicroActivity string
	Client        string
	Note          string
	Minutes       int
	MonthLabel    string
}

// CompensationTable maps a collaborator to their monthly compensation.
// Sparse: a missing month means zero compensation for that month.
type CompensationTable map[string]map[string]float64

// RevenueTable maps a (remapped) client name to its monthly revenue.
// Values are kept as display-formatted strings (EU number convention,
// optional currency symbol) and parsed by the report engine; missing or
// unparsable entries count as zero.
type RevenueTable map[string]map[string]string

// ClientRemap resolves a logbook client name to the billing-system
// name that keys the RevenueTable. Lookup is identity when a name is
// absent. It only resolves revenue lookups and never affects record
// grouping.
type ClientRemap map[string]string

// Resolve returns the billing-system name for a logbook client name,
// or the name itself when no remapping exists.
func (r ClientRemap) Resolve(client string) string {
	if mapped, ok := r[client]; ok {
		return mapped
	}
	return client
}

// CategoryOverrides holds the manual raw-label to canonical-label
// mappings for each of the five name categories. Overrides are exact
// match on the raw label and always win over fuzzy clustering.
type CategoryOverrides struct {
	Clients         map[string]string `json:"clienti"`
	Collaborators   map[string]string `json:"collaboratori"`
	Departments     map[string]string `json:"reparti"`
	MacroActivities map[string]string `json:"macroAttivita"`
	MicroActivities map[string]string `json:"microAttivita"`
}

// EmptyOverrides returns a CategoryOverrides with all five maps
// initialized and empty.
func EmptyOverrides() CategoryOverrides {
	return CategoryOverrides{
		Clients:         map[string]string{},
		Collaborators:   map[string]string{},
		Departments:     map[string]string{},
		MacroActivities: map[string]string{},
		MicroActivities: map[string]string{},
	}
}

// FilterCriteria restricts a record set to a date range plus optional
// set filters. Start and End are inclusive at calendar-day granularity.
// An empty slice means no restriction on that dimension.
type FilterCriteria struct {
	Start           time.Time
	End             time.Time
	Collaborators   []string
	Departments     []string
	MacroActivities []string
	Clients         []string
}

// RawDataset bundles the four sheet payloads as delivered by the
// adapter, before normalization.
type RawDataset struct {
	Logbook      []RawRecord
	Compensation CompensationTable
	Revenue      RevenueTable
	Remap        ClientRemap
}

// Dataset is a canonicalized record set together with its lookup
// tables. It is rebuilt from scratch on every recomputation; nothing in
// it is mutated after construction.
type Dataset struct {
	Records      []WorkRecord
	Compensation CompensationTable
	Revenue      RevenueTable
	Remap        ClientRemap
	Dropped      int
}

// MonthLabels lists the Italian month names used as time buckets for
// compensation and revenue lookups, in calendar order.
var MonthLabels = [12]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile",
	"Maggio", "Giugno", "Luglio", "Agosto",
	"Settembre", "Ottobre", "Novembre", "Dicembre",
}

// MonthLabelFor returns the Italian month name for a date.
func MonthLabelFor(t time.Time) string {
	return MonthLabels[int(t.Month())-1]
}

// MonthIndex returns the calendar position of a month label, or 12 for
// unknown labels so they sort after the real months.
func MonthIndex(label string) int {
	for i, m := range MonthLabels {
		if m == label {
			return i
		}
	}
	return len(MonthLabels)
}

// DefaultClientRemap returns the built-in billing-name mapping used
// when no Mappa sheet is supplied.
func DefaultClientRemap() ClientRemap {
	return ClientRemap{
		"Acos Medica":          "ACOS MEDICA",
		"Flobflower":           "Bovo Garden Srl",
		"Business Gates":       "Business Gates S.r.l.",
		"Zeiss":                "CARL ZEISS VISION ITALIA S.P.A.",
		"Sonit":                "CAROVILLA PIERLUIGI (SONIT)",
		"Cisa":                 "Cisa S.p.a.",
		"Colibrì":              "CoLibrì System S.p.A.",
		"Curcapil":             "CURCAPIL DI CARLUCCI DONATO SNC",
		"Elettrocasa":          "Elettrocasa S.r.l.",
		"Casaviva":             "FIDELIA - S.R.L.",
		"Flomar":               "FLO.MAR. S.R.L.S.",
		"Fratelli Bonella":     "Fratelli Bonella",
		"Divani Store":         "HOMIT S.R.L.",
		"Nowave":               "NOWAVE",
		"Patrizio Breseghello": "PATRIZIO BRESEGHELLO",
		"Polonord":             "POLONORD ADESTE",
		"Saiet":                "SAIET",
		"San Pietro Lab":       "SAN PIETRO LAB",
		"Passione Fiori":       "Sivec Srl",
		"Coccole":              "STILMAR DI MARISE RICCARDO (COCCOLE)",
		"Tomaino":              "TOMAINO SRL",
	}
}
