package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sabinoze00/logbook-aziendale/pkg/adapters"
	"github.com/Sabinoze00/logbook-aziendale/pkg/models/api"
	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/dashboard"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/sheets"
)

const dateLayout = "2006-01-02"

// OverridesStore reads and writes the manual name-mapping file.
type OverridesStore interface {
	Load() (domain.CategoryOverrides, error)
	Save(domain.CategoryOverrides) error
}

type Handler struct {
	service *dashboard.Service
	store   OverridesStore
}

func NewHandler(service *dashboard.Service, store OverridesStore) *Handler {
	return &Handler{service: service, store: store}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.service.Dashboard(ctx, criteria)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build dashboard")
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapDashboardDomainToApi(d))
}

func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	options, err := h.service.FilterOptions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list filter options")
		http.Error(w, "failed to list filter options", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapFilterOptionsDomainToApi(options))
}

func (h *Handler) GetMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	criteria, err := criteriaFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matrix, err := h.service.MonthlyRevenue(ctx, criteria)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build monthly revenue matrix")
		http.Error(w, "failed to build monthly revenue matrix", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		name := fmt.Sprintf("fatturato_mensile_clienti_%s.csv", time.Now().Format(dateLayout))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+name)
		if err := sheets.WriteMonthlyRevenueCSV(w, matrix); err != nil {
			logger.Error().Err(err).Msg("failed to write revenue csv")
		}
	case "xlsx":
		f, err := sheets.MonthlyRevenueXLSX(matrix)
		if err != nil {
			logger.Error().Err(err).Msg("failed to build revenue workbook")
			http.Error(w, "failed to build revenue workbook", http.StatusInternalServerError)
			return
		}
		name := fmt.Sprintf("fatturato_mensile_clienti_%s.xlsx", time.Now().Format(dateLayout))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+name)
		if err := f.Write(w); err != nil {
			logger.Error().Err(err).Msg("failed to write revenue workbook")
		}
	default:
		writeJSON(w, logger, adapters.MapMonthlyRevenueDomainToApi(matrix))
	}
}

func (h *Handler) GetMappings(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	o, err := h.store.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load mapping overrides")
		http.Error(w, "failed to load mapping overrides", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapOverridesDomainToApi(o))
}

func (h *Handler) PutMappings(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var payload api.MappingOverrides
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid mapping payload", http.StatusBadRequest)
		return
	}

	if err := h.store.Save(adapters.MapOverridesApiToDomain(payload)); err != nil {
		logger.Error().Err(err).Msg("failed to save mapping overrides")
		http.Error(w, "failed to save mapping overrides", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// criteriaFromQuery reads the date range and the repeated dimension
// params. Missing dates default to the current calendar year.
func criteriaFromQuery(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()
	now := time.Now()

	criteria := domain.FilterCriteria{
		Start:           time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		End:             time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
		Collaborators:   q["collaborator"],
		Departments:     q["department"],
		MacroActivities: q["activity"],
		Clients:         q["client"],
	}

	if s := q.Get("start"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("invalid start date %q", s)
		}
		criteria.Start = t
	}
	if s := q.Get("end"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("invalid end date %q", s)
		}
		criteria.End = t
	}
	return criteria, nil
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
