// Package dashboard ties the pipeline together: raw rows are
// normalized with the current overrides, filtered, and fed to the
// aggregators and the report engine. Every call recomputes from the
// raw dataset, so two calls with the same inputs always return the
// same payload and a concurrent caller never observes partial state.
package dashboard

import (
	"context"
	"fmt"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/logbook"
	"github.com/Sabinoze00/logbook-aziendale/pkg/services/report"
)

// OverridesProvider supplies the manual name mappings applied on top
// of fuzzy clustering.
type OverridesProvider interface {
	Load() (domain.CategoryOverrides, error)
}

type Service struct {
	raw       domain.RawDataset
	overrides OverridesProvider
	threshold float64
}

func NewService(raw *domain.RawDataset, overrides OverridesProvider, threshold float64) (*Service, error) {
	if raw == nil || raw.Logbook == nil {
		return nil, fmt.Errorf("logbook dataset is required")
	}
	if overrides == nil {
		return nil, fmt.Errorf("overrides provider is required")
	}
	return &Service{
		raw:       *raw,
		overrides: overrides,
		threshold: threshold,
	}, nil
}

func (s *Service) dataset(ctx context.Context) (domain.Dataset, error) {
	o, err := s.overrides.Load()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load overrides: %w", err)
	}
	records, dropped := logbook.NormalizeRecords(ctx, s.raw.Logbook, o, s.threshold)
	return domain.Dataset{
		Records:      records,
		Compensation: s.raw.Compensation,
		Revenue:      s.raw.Revenue,
		Remap:        s.raw.Remap,
		Dropped:      dropped,
	}, nil
}

// Dashboard builds the full report payload for one filter application.
func (s *Service) Dashboard(ctx context.Context, c domain.FilterCriteria) (domain.Dashboard, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	filtered := logbook.Filter(ds.Records, c)

	return domain.Dashboard{
		KPI:                  report.ComputeKPI(filtered, ds.Records, c, ds.Compensation, ds.Revenue, ds.Remap),
		HoursByCollaborator:  logbook.HoursByCollaborator(filtered),
		HoursByClient:        logbook.HoursByClient(filtered),
		HoursByDepartment:    logbook.HoursByDepartment(filtered),
		HoursByMacroActivity: logbook.HoursByMacroActivity(filtered),
		HoursByMicroActivity: logbook.HoursByMicroActivity(filtered),
		Collaborators:        report.CollaboratorSummaries(filtered, ds.Records, c, ds.Compensation),
		Departments:          report.DepartmentSummaries(filtered, ds.Records, c, ds.Compensation, ds.Revenue, ds.Remap),
		Clients:              report.ClientSummaries(filtered, ds.Records, c, ds.Compensation, ds.Revenue, ds.Remap),
		MonthlyRevenue:       report.MonthlyRevenue(filtered, ds.Revenue, ds.Remap),
		RecordCount:          len(ds.Records),
		FilteredCount:        len(filtered),
		DroppedCount:         ds.Dropped,
	}, nil
}

// MonthlyRevenue builds just the client-by-month matrix, for exports.
func (s *Service) MonthlyRevenue(ctx context.Context, c domain.FilterCriteria) (domain.MonthlyRevenueMatrix, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return domain.MonthlyRevenueMatrix{}, err
	}
	filtered := logbook.Filter(ds.Records, c)
	return report.MonthlyRevenue(filtered, ds.Revenue, ds.Remap), nil
}

// FilterOptions lists the distinct canonical values per dimension for
// the filter controls.
func (s *Service) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return domain.FilterOptions{
		Collaborators:   logbook.Distinct(ds.Records, func(r domain.WorkRecord) string { return r.Collaborator }),
		Departments:     logbook.Distinct(ds.Records, func(r domain.WorkRecord) string { return r.Department }),
		MacroActivities: logbook.Distinct(ds.Records, func(r domain.WorkRecord) string { return r.MacroActivity }),
		Clients:         logbook.Distinct(ds.Records, func(r domain.WorkRecord) string { return r.Client }),
	}, nil
}
