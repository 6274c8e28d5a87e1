package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Summary holds platform-wide totals.
type Summary struct {
	Users         int64
	Youth         int64
	Companies     int64
	Opportunities int64
	Experiences   int64
}

// YouthDashboard holds a youth user's activity counts.
type YouthDashboard struct {
	Postulations int64
	Experiences  int64
}

// CompanyDashboard holds a company's activity counts.
type CompanyDashboard struct {
	Opportunities int64
	Postulations  int64
	Hired         int64
}

// AdminDashboard holds totals shown to administrators. Connections counts
// recorded experiences.
type AdminDashboard struct {
	Users         int64
	Opportunities int64
	Connections   int64
}

// StatsService runs aggregate counts for the statistics endpoints.
type StatsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// countFn is one count query run as part of a dashboard.
type countFn func(ctx context.Context) (int64, error)

// countAll runs every query concurrently and stores the results in the
// matching destinations. The first failure cancels the others.
func countAll(ctx context.Context, dests []*int64, queries []countFn) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range queries {
		dest, query := dests[i], queries[i]
		g.Go(func() error {
			n, err := query(gctx)
			if err != nil {
				return err
			}
			*dest = n
			return nil
		})
	}
	return g.Wait()
}

// Summary counts users by role, opportunities and experiences.
func (s *StatsService) Summary(ctx context.Context) (*Summary, error) {
	youth, company := models.RoleYouth, models.RoleCompany

	var summary Summary
	err := countAll(ctx,
		[]*int64{&summary.Users, &summary.Youth, &summary.Companies, &summary.Opportunities, &summary.Experiences},
		[]countFn{
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountUsers(ctx, nil) },
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountUsers(ctx, &youth) },
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountUsers(ctx, &company) },
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountOpportunities(ctx, nil) },
			func(ctx context.Context) (int64, error) {
				return s.statsRepo.CountExperiences(ctx, repository.ExperienceFilter{})
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	return &summary, nil
}

func (s *StatsService) YouthDashboard(ctx context.Context, userID uint64) (*YouthDashboard, error) {
	var dashboard YouthDashboard
	err := countAll(ctx,
		[]*int64{&dashboard.Postulations, &dashboard.Experiences},
		[]countFn{
			func(ctx context.Context) (int64, error) {
				return s.statsRepo.CountPostulations(ctx, repository.PostulationFilter{UserID: &userID})
			},
			func(ctx context.Context) (int64, error) {
				return s.statsRepo.CountExperiences(ctx, repository.ExperienceFilter{UserID: &userID})
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute youth dashboard: %w", err)
	}
	return &dashboard, nil
}

// CompanyDashboard counts the company's opportunities, the postulations they
// received and the experiences recorded for them.
func (s *StatsService) CompanyDashboard(ctx context.Context, userID uint64) (*CompanyDashboard, error) {
	var dashboard CompanyDashboard
	err := countAll(ctx,
		[]*int64{&dashboard.Opportunities, &dashboard.Postulations, &dashboard.Hired},
		[]countFn{
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountOpportunities(ctx, &userID) },
			func(ctx context.Context) (int64, error) {
				return s.statsRepo.CountPostulations(ctx, repository.PostulationFilter{OpportunityOwnerID: &userID})
			},
			func(ctx context.Context) (int64, error) {
				return s.statsRepo.CountExperiences(ctx, repository.ExperienceFilter{OpportunityOwnerID: &userID})
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute company dashboard: %w", err)
	}
	return &dashboard, nil
}

func (s *StatsService) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	var dashboard AdminDashboard
	err := countAll(ctx,
		[]*int64{&dashboard.Users, &dashboard.Opportunities, &dashboard.Connections},
		[]countFn{
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountUsers(ctx, nil) },
			func(ctx context.Context) (int64, error) { return s.statsRepo.CountOpportunities(ctx, nil) },
			func(ctx context.Context) (int64, error) {
				return s.statsRepo.CountExperiences(ctx, repository.ExperienceFilter{})
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute admin dashboard: %w", err)
	}
	return &dashboard, nil
}
