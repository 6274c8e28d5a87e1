package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/testutil"
)

func TestStatsService_Counts(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewStatsService(repository.NewStatsRepository(db))
	ctx := context.Background()

	youth := testutil.CreateUser(t, db, "ana", models.RoleYouth)
	other := testutil.CreateUser(t, db, "luis", models.RoleYouth)
	company := testutil.CreateUser(t, db, "acme", models.RoleCompany)
	rival := testutil.CreateUser(t, db, "globex", models.RoleCompany)
	testutil.CreateUser(t, db, "root", models.RoleAdmin)

	opportunity := testutil.CreateOpportunity(t, db, "Practicante", company.ID, nil)
	testutil.CreateOpportunity(t, db, "Asistente", company.ID, nil)
	rivalOpportunity := testutil.CreateOpportunity(t, db, "Cajero", rival.ID, nil)

	testutil.CreatePostulation(t, db, youth.ID, opportunity.ID, "aceptado")
	testutil.CreatePostulation(t, db, other.ID, opportunity.ID, "pendiente")
	testutil.CreatePostulation(t, db, youth.ID, rivalOpportunity.ID, "pendiente")
	require.NoError(t, db.Create(&models.Experience{UserID: youth.ID, OpportunityID: opportunity.ID}).Error)

	summary, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 5, Youth: 2, Companies: 2, Opportunities: 3, Experiences: 1}, *summary)

	youthDashboard, err := service.YouthDashboard(ctx, youth.ID)
	require.NoError(t, err)
	assert.Equal(t, YouthDashboard{Postulations: 2, Experiences: 1}, *youthDashboard)

	companyDashboard, err := service.CompanyDashboard(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, CompanyDashboard{Opportunities: 2, Postulations: 2, Hired: 1}, *companyDashboard)

	adminDashboard, err := service.AdminDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, AdminDashboard{Users: 5, Opportunities: 3, Connections: 1}, *adminDashboard)
}

type failingStatsRepository struct {
	repository.StatsRepository
}

func (failingStatsRepository) CountUsers(context.Context, *models.RoleID) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingStatsRepository) CountOpportunities(context.Context, *uint64) (int64, error) {
	return 3, nil
}

func (failingStatsRepository) CountExperiences(context.Context, repository.ExperienceFilter) (int64, error) {
	return 1, nil
}

func TestStatsService_PropagatesFirstError(t *testing.T) {
	service := NewStatsService(failingStatsRepository{})

	_, err := service.AdminDashboard(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}
