package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/testutil"
	"gorm.io/gorm"
)

type ExperienceServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	service     *ExperienceService
	postulation *PostulationService
	ctx         context.Context

	youth, company, otherCompany, admin *models.User
	opportunity                          *models.Opportunity
}

func (suite *ExperienceServiceTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	postulationRepo := repository.NewPostulationRepository(suite.db)
	suite.service = NewExperienceService(
		repository.NewExperienceRepository(suite.db),
		postulationRepo,
		repository.NewOpportunityRepository(suite.db),
	)
	suite.postulation = NewPostulationService(postulationRepo)
	suite.ctx = context.Background()

	t := suite.T()
	suite.youth = testutil.CreateUser(t, suite.db, "ana", models.RoleYouth)
	suite.company = testutil.CreateUser(t, suite.db, "acme", models.RoleCompany)
	suite.otherCompany = testutil.CreateUser(t, suite.db, "globex", models.RoleCompany)
	suite.admin = testutil.CreateUser(t, suite.db, "root", models.RoleAdmin)
	suite.opportunity = testutil.CreateOpportunity(t, suite.db, "Practicante", suite.company.ID, nil)
}

func (suite *ExperienceServiceTestSuite) input() CreateExperienceInput {
	start := models.NewDate(2025, time.January, 6)
	end := models.NewDate(2025, time.June, 30)
	return CreateExperienceInput{
		UserID:        suite.youth.ID,
		OpportunityID: suite.opportunity.ID,
		Description:   "Seis meses de práctica",
		StartDate:     &start,
		EndDate:       &end,
	}
}

func (suite *ExperienceServiceTestSuite) TestCreate_RequiresAcceptedPostulation() {
	// No postulation at all.
	_, err := suite.service.CreateExperience(suite.ctx, identityOf(suite.company), suite.input())
	assert.ErrorIs(suite.T(), err, ErrNoAcceptedPostulation)

	// Pending postulation.
	postulation := testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "pendiente")
	_, err = suite.service.CreateExperience(suite.ctx, identityOf(suite.company), suite.input())
	assert.ErrorIs(suite.T(), err, ErrNoAcceptedPostulation)

	// Accepted, with different casing.
	_, err = suite.postulation.SetStatus(suite.ctx, postulation.ID, "Aceptado")
	suite.Require().NoError(err)

	experience, err := suite.service.CreateExperience(suite.ctx, identityOf(suite.company), suite.input())
	suite.Require().NoError(err)
	assert.NotZero(suite.T(), experience.ID)
	assert.Equal(suite.T(), "2025-01-06", experience.StartDate.String())

	var count int64
	suite.db.Model(&models.Experience{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *ExperienceServiceTestSuite) TestCreate_ChecksOpportunityBeforeOwnership() {
	input := suite.input()
	input.OpportunityID = 9999

	_, err := suite.service.CreateExperience(suite.ctx, identityOf(suite.otherCompany), input)
	assert.ErrorIs(suite.T(), err, ErrOpportunityNotFound)
}

func (suite *ExperienceServiceTestSuite) TestCreate_OwnerOrAdmin() {
	testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "aceptada")

	_, err := suite.service.CreateExperience(suite.ctx, identityOf(suite.otherCompany), suite.input())
	assert.ErrorIs(suite.T(), err, auth.ErrNotOwner)

	_, err = suite.service.CreateExperience(suite.ctx, identityOf(suite.admin), suite.input())
	assert.NoError(suite.T(), err)
}

func (suite *ExperienceServiceTestSuite) TestListForCaller() {
	otherOpportunity := testutil.CreateOpportunity(suite.T(), suite.db, "Asistente", suite.otherCompany.ID, nil)
	suite.Require().NoError(suite.db.Create(&models.Experience{UserID: suite.youth.ID, OpportunityID: suite.opportunity.ID}).Error)
	suite.Require().NoError(suite.db.Create(&models.Experience{UserID: suite.youth.ID, OpportunityID: otherOpportunity.ID}).Error)

	mine, err := suite.service.ListForCaller(suite.ctx, identityOf(suite.youth))
	suite.Require().NoError(err)
	assert.Len(suite.T(), mine, 2)

	forCompany, err := suite.service.ListForCaller(suite.ctx, identityOf(suite.company))
	suite.Require().NoError(err)
	suite.Require().Len(forCompany, 1)
	assert.Equal(suite.T(), suite.opportunity.ID, forCompany[0].OpportunityID)
	suite.Require().NotNil(forCompany[0].User)
	assert.Equal(suite.T(), "ana", forCompany[0].User.Name)

	all, err := suite.service.ListForCaller(suite.ctx, identityOf(suite.admin))
	suite.Require().NoError(err)
	assert.Len(suite.T(), all, 2)
}

func (suite *ExperienceServiceTestSuite) TestAcceptedCandidates() {
	other := testutil.CreateUser(suite.T(), suite.db, "luis", models.RoleYouth)
	testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "ACEPTADO")
	testutil.CreatePostulation(suite.T(), suite.db, other.ID, suite.opportunity.ID, "rechazado")

	candidates, err := suite.service.AcceptedCandidates(suite.ctx, suite.opportunity.ID)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	assert.Equal(suite.T(), suite.youth.ID, candidates[0].ID)
}

func (suite *ExperienceServiceTestSuite) TestDelete() {
	experience := &models.Experience{UserID: suite.youth.ID, OpportunityID: suite.opportunity.ID}
	suite.Require().NoError(suite.db.Create(experience).Error)

	suite.Require().NoError(suite.service.DeleteExperience(suite.ctx, experience.ID))
	assert.ErrorIs(suite.T(), suite.service.DeleteExperience(suite.ctx, experience.ID), ErrExperienceNotFound)
}

func TestExperienceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExperienceServiceTestSuite))
}
