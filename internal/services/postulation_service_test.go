package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/constants"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/testutil"
	"gorm.io/gorm"
)

type PostulationServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *PostulationService
	ctx     context.Context

	youth, otherYouth, company, otherCompany, admin *models.User
	opportunity, otherOpportunity                   *models.Opportunity
}

func (suite *PostulationServiceTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	suite.service = NewPostulationService(repository.NewPostulationRepository(suite.db))
	suite.ctx = context.Background()

	t := suite.T()
	suite.youth = testutil.CreateUser(t, suite.db, "ana", models.RoleYouth)
	suite.otherYouth = testutil.CreateUser(t, suite.db, "luis", models.RoleYouth)
	suite.company = testutil.CreateUser(t, suite.db, "acme", models.RoleCompany)
	suite.otherCompany = testutil.CreateUser(t, suite.db, "globex", models.RoleCompany)
	suite.admin = testutil.CreateUser(t, suite.db, "root", models.RoleAdmin)
	suite.opportunity = testutil.CreateOpportunity(t, suite.db, "Practicante", suite.company.ID, nil)
	suite.otherOpportunity = testutil.CreateOpportunity(t, suite.db, "Asistente", suite.otherCompany.ID, nil)
}

func identityOf(user *models.User) auth.Identity {
	return auth.Identity{UserID: user.ID, RoleID: user.RoleID}
}

func (suite *PostulationServiceTestSuite) TestApply_DefaultsToPending() {
	message := "Me interesa"
	postulation, err := suite.service.Apply(suite.ctx, identityOf(suite.youth), suite.opportunity.ID, &message)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), constants.DefaultPostulationStatus, postulation.Status)
	assert.Equal(suite.T(), suite.youth.ID, postulation.UserID)
	assert.Equal(suite.T(), &message, postulation.Message)
}

func (suite *PostulationServiceTestSuite) TestApply_RejectsDuplicate() {
	_, err := suite.service.Apply(suite.ctx, identityOf(suite.youth), suite.opportunity.ID, nil)
	suite.Require().NoError(err)

	_, err = suite.service.Apply(suite.ctx, identityOf(suite.youth), suite.opportunity.ID, nil)
	assert.ErrorIs(suite.T(), err, ErrDuplicatePostulation)

	// A different opportunity or applicant is unaffected.
	_, err = suite.service.Apply(suite.ctx, identityOf(suite.youth), suite.otherOpportunity.ID, nil)
	assert.NoError(suite.T(), err)
	_, err = suite.service.Apply(suite.ctx, identityOf(suite.otherYouth), suite.opportunity.ID, nil)
	assert.NoError(suite.T(), err)

	var count int64
	suite.db.Model(&models.Postulation{}).Count(&count)
	assert.Equal(suite.T(), int64(3), count)
}

func (suite *PostulationServiceTestSuite) TestListForCaller_ScopesByRole() {
	testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "pendiente")
	testutil.CreatePostulation(suite.T(), suite.db, suite.otherYouth.ID, suite.opportunity.ID, "pendiente")
	testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.otherOpportunity.ID, "pendiente")

	own, err := suite.service.ListForCaller(suite.ctx, identityOf(suite.youth))
	suite.Require().NoError(err)
	assert.Len(suite.T(), own, 2)
	for _, p := range own {
		assert.Equal(suite.T(), suite.youth.ID, p.UserID)
		suite.Require().NotNil(p.Opportunity)
	}

	received, err := suite.service.ListForCaller(suite.ctx, identityOf(suite.company))
	suite.Require().NoError(err)
	assert.Len(suite.T(), received, 2)
	for _, p := range received {
		assert.Equal(suite.T(), suite.opportunity.ID, p.OpportunityID)
		suite.Require().NotNil(p.User)
	}

	all, err := suite.service.ListForCaller(suite.ctx, identityOf(suite.admin))
	suite.Require().NoError(err)
	assert.Len(suite.T(), all, 3)

	_, err = suite.service.ListForCaller(suite.ctx, auth.Identity{UserID: 99, RoleID: 4})
	assert.ErrorIs(suite.T(), err, auth.ErrRoleNotAllowed)
}

func (suite *PostulationServiceTestSuite) TestSetStatus_AcceptsAnyValue() {
	postulation := testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "rechazado")

	updated, err := suite.service.SetStatus(suite.ctx, postulation.ID, "pendiente")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "pendiente", updated.Status)

	_, err = suite.service.SetStatus(suite.ctx, 9999, "aceptado")
	assert.ErrorIs(suite.T(), err, ErrPostulationNotFound)
}

func (suite *PostulationServiceTestSuite) TestOwnerLookups() {
	postulation := testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "pendiente")

	applicant, found, err := suite.service.ApplicantOf(suite.ctx, postulation.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), suite.youth.ID, applicant)

	reviewer, found, err := suite.service.ReviewerOf(suite.ctx, postulation.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), suite.company.ID, reviewer)

	_, found, err = suite.service.ReviewerOf(suite.ctx, 9999)
	suite.Require().NoError(err)
	assert.False(suite.T(), found)
}

func (suite *PostulationServiceTestSuite) TestWithdraw() {
	postulation := testutil.CreatePostulation(suite.T(), suite.db, suite.youth.ID, suite.opportunity.ID, "pendiente")

	suite.Require().NoError(suite.service.Withdraw(suite.ctx, postulation.ID))
	assert.ErrorIs(suite.T(), suite.service.Withdraw(suite.ctx, postulation.ID), ErrPostulationNotFound)
}

func TestPostulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostulationServiceTestSuite))
}
