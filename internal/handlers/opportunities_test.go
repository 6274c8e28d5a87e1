package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/services"
	"github.com/yukikurage/empleo-joven-api/internal/testutil"
)

// OpportunityHandlerTestSuite defines the test suite for OpportunityHandler
type OpportunityHandlerTestSuite struct {
	handlerSuite
	handler *OpportunityHandler
	company *models.User
}

func (suite *OpportunityHandlerTestSuite) SetupTest() {
	suite.handlerSuite.SetupTest()
	suite.handler = NewOpportunityHandler(services.NewOpportunityService(repository.NewOpportunityRepository(suite.db)))
	suite.company = testutil.CreateUser(suite.T(), suite.db, "acme", models.RoleCompany)
}

func (suite *OpportunityHandlerTestSuite) TestCreate_Success() {
	category := testutil.CreateCategory(suite.T(), suite.db, "Tecnología")

	c, w := suite.newContext("POST", "/oportunidades", map[string]interface{}{
		"titulo":         "Desarrollador junior",
		"descripcion":    "Backend en Go",
		"ubicacion":      "Lima",
		"tipo_categoria": category.ID,
		"fecha_inicio":   "2025-04-01",
		"fecha_fin":      "2025-09-30",
	}, suite.company)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var response map[string]interface{}
	suite.decode(w, &response)
	assert.Equal(suite.T(), "Desarrollador junior", response["titulo"])
	assert.Equal(suite.T(), float64(suite.company.ID), response["publicada_por"])
	assert.Equal(suite.T(), "Tecnología", response["nombre_categoria"])
	assert.Equal(suite.T(), "2025-04-01", response["fecha_inicio"])
}

func (suite *OpportunityHandlerTestSuite) TestCreate_InvalidDate() {
	c, w := suite.newContext("POST", "/oportunidades", map[string]interface{}{
		"titulo":       "Desarrollador junior",
		"fecha_inicio": "mañana",
	}, suite.company)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestCreate_EmptyDate() {
	c, w := suite.newContext("POST", "/oportunidades", map[string]interface{}{
		"titulo":       "Desarrollador junior",
		"fecha_inicio": "",
	}, suite.company)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var count int64
	suite.db.Model(&models.Opportunity{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *OpportunityHandlerTestSuite) TestCreate_NullDate() {
	c, w := suite.newContext("POST", "/oportunidades", map[string]interface{}{
		"titulo":       "Desarrollador junior",
		"fecha_inicio": nil,
	}, suite.company)

	suite.handler.Create(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var response map[string]interface{}
	suite.decode(w, &response)
	assert.Nil(suite.T(), response["fecha_inicio"])
}

func (suite *OpportunityHandlerTestSuite) TestList_CategoryFilter() {
	tech := testutil.CreateCategory(suite.T(), suite.db, "Tecnología")
	sales := testutil.CreateCategory(suite.T(), suite.db, "Ventas")
	testutil.CreateOpportunity(suite.T(), suite.db, "Backend", suite.company.ID, &tech.ID)
	testutil.CreateOpportunity(suite.T(), suite.db, "Vendedor", suite.company.ID, &sales.ID)

	c, w := suite.newContext("GET", "/oportunidades?categoria=%20"+strconv.FormatUint(tech.ID, 10)+"%20", nil, nil)
	suite.handler.List(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response []map[string]interface{}
	suite.decode(w, &response)
	suite.Require().Len(response, 1)
	assert.Equal(suite.T(), "Backend", response[0]["titulo"])
	assert.Equal(suite.T(), "Tecnología", response[0]["nombre_categoria"])

	c, w = suite.newContext("GET", "/oportunidades?categoria=abc", nil, nil)
	suite.handler.List(c)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OpportunityHandlerTestSuite) TestListMine() {
	other := testutil.CreateUser(suite.T(), suite.db, "globex", models.RoleCompany)
	testutil.CreateOpportunity(suite.T(), suite.db, "Mía", suite.company.ID, nil)
	testutil.CreateOpportunity(suite.T(), suite.db, "Ajena", other.ID, nil)

	c, w := suite.newContext("GET", "/oportunidades/mias", nil, suite.company)
	suite.handler.ListMine(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response []map[string]interface{}
	suite.decode(w, &response)
	suite.Require().Len(response, 1)
	assert.Equal(suite.T(), "Mía", response[0]["titulo"])
}

func (suite *OpportunityHandlerTestSuite) TestGet() {
	opportunity := testutil.CreateOpportunity(suite.T(), suite.db, "Backend", suite.company.ID, nil)
	id := strconv.FormatUint(opportunity.ID, 10)

	c, w := suite.newContext("GET", "/oportunidades/"+id, nil, nil)
	suite.handler.Get(withParam(c, "id_oportunidad", id))
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	c, w = suite.newContext("GET", "/oportunidades/9999", nil, nil)
	suite.handler.Get(withParam(c, "id_oportunidad", "9999"))
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	var response map[string]interface{}
	suite.decode(w, &response)
	assert.Equal(suite.T(), "Oportunidad no encontrada", response["message"])
}

func (suite *OpportunityHandlerTestSuite) TestUpdate() {
	opportunity := testutil.CreateOpportunity(suite.T(), suite.db, "Backend", suite.company.ID, nil)
	id := strconv.FormatUint(opportunity.ID, 10)

	c, w := suite.newContext("PUT", "/oportunidades/"+id, map[string]interface{}{
		"titulo":    "Backend senior",
		"ubicacion": "Remoto",
	}, suite.company)
	suite.handler.Update(withParam(c, "id_oportunidad", id))

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response map[string]interface{}
	suite.decode(w, &response)
	assert.Equal(suite.T(), "Backend senior", response["titulo"])
	assert.Equal(suite.T(), "Remoto", response["ubicacion"])
}

func TestOpportunityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OpportunityHandlerTestSuite))
}
