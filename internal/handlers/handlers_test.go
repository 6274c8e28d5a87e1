package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/middleware"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/testutil"
	"gorm.io/gorm"
)

// handlerSuite holds what every handler test suite needs.
type handlerSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = testutil.NewDB(s.T())
}

// newContext builds a request context, authenticated as user when non-nil.
func (s *handlerSuite) newContext(method, url string, body interface{}, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if user != nil {
		middleware.SetIdentity(c, auth.Identity{UserID: user.ID, RoleID: user.RoleID})
	}
	return c, w
}

func withParam(c *gin.Context, key, value string) *gin.Context {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
	return c
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}
