//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"famboard/internal/domain/present"
	"famboard/internal/handler/api"
	resdto "famboard/internal/handler/dto/response"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/queries"
	"famboard/tests/common/builder"
	"famboard/tests/common/httptest"
	"famboard/tests/common/testutil"
	commandsmock "famboard/tests/mock/commands"
	queriesmock "famboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const authedUserID int64 = 2

type PresentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPresentCommands
	mockQueries  *queriesmock.MockPresentQueries
	handler      *api.PresentHandler
}

func (s *PresentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPresentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPresentQueries(s.mockCtrl)
	s.handler = api.NewPresentHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", authedUserID)
		c.Next()
	}

	s.router.POST("/presents", authMiddleware, s.handler.CreatePresent)
	s.router.GET("/presents", authMiddleware, s.handler.ListOthers)
	s.router.GET("/presents/mine", authMiddleware, s.handler.ListMine)
	s.router.PATCH("/presents/:id/state", authMiddleware, s.handler.TransitionPresent)
	s.router.PATCH("/presents/:id/bought", authMiddleware, s.handler.SetBought)
	s.router.DELETE("/presents/:id", authMiddleware, s.handler.DeletePresent)
}

func (s *PresentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPresentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PresentHandlerTestSuite))
}

type testCasePresent struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreatePresent
// ================================================================================

func (s *PresentHandlerTestSuite) TestCreatePresent() {
	url := "/presents"

	reqBody := builder.NewPresentBuilder().BuildCreateRequestDTO()
	returnView := builder.NewPresentBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), authedUserID, gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PresentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Name, body.Name)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCasePresent{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "name wrong type", mutate: testutil.Field("name", 123), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := builder.NewPresentBuilder().BuildCreateRequestDTO()
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), authedUserID, gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)
		body := builder.NewPresentBuilder().With(func(b *builder.PresentBuilder) {
			b.Name = strings.Repeat("a", 51)
		}).BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestTransitionPresent
// ================================================================================

func (s *PresentHandlerTestSuite) TestTransitionPresent() {
	url := "/presents/1/state"
	returnView := builder.NewPresentBuilder().WithState(present.StateReserved, func() *int64 { v := authedUserID; return &v }()).BuildView()

	s.Run("success: returns 200 with the fresh view", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), int64(1), authedUserID, present.StateReserved).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"toState": 1}, "bearer-token")

		var body resdto.PresentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int(present.StateReserved), body.State)
	})

	s.Run("error: 400 on malformed target state", func() {
		cases := []testCasePresent{
			{name: "missing toState", mutate: testutil.Field("toState", nil), expectCode: http.StatusBadRequest},
			{name: "out of range toState", mutate: testutil.Field("toState", 3), expectCode: http.StatusBadRequest},
			{name: "wrong type toState", mutate: testutil.Field("toState", "reserved"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := map[string]any{"toState": 1}
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 400 on non-numeric present id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/presents/abc/state", map[string]any{"toState": 1}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error mapping from the command layer", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown present", err: errs.ErrPresentNotFound, expectCode: http.StatusNotFound},
			{name: "own present", err: errs.ErrOwnPresentAction, expectCode: http.StatusForbidden},
			{name: "invalid move", err: errs.ErrInvalidTransition, expectCode: http.StatusConflict},
			{name: "lost race", err: errs.ErrTransitionConflict, expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transition(gomock.Any(), int64(1), authedUserID, present.StateReserved).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"toState": 1}, "bearer-token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestSetBought
// ================================================================================

func (s *PresentHandlerTestSuite) TestSetBought() {
	url := "/presents/1/bought"

	s.Run("success: returns 200", func() {
		view := builder.NewPresentBuilder().BuildView()
		view.Bought = true
		s.mockCommands.EXPECT().SetBought(gomock.Any(), int64(1), authedUserID, true).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"bought": true}, "bearer-token")

		var body resdto.PresentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Bought)
	})

	s.Run("error: 400 when bought flag is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 403 when not the reserver", func() {
		s.mockCommands.EXPECT().SetBought(gomock.Any(), int64(1), authedUserID, true).
			Return(nil, errs.ErrBoughtNotReserver).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"bought": true}, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestListOthers / TestListMine
// ================================================================================

func (s *PresentHandlerTestSuite) TestListOthers() {
	s.Run("success: returns full views for others' presents", func() {
		view := builder.NewPresentBuilder().BuildView()
		s.mockQueries.EXPECT().ListOthers(gomock.Any(), authedUserID).
			Return([]*queries.PresentView{view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/presents", nil, "bearer-token")

		var body []resdto.PresentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(view.OwnerName, body[0].OwnerName)
	})
}

func (s *PresentHandlerTestSuite) TestListMine() {
	s.Run("success: own views never expose reserver or bought", func() {
		own := &queries.OwnPresentView{ID: 1, Name: "Teapot", State: int(present.StateReserved)}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), authedUserID).
			Return([]*queries.OwnPresentView{own}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/presents/mine", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.NotContains(body[0], "reservedBy")
		s.NotContains(body[0], "bought")
		s.NotContains(body[0], "ownerName")
	})
}

func (s *PresentHandlerTestSuite) TestDeletePresent() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), authedUserID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/presents/1", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when not the owner", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1), authedUserID).
			Return(errs.ErrPresentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/presents/1", nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
