//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-scheduler/internal/domain/conversation"
	"salon-scheduler/internal/handler/api"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/tests/common/httptest"
	commandsmock "salon-scheduler/tests/mock/commands"
	queriesmock "salon-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockSessionQueries
	mockCommands *commandsmock.MockSessionCommands
	handler      *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockQueries, s.mockCommands)

	s.router.GET("/sessions/:id/state", s.handler.GetState)
	s.router.PATCH("/sessions/:id/state", s.handler.UpdateState)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestGetState() {
	s.mockQueries.EXPECT().GetState(gomock.Any(), "s1").Return(&conversation.State{
		Service: "Skin Fade",
		Date:    "2026-09-05",
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/s1/state", nil, "")

	var resp resdto.SessionStateResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("Skin Fade", resp.Service)
	s.Equal("2026-09-05", resp.Date)
	s.False(resp.Confirmed)
}

func (s *SessionHandlerTestSuite) TestUpdateState() {
	s.Run("applies the patch", func() {
		s.mockCommands.EXPECT().
			UpdateState(gomock.Any(), "s1", map[string]any{"name": "Dana"}).
			Return(&conversation.State{Name: "Dana"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/sessions/s1/state",
			map[string]any{"patch": map[string]any{"name": "Dana"}}, "")

		var resp resdto.SessionStateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Dana", resp.Name)
	})

	s.Run("missing patch", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/sessions/s1/state",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown slot", func() {
		s.mockCommands.EXPECT().
			UpdateState(gomock.Any(), "s1", gomock.Any()).
			Return(nil, errs.Mark(errs.New(`no slot named "color"`), commands.ErrUnknownSlot))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/sessions/s1/state",
			map[string]any{"patch": map[string]any{"color": "blue"}}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown dialog slot")
	})

	s.Run("invalid slot value", func() {
		s.mockCommands.EXPECT().
			UpdateState(gomock.Any(), "s1", gomock.Any()).
			Return(nil, commands.ErrInvalidSlotValue)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/sessions/s1/state",
			map[string]any{"patch": map[string]any{"confirmed": "yes"}}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid dialog slot value")
	})
}
