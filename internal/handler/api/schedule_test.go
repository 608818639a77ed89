//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/handler/api"
	resdto "salon-scheduler/internal/handler/dto/response"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/tests/common/httptest"
	queriesmock "salon-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockScheduleQueries
	handler     *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockQueries, config.NewTestConfig())

	s.router.GET("/now", s.handler.GetNow)
	s.router.GET("/hours", s.handler.GetHours)
	s.router.GET("/availability", s.handler.CheckAvailability)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestGetNow() {
	s.mockQueries.EXPECT().GetNow(gomock.Any()).Return(&queries.NowView{
		Timezone: "America/New_York",
		ISO:      "2026-09-05T08:00:00-04:00",
		Date:     "2026-09-05",
		Time:     "08:00",
		Weekday:  "Sat",
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/now", nil, "")

	var resp resdto.NowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("2026-09-05", resp.Date)
	s.Equal("Sat", resp.Weekday)
}

func (s *ScheduleHandlerTestSuite) TestGetHours() {
	s.Run("open day", func() {
		s.mockQueries.EXPECT().GetHours(gomock.Any(), "saturday").Return(&queries.HoursView{
			Date:    "2026-09-05",
			Weekday: "Sat",
			Ranges:  []string{"10:00-14:00"},
			Opening: "10:00",
			Closing: "14:00",
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hours?date=saturday", nil, "")

		var resp resdto.HoursResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal([]string{"10:00-14:00"}, resp.Ranges)
		s.False(resp.Closed)
	})

	s.Run("unintelligible date", func() {
		s.mockQueries.EXPECT().GetHours(gomock.Any(), "someday").Return(nil, schedule.ErrDateNotUnderstood)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hours?date=someday", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Could not understand that date")
	})
}

func (s *ScheduleHandlerTestSuite) TestCheckAvailability() {
	s.Run("passes query params through", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), queries.AvailabilityParams{
				DatePhrase: "saturday",
				Service:    "Skin Fade",
				Limit:      3,
				Daypart:    "afternoon",
			}).
			Return(&queries.AvailabilityView{
				Date:            "2026-09-05",
				Weekday:         "Sat",
				Service:         "Skin Fade",
				DurationMinutes: 45,
				Available:       []string{"12:00", "12:15", "12:30"},
				TotalAvailable:  7,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?date=saturday&service=Skin+Fade&limit=3&daypart=afternoon", nil, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(3, len(resp.Available))
		s.Equal(7, resp.TotalAvailable)
		s.Equal(45, resp.DurationMinutes)
	})

	s.Run("defaults the limit when absent", func() {
		cfg := config.NewTestConfig()
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), queries.AvailabilityParams{
				DatePhrase: "saturday",
				Limit:      cfg.Booking.DefaultLimit,
			}).
			Return(&queries.AvailabilityView{Date: "2026-09-05", Available: []string{}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=saturday", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("non numeric limit", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?limit=lots", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "limit must be an integer")
	})

	s.Run("unknown daypart", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUnknownDaypart)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?daypart=brunch", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Unknown daypart")
	})

	s.Run("unintelligible date", func() {
		s.mockQueries.EXPECT().
			CheckAvailability(gomock.Any(), gomock.Any()).
			Return(nil, schedule.ErrDateNotUnderstood)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=someday", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Could not understand that date")
	})
}
