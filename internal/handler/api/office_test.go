//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/handler/api"
	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/tests/common/builder"
	"workspace-booking/tests/common/httptest"
	"workspace-booking/tests/common/testutil"
	commandsmock "workspace-booking/tests/mock/commands"
	queriesmock "workspace-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfficeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockOfficeQueries
	mockCommands *commandsmock.MockOfficeCommands
	handler      *api.OfficeHandler
}

func (s *OfficeHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *OfficeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOfficeQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockOfficeCommands(s.mockCtrl)
	s.handler = api.NewOfficeHandler(s.mockQueries, s.mockCommands)

	// Stand-in for the admin middleware
	adminOnly := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}

	s.router.GET("/offices", s.handler.List)
	s.router.GET("/offices/:id", s.handler.Get)
	s.router.GET("/offices/:id/quote", s.handler.Quote)
	s.router.GET("/cities", s.handler.Cities)
	s.router.GET("/duration-packages", s.handler.DurationPackages)
	s.router.POST("/admin/offices", adminOnly, s.handler.Create)
}

func (s *OfficeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfficeHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfficeHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *OfficeHandlerTestSuite) TestList() {
	views := []*queries.OfficeView{
		builder.NewOfficeBuilder().BuildView(),
		builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
			b.ID = uuid.New()
			b.Name = "Hot Desk - Bandra"
			b.Type = office.TypeDayCoworking
			b.Location = "Bandra West, Mumbai"
		}).BuildView(),
	}

	s.Run("success: passes parsed criteria and returns offices with total", func() {
		want := office.SearchCriteria{Type: office.TypeMeetingRoom, LocationQuery: "delhi", MinCapacity: 5}
		s.mockQueries.EXPECT().Search(gomock.Any(), want).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices?type=meeting-room&location=delhi&min_capacity=5", nil, "")

		var body resdto.OfficeListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Total)
		s.Require().Len(body.Offices, 2)
		s.Equal(views[0].ID, body.Offices[0].ID)
		s.Equal("Delhi", body.Offices[0].City)
		s.Equal([]string{office.AmenityWiFi, office.AmenityProjector}, body.Offices[0].Amenities)
	})

	s.Run("success: no query parameters means an empty criteria", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), office.SearchCriteria{}).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: non-numeric min_capacity is ignored", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), office.SearchCriteria{MinCapacity: 0}).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices?min_capacity=lots", nil, "")

		var body resdto.OfficeListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0, body.Total)
		s.Empty(body.Offices)
	})

	s.Run("success: empty result is an empty array, not null", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]*queries.OfficeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices?type=custom-office", nil, "")

		var raw map[string]json.RawMessage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &raw)
		s.JSONEq(`[]`, string(raw["offices"]))
	})

	s.Run("error: 500 when the catalog cannot be loaded", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("pool closed"), queries.ErrOfficeLoad)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load offices")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OfficeHandlerTestSuite) TestGet() {
	view := builder.NewOfficeBuilder().BuildView()

	s.Run("success: returns the office", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices/"+view.ID.String(), nil, "")

		var body resdto.OfficeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Name, body.Name)
		s.Equal(view.BasePricePerHour, body.BasePricePerHour)
		s.Equal(view.Capacity, body.Capacity)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the office does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrOfficeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Office not found")
	})

	s.Run("error: 500 on load failure", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("timeout"), queries.ErrOfficeLoad)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load office")
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *OfficeHandlerTestSuite) TestQuote() {
	id := uuid.New()
	url := "/offices/" + id.String() + "/quote"

	s.Run("success: time range is parsed and priced", func() {
		want := booking.NewTimeRange(booking.MustParseTimeOfDay("09:00"), booking.MustParseTimeOfDay("10:30"))
		s.mockQueries.EXPECT().Quote(gomock.Any(), id, want).Return(&queries.QuoteView{
			OfficeID:         id,
			BasePricePerHour: 500,
			DurationKind:     string(booking.KindTimeRange),
			Duration:         "09:00-10:30",
			TotalPrice:       750,
			Priceable:        true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?start=09:00&end=10:30", nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(750), body.TotalPrice)
		s.True(body.Priceable)
		s.Equal("time-range", body.DurationKind)
	})

	s.Run("success: package is passed through", func() {
		want := booking.Package{ID: booking.PackageHalfDay}
		s.mockQueries.EXPECT().Quote(gomock.Any(), id, want).Return(&queries.QuoteView{
			OfficeID: id, TotalPrice: 1750, Priceable: true, DurationKind: string(booking.KindPackage), Duration: "half-day",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?package=half-day", nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1750), body.TotalPrice)
	})

	s.Run("success: wrapped range is returned as not priceable", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), id, gomock.Any()).Return(&queries.QuoteView{
			OfficeID: id, TotalPrice: 0, Priceable: false,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?start=18:00&end=09:00", nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Zero(body.TotalPrice)
		s.False(body.Priceable)
	})

	incomplete := []struct {
		name  string
		query string
	}{
		{name: "no duration at all", query: ""},
		{name: "only a start time", query: "?start=09:00"},
		{name: "only an end time", query: "?end=17:00"},
		{name: "custom package without times", query: "?package=custom"},
	}
	for _, tc := range incomplete {
		s.Run("success: incomplete selection is quoted at zero: "+tc.name, func() {
			s.mockQueries.EXPECT().Quote(gomock.Any(), id, booking.Package{ID: booking.PackageCustom}).Return(&queries.QuoteView{
				OfficeID: id, TotalPrice: 0, Priceable: false, DurationKind: string(booking.KindPackage), Duration: "custom",
			}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil, "")

			var body resdto.QuoteResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Zero(body.TotalPrice)
			s.False(body.Priceable)
		})
	}

	cases := []struct {
		name  string
		query string
		msg   string
	}{
		{name: "malformed start time", query: "?start=9am&end=10:00", msg: "Invalid query"},
		{name: "hour out of range", query: "?start=24:00&end=10:00", msg: "Invalid query"},
		{name: "malformed package id", query: "?package=HALF%20DAY", msg: "Invalid query"},
	}
	for _, tc := range cases {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
		})
	}

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offices/xyz/quote?package=1-hour", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the office does not exist", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), id, gomock.Any()).Return(nil, queries.ErrOfficeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?package=1-hour", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Office not found")
	})
}

// ================================================================================
// TestCities / TestDurationPackages
// ================================================================================

func (s *OfficeHandlerTestSuite) TestCities() {
	s.Run("success: returns the city list", func() {
		s.mockQueries.EXPECT().Cities(gomock.Any()).Return([]string{"Bangalore", "Delhi", "Mumbai"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cities", nil, "")

		var body resdto.CitiesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"Bangalore", "Delhi", "Mumbai"}, body.Cities)
	})

	s.Run("error: 500 on load failure", func() {
		s.mockQueries.EXPECT().Cities(gomock.Any()).Return(nil, queries.ErrOfficeLoad).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cities", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load cities")
	})
}

func (s *OfficeHandlerTestSuite) TestDurationPackages() {
	s.mockQueries.EXPECT().DurationPackages(gomock.Any()).Return([]*queries.DurationPackageView{
		{ID: "1-hour", Name: "1 Hour", Hours: 1, Multiplier: 1, Description: "Quick meeting"},
		{ID: "half-day", Name: "Half Day", Hours: 4, Multiplier: 3.5},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/duration-packages", nil, "")

	var body struct {
		Packages []resdto.DurationPackageResponse `json:"packages"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Packages, 2)
	s.Equal("half-day", body.Packages[1].ID)
	s.InDelta(3.5, body.Packages[1].Multiplier, 1e-9)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OfficeHandlerTestSuite) TestCreate() {
	url := "/admin/offices"
	reqBody := builder.NewOfficeBuilder().BuildCreateRequestDTO()
	view := builder.NewOfficeBuilder().BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToParams()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var body resdto.OfficeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/offices/" + view.ID.String()})
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing name", mutate: testutil.Field("name", nil)},
		{name: "unknown type", mutate: testutil.Field("type", "broom-closet")},
		{name: "type all is not storable", mutate: testutil.Field("type", "all")},
		{name: "zero price", mutate: testutil.Field("base_price_per_hour", 0)},
		{name: "zero capacity", mutate: testutil.Field("capacity", 0)},
		{name: "latitude out of range", mutate: testutil.Field("latitude", 91)},
		{name: "unknown availability", mutate: testutil.Field("availability_status", "maybe")},
	}
	for _, tc := range validation {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "admin-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 422 on domain validation with the domain message as detail", func() {
		domainErr := errs.Mark(errs.Wrap(office.ErrEmptyLocation, "create office"), commands.ErrDomainValidation)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domainErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid office")

		var body struct {
			Detail string `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(office.ErrEmptyLocation.Error(), body.Detail)
	})

	s.Run("error: 409 on duplicate office", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDuplicateOffice).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Office already exists")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Create office failed")
	})
}
