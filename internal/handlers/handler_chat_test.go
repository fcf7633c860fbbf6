package handlers_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/handlers"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/Max-Ceph/zaman-hacknu/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock ChatService ---
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Respond(ctx context.Context, userID, message string) dto.ChatResponse {
	args := m.Called(ctx, userID, message)
	return args.Get(0).(dto.ChatResponse)
}

type ChatHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockChatSvc *MockChatService
	cfg         *config.Config
}

func (suite *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		SessionCookieName: "session",
	}
	suite.mockChatSvc = new(MockChatService)

	container := &portssvc.ServiceContainer{Chat: suite.mockChatSvc}

	rate, err := limiter.NewRateFromFormatted("100-M")
	suite.Require().NoError(err)
	ipLimiter := limiter.New(memory.NewStore(), rate)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(suite.router, suite.cfg, container, ipLimiter, ipLimiter)
}

func (suite *ChatHandlerTestSuite) sessionCookie(userID string) *http.Cookie {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.cfg.JWTSecret))
	suite.Require().NoError(err)
	return &http.Cookie{Name: suite.cfg.SessionCookieName, Value: token}
}

func (suite *ChatHandlerTestSuite) postChat(body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ChatHandlerTestSuite) TestChat_RequiresSession() {
	w := suite.postChat(`{"message":"привет"}`, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockChatSvc.AssertNotCalled(suite.T(), "Respond", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChatHandlerTestSuite) TestChat_EmptyMessageStill200() {
	w := suite.postChat(`{"message":"   "}`, suite.sessionCookie("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChatResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Пожалуйста, напишите что-нибудь.", resp.Reply)
	suite.False(resp.OpenBankSite)
	suite.mockChatSvc.AssertNotCalled(suite.T(), "Respond", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChatHandlerTestSuite) TestChat_DelegatesToService() {
	bankURL := "https://www.zamanbank.kz/"
	suite.mockChatSvc.On("Respond", mock.Anything, "user-1", "хочу открыть карту").
		Return(dto.ChatResponse{
			Reply:        "Сейчас я перенаправлю вас на сайт Zaman Bank, где вы сможете оформить заявку!",
			OpenBankSite: true,
			BankURL:      &bankURL,
		}).Once()

	w := suite.postChat(`{"message":"хочу открыть карту"}`, suite.sessionCookie("user-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChatResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.OpenBankSite)
	suite.Require().NotNil(resp.BankURL)
	suite.Equal(bankURL, *resp.BankURL)
	suite.mockChatSvc.AssertExpectations(suite.T())
}

func TestChatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}
