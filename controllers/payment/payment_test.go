package paymentcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/harikumar-dev/store-products-api/models"
	"github.com/harikumar-dev/store-products-api/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stubGateway stands in for the external collaborator.
type stubGateway struct {
	sessionID   string
	createErr   error
	verifyOK    bool
	lastReceipt string
}

func (g *stubGateway) CreateSession(_ context.Context, _ decimal.Decimal, receipt string) (string, error) {
	g.lastReceipt = receipt
	return g.sessionID, g.createErr
}

func (g *stubGateway) VerifySignature(_, _, _ string) bool { return g.verifyOK }
func (g *stubGateway) Currency() string                    { return "INR" }
func (g *stubGateway) KeyID() string                       { return "rzp_test_key" }

type PaymentSuite struct {
	suite.Suite
	db      *gorm.DB
	logger  *zap.Logger
	gateway *stubGateway
	router  *gin.Engine
	user    models.User
}

func TestPaymentSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(PaymentSuite))
}

func (s *PaymentSuite) SetupSuite() {
	s.db = testutil.StartPostgres(s.T())
	s.logger = zap.NewNop()
}

func (s *PaymentSuite) SetupTest() {
	testutil.Truncate(s.T(), s.db)
	s.user = models.User{Username: "johnsmith", Email: "johnsmith@example.com"}
	s.Require().NoError(s.db.Create(&s.user).Error)

	s.gateway = &stubGateway{sessionID: "order_stub123", verifyOK: true}
	gateways := map[string]Gateway{"razorpay": s.gateway}

	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.POST("/payments/:gateway/create/", CreatePayment(s.db, s.logger, gateways))
	s.router.POST("/payments/:gateway/verify/", VerifyPayment(s.db, s.logger, gateways))
}

func (s *PaymentSuite) createOrder() models.Order {
	order := models.Order{
		UserID:        s.user.ID,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		TotalAmount:   decimal.RequireFromString("45.00"),
	}
	s.Require().NoError(s.db.Create(&order).Error)
	return order
}

func (s *PaymentSuite) postJSON(path string, payload gin.H) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PaymentSuite) TestCreatePayment() {
	order := s.createOrder()

	w := s.postJSON("/payments/razorpay/create/", gin.H{
		"order_id": order.ID,
		"amount":   "45.00",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("order_stub123", resp["gateway_order_id"])
	s.Equal("INR", resp["currency"])
	s.Equal("rzp_test_key", resp["key"])
	s.Contains(s.gateway.lastReceipt, fmt.Sprintf("order_%d-", order.ID))

	var stored models.Order
	s.Require().NoError(s.db.First(&stored, order.ID).Error)
	s.Require().NotNil(stored.PaymentID)
	s.Equal("order_stub123", *stored.PaymentID)
}

func (s *PaymentSuite) TestCreatePaymentValidation() {
	order := s.createOrder()

	w := s.postJSON("/payments/razorpay/create/", gin.H{"amount": "45.00"})
	s.Equal(http.StatusBadRequest, w.Code, "order_id is required")

	w = s.postJSON("/payments/razorpay/create/", gin.H{"order_id": order.ID})
	s.Equal(http.StatusBadRequest, w.Code, "amount is required")
}

func (s *PaymentSuite) TestCreatePaymentOrderNotFound() {
	w := s.postJSON("/payments/razorpay/create/", gin.H{
		"order_id": 9999,
		"amount":   "45.00",
	})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PaymentSuite) TestCreatePaymentUnknownGateway() {
	order := s.createOrder()
	w := s.postJSON("/payments/stripe/create/", gin.H{
		"order_id": order.ID,
		"amount":   "45.00",
	})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PaymentSuite) TestCreatePaymentGatewayUnavailable() {
	order := s.createOrder()
	s.gateway.createErr = errors.New("connection refused")

	w := s.postJSON("/payments/razorpay/create/", gin.H{
		"order_id": order.ID,
		"amount":   "45.00",
	})
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "connection refused", "gateway detail stays opaque")
}

func (s *PaymentSuite) TestVerifyPayment() {
	order := s.createOrder()

	w := s.postJSON("/payments/razorpay/verify/", gin.H{
		"razorpay_payment_id": "pay_xyz",
		"razorpay_order_id":   "order_stub123",
		"razorpay_signature":  "deadbeef",
		"order_id":            order.ID,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var stored models.Order
	s.Require().NoError(s.db.First(&stored, order.ID).Error)
	s.Equal(models.OrderStatusConfirmed, stored.Status)
	s.Equal(models.PaymentStatusCompleted, stored.PaymentStatus)
}

func (s *PaymentSuite) TestVerifyPaymentBadSignature() {
	order := s.createOrder()
	s.gateway.verifyOK = false

	w := s.postJSON("/payments/razorpay/verify/", gin.H{
		"razorpay_payment_id": "pay_xyz",
		"razorpay_order_id":   "order_stub123",
		"razorpay_signature":  "tampered",
		"order_id":            order.ID,
	})
	s.Equal(http.StatusBadRequest, w.Code)

	// Order state is left untouched.
	var stored models.Order
	s.Require().NoError(s.db.First(&stored, order.ID).Error)
	s.Equal(models.OrderStatusPending, stored.Status)
	s.Equal(models.PaymentStatusPending, stored.PaymentStatus)
}

func (s *PaymentSuite) TestVerifyPaymentMissingFields() {
	w := s.postJSON("/payments/razorpay/verify/", gin.H{
		"razorpay_payment_id": "pay_xyz",
		"order_id":            1,
	})
	s.Equal(http.StatusBadRequest, w.Code)
}
