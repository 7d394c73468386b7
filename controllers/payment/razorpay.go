package paymentcontroller

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultRazorpayAPIURL = "https://api.razorpay.com/v1"

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	APIURL    string
}

// RazorpayConfigFromEnv reads the key pair and endpoint from the environment.
func RazorpayConfigFromEnv() (RazorpayConfig, error) {
	cfg := RazorpayConfig{
		KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		APIURL:    os.Getenv("RAZORPAY_API_URL"),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultRazorpayAPIURL
	}
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return RazorpayConfig{}, fmt.Errorf("razorpay configuration missing")
	}
	return cfg, nil
}

// RazorpayGateway talks to the Razorpay Orders API over signed JSON.
type RazorpayGateway struct {
	cfg    RazorpayConfig
	client *http.Client
	logger *zap.Logger
}

func NewRazorpayGateway(cfg RazorpayConfig, logger *zap.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

type razorpayOrderResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateSession creates a Razorpay order for the amount (converted to paise)
// and returns its id.
func (g *RazorpayGateway) CreateSession(ctx context.Context, amount decimal.Decimal, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":          amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency":        g.Currency(),
		"receipt":         receipt,
		"payment_capture": 1,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach razorpay: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var orderResp razorpayOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return "", fmt.Errorf("failed to parse razorpay response: %w", err)
	}
	if orderResp.Error != nil {
		return "", fmt.Errorf("razorpay error: %s", orderResp.Error.Description)
	}
	if orderResp.ID == "" {
		return "", fmt.Errorf("razorpay returned empty order id")
	}

	g.logger.Info("razorpay session created",
		zap.String("session_id", orderResp.ID),
		zap.String("receipt", receipt),
	)
	return orderResp.ID, nil
}

// VerifySignature checks the HMAC-SHA256 of "session_id|payment_id" against
// the provided signature in constant time.
func (g *RazorpayGateway) VerifySignature(sessionID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.cfg.KeySecret))
	mac.Write([]byte(sessionID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *RazorpayGateway) Currency() string { return "INR" }
func (g *RazorpayGateway) KeyID() string    { return g.cfg.KeyID }
