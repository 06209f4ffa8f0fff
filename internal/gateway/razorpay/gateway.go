package razorpay

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
	"time"

	"storefront/internal/pkg/config"
	orderservice "storefront/internal/service/order"
	"storefront/pkg/logger"
)

const (
	baseURL        = "https://api.razorpay.com/v1"
	requestTimeout = 15 * time.Second
	currencyINR    = "INR"
)

// Gateway ходит в Razorpay Orders API. Суммы наружу уходят в пайсах,
// внутри сервиса все деньги в целых рупиях.
type Gateway struct {
	log       gatewayLogger
	client    *http.Client
	keyID     string
	keySecret string
}

func New(log gatewayLogger, cfg *config.Razorpay) *Gateway {
	return &Gateway{
		log:       log,
		client:    &http.Client{Timeout: requestTimeout},
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (g *Gateway) CreateOrder(ctx context.Context, amount int64, receipt string) (*orderservice.GatewayOrder, error) {
	payload, err := json.Marshal(createOrderRequest{
		Amount:   amount * 100, // рупии -> пайсы
		Currency: currencyINR,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal create order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build create order request: %w", err)
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			g.log.Error("failed to close razorpay response body",
				logger.NewField("error", err),
			)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read razorpay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		g.log.With(
			logger.NewField("status", resp.StatusCode),
			logger.NewField("receipt", receipt),
		).Error("razorpay create order rejected")
		return nil, fmt.Errorf("razorpay create order: unexpected status %d", resp.StatusCode)
	}

	var orderResp createOrderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return nil, fmt.Errorf("unmarshal razorpay response: %w", err)
	}

	g.log.With(
		logger.NewField("gateway_order_id", orderResp.ID),
		logger.NewField("receipt", receipt),
	).Info("razorpay order created")

	return &orderservice.GatewayOrder{
		ID:       orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
	}, nil
}

// VerifySignature сверяет подпись чекаута: HMAC-SHA256 от "order_id|payment_id"
// на секретном ключе.
func (g *Gateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
