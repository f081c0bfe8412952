package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"dispatch/internal/gateway"
)

const (
	serviceName = "payment-gateway"
)

var ErrChargeDeclined = errors.New("charge declined by payment provider")

// Gateway это клиент платежного провайдера. Charge не ретраится:
// повтор не-идемпотентного списания может снять деньги дважды.
type Gateway struct {
	client  httpDoer
	baseURL string
	apiKey  string
}

func New(client httpDoer, baseURL, apiKey string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type chargeRequest struct {
	Reference string `json:"reference"`
	AuthToken string `json:"auth_token"`
	Amount    string `json:"amount"`
}

type chargeResponse struct {
	SettlementRef string `json:"settlement_ref"`
	Declined      bool   `json:"declined"`
	Reason        string `json:"reason,omitempty"`
}

func (g *Gateway) Charge(ctx context.Context, reference, authToken string, amount decimal.Decimal) (string, error) {
	body, err := json.Marshal(chargeRequest{
		Reference: reference,
		AuthToken: authToken,
		Amount:    amount.StringFixed(2),
	})
	if err != nil {
		return "", fmt.Errorf("gateway payment, marshal charge: %w", err)
	}

	start := time.Now()
	settlementRef, statusCode, err := g.doCharge(ctx, body)
	gateway.RequestDuration.WithLabelValues(serviceName, "Charge", strconv.Itoa(statusCode)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("gateway payment, charge %s: %w", reference, err)
	}
	return settlementRef, nil
}

func (g *Gateway) doCharge(ctx context.Context, body []byte) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusPaymentRequired {
		return "", resp.StatusCode, ErrChargeDeclined
	}
	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, fmt.Errorf("payment provider responded %d", resp.StatusCode)
	}

	var response chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	if response.Declined {
		if response.Reason != "" {
			return "", resp.StatusCode, fmt.Errorf("%w: %s", ErrChargeDeclined, response.Reason)
		}
		return "", resp.StatusCode, ErrChargeDeclined
	}
	return response.SettlementRef, resp.StatusCode, nil
}
