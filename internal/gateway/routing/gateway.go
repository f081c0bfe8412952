package routing

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

	"dispatch/internal/entities"
	"dispatch/internal/gateway"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "routing-oracle"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusError сохраняет HTTP код ответа для решения о ретрае.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "routing oracle responded " + strconv.Itoa(e.code)
}

// Gateway это клиент матрицы маршрутов: одна точка отправления,
// до N точек назначения одним запросом.
type Gateway struct {
	client  httpDoer
	retrier retrier
	baseURL string
	apiKey  string
}

func New(client httpDoer, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type pointPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type matrixRequest struct {
	Origin       pointPayload   `json:"origin"`
	Destinations []pointPayload `json:"destinations"`
	DepartAt     time.Time      `json:"depart_at"`
}

type legPayload struct {
	Status   string `json:"status"`
	Address  string `json:"address"`
	Distance int64  `json:"distance_meters"`
	Duration int64  `json:"duration_seconds"`
}

type matrixResponse struct {
	OriginAddress string       `json:"origin_address"`
	Legs          []legPayload `json:"legs"`
}

func (g *Gateway) Routes(ctx context.Context, origin entities.Point, destinations []entities.Point, departAt time.Time) (entities.RouteMatrix, error) {
	destPayloads := make([]pointPayload, 0, len(destinations))
	for _, d := range destinations {
		destPayloads = append(destPayloads, pointPayload{Lat: d.Lat, Lng: d.Lng})
	}

	body, err := json.Marshal(matrixRequest{
		Origin:       pointPayload{Lat: origin.Lat, Lng: origin.Lng},
		Destinations: destPayloads,
		DepartAt:     departAt,
	})
	if err != nil {
		return entities.RouteMatrix{}, fmt.Errorf("gateway routing, marshal request: %w", err)
	}

	var response matrixResponse
	err = g.executeWithMetrics(ctx, "Routes", func(ctx context.Context) error {
		return g.doRequest(ctx, body, &response)
	})
	if err != nil {
		return entities.RouteMatrix{}, fmt.Errorf("gateway routing, get matrix: %w", err)
	}

	return toDomain(&response), nil
}

func (g *Gateway) doRequest(ctx context.Context, body []byte, out *matrixResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/matrix", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// 429 и 5xx ретраятся, клиентские ошибки нет.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	// сетевые ошибки и таймауты
	return !errors.Is(err, context.Canceled)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	gateway.RequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "network_error"
}
