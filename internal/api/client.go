package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/leeehvinicius/primata-console/internal/domain"
)

const listPath = "/appointments"

// Filter narrows an appointment listing. Zero values are omitted from the
// query string.
type Filter struct {
	Status        string
	ScheduledDate string // "2006-01-02"
	ClientID      string
	Page          int
	Limit         int
}

// Pagination echoes the server's paging metadata.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of appointment records.
type Page struct {
	Items      []domain.Appointment
	Pagination *Pagination
}

// AppointmentSource lists appointment records from the platform API.
// The console receives already-authorized access; the token is carried,
// never validated locally.
type AppointmentSource interface {
	ListAppointments(ctx context.Context, f Filter) (*Page, error)
}

// Config holds the client's connection parameters.
type Config struct {
	Endpoint   string
	Token      string
	TimeoutMs  int
	MaxRetries int
}

// httpClient implements AppointmentSource against the platform's REST API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates an AppointmentSource that talks to the platform API.
func NewClient(cfg Config, observer Observer) AppointmentSource {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// appointmentDTO is the wire shape of a single appointment record.
type appointmentDTO struct {
	ID     string `json:"id"`
	Client struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"client"`
	Service       string `json:"service"`
	ScheduledDate string `json:"scheduledDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}

// listResponse is the JSON body returned by GET /appointments.
type listResponse struct {
	Items      []appointmentDTO `json:"items"`
	Pagination *Pagination      `json:"pagination"`
}

func (c *httpClient) ListAppointments(ctx context.Context, f Filter) (*Page, error) {
	start := time.Now()
	requestID := uuid.NewString()

	timeoutMs := c.cfg.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = 10000
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doList(ctx, f)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				RequestID: requestID,
				Path:      listPath,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return convertPage(resp), nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		RequestID: requestID,
		Path:      listPath,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(ctx, lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpClient) doList(ctx context.Context, f Filter) (*listResponse, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.ScheduledDate != "" {
		q.Set("scheduledDate", f.ScheduledDate)
	}
	if f.ClientID != "" {
		q.Set("clientId", f.ClientID)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	u := c.cfg.Endpoint + listPath
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("platform api returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp listResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &resp, nil
}

func convertPage(resp *listResponse) *Page {
	page := &Page{Pagination: resp.Pagination}
	for _, dto := range resp.Items {
		page.Items = append(page.Items, domain.Appointment{
			ID:         dto.ID,
			ClientID:   dto.Client.ID,
			ClientName: dto.Client.Name,
			Service:    dto.Service,
			Date:       dto.ScheduledDate,
			StartTime:  dto.StartTime,
			EndTime:    dto.EndTime,
			Status:     dto.Status,
		})
	}
	return page
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "SERVER"
	}
}
