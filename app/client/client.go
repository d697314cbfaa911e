// Package client implements the consumer side of the external fees service
// REST contract. All fee state lives in that service; this client only
// honors its request/response shapes and maps failures onto the ledger
// error taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"acacia-schools/app/config"
	"acacia-schools/app/ledger"
	"acacia-schools/app/models"
)

// Client talks to the external fees service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New initializes a fees service client.
func New(cfg *config.Config, log *logrus.Logger) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.FeesAPIURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// RosterQuery holds the server-side filters GET /fees/students accepts.
// Finer criteria (amount bounds, free-text search) are applied locally by
// the ledger engine.
type RosterQuery struct {
	Class         string
	Section       string
	AcademicYear  string
	PaymentStatus string
}

func (q RosterQuery) encode() string {
	params := url.Values{}
	if q.Class != "" {
		params.Set("class", q.Class)
	}
	if q.Section != "" {
		params.Set("section", q.Section)
	}
	if q.AcademicYear != "" {
		params.Set("academicYear", q.AcademicYear)
	}
	if q.PaymentStatus != "" {
		params.Set("paymentStatus", q.PaymentStatus)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// PaymentRequest is the POST /fees/payment body.
type PaymentRequest struct {
	StudentID     string               `json:"studentId"`
	Amount        float64              `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	ReceiptNumber string               `json:"receiptNumber,omitempty"`
	Description   string               `json:"description,omitempty"`
	PaymentDate   time.Time            `json:"paymentDate"`
}

// envelope is the fees service response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// FetchRoster retrieves the working set of students with embedded fee
// records.
func (c *Client) FetchRoster(ctx context.Context, token string, q RosterQuery) ([]models.StudentFeeRecord, error) {
	data, err := c.send(ctx, http.MethodGet, "/fees/students"+q.encode(), token, nil)
	if err != nil {
		return nil, err
	}
	var roster []models.StudentFeeRecord
	if len(data) > 0 {
		if err := json.Unmarshal(data, &roster); err != nil {
			return nil, &ledger.PersistenceError{Reason: "malformed roster payload", Err: err}
		}
	}
	return roster, nil
}

// SubmitPayment appends a payment to a student's ledger upstream.
func (c *Client) SubmitPayment(ctx context.Context, token string, req PaymentRequest) error {
	_, err := c.send(ctx, http.MethodPost, "/fees/payment", token, req)
	return err
}

// UpdateStructure replaces a student's fee structure upstream.
func (c *Client) UpdateStructure(ctx context.Context, token, studentID string, s models.FeeStructure) error {
	_, err := c.send(ctx, http.MethodPut, "/fees/structure/"+url.PathEscape(studentID), token, s)
	return err
}

// FetchAnalytics retrieves the pre-aggregated roster-wide statistics.
func (c *Client) FetchAnalytics(ctx context.Context, token string) (models.Statistics, error) {
	var stats models.Statistics
	data, err := c.send(ctx, http.MethodGet, "/fees/analytics", token, nil)
	if err != nil {
		return stats, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &stats); err != nil {
			return stats, &ledger.PersistenceError{Reason: "malformed analytics payload", Err: err}
		}
	}
	return stats, nil
}

func (c *Client) send(ctx context.Context, method, path, token string, payload interface{}) (json.RawMessage, error) {
	if token == "" {
		return nil, &ledger.AuthError{Reason: "missing bearer token"}
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ledger.PersistenceError{Reason: "fees service unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ledger.PersistenceError{Reason: "failed to read response", Err: err}
	}
	c.log.Debugf("fees service %s %s -> %d", method, path, resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &ledger.AuthError{Reason: messageFrom(raw, "credential rejected by fees service")}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &ledger.PersistenceError{
			Reason: fmt.Sprintf("%s (status %d)", messageFrom(raw, "request failed"), resp.StatusCode),
		}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ledger.PersistenceError{Reason: "malformed response", Err: err}
	}
	if !env.Success {
		return nil, &ledger.PersistenceError{Reason: messageFrom(raw, "request rejected")}
	}
	return env.Data, nil
}

func messageFrom(raw []byte, fallback string) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fallback
}
