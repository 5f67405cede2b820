package bonusapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/config"
	applog "github.com/PasqualeAiello/io-app/utils/log"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	activationsPath = "/bonus/vacanze/activations"
	requestIDHeader = "X-Request-Id"
	userAgent       = "io-app-cli/1.0"
)

var ErrEmptyResponse = errors.New("empty response body")

func l() *applog.AppLogger {
	return applog.L().With("bonusapi", "client")
}

// APIError is returned for any status the activation endpoints do not expect.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// StartOutcome is the backend answer to an activation request.
// Status is PROGRESS when the request was accepted and must be polled
// through AcceptedID.
type StartOutcome struct {
	Status     activation.Status
	Bonus      *activation.Bonus
	AcceptedID string
}

// Activator is the part of the backend the activation task talks to.
type Activator interface {
	StartActivation(ctx context.Context) (StartOutcome, error)
	// GetActivation returns the bonus once active; done is false while
	// the backend is still processing.
	GetActivation(ctx context.Context, id string) (bonus *activation.Bonus, done bool, err error)
}

type bonusDTO struct {
	ID                  string    `json:"id"`
	Code                string    `json:"code"`
	ApplicantFiscalCode string    `json:"applicant_fiscal_code"`
	Status              string    `json:"status"`
	MaxAmount           int64     `json:"max_amount"`
	MaxTaxBenefit       int64     `json:"max_tax_benefit"`
	CreatedAt           time.Time `json:"created_at"`
}

func (d bonusDTO) toBonus() *activation.Bonus {
	return &activation.Bonus{
		ID:                  d.ID,
		Code:                d.Code,
		ApplicantFiscalCode: d.ApplicantFiscalCode,
		Status:              d.Status,
		MaxAmount:           d.MaxAmount,
		MaxTaxBenefit:       d.MaxTaxBenefit,
		CreatedAt:           d.CreatedAt,
	}
}

type acceptedDTO struct {
	ID string `json:"id"`
}

// Client talks to the bonus backend over REST. Only reads are retried: a
// repeated start request would come back as a conflict.
type Client struct {
	resty   *resty.Client
	polling *resty.Client
}

func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		resty:   newResty(cfg, 0),
		polling: newResty(cfg, cfg.RetryCount),
	}
}

func newResty(cfg config.APIConfig, retries int) *resty.Client {
	r := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if cfg.Token != "" {
		r.SetAuthToken(cfg.Token)
	}
	return r
}

func request(ctx context.Context, r *resty.Client) *resty.Request {
	return r.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString())
}

func (c *Client) StartActivation(ctx context.Context) (StartOutcome, error) {
	resp, err := request(ctx, c.resty).Post(activationsPath)
	if err != nil {
		return StartOutcome{}, fmt.Errorf("start activation: %w", err)
	}
	l().Debugf("start activation answered %d", resp.StatusCode())

	switch resp.StatusCode() {
	case http.StatusCreated:
		var dto bonusDTO
		if err := decode(resp.Body(), &dto); err != nil {
			return StartOutcome{}, fmt.Errorf("start activation: %w", err)
		}
		return StartOutcome{Status: activation.StatusSuccess, Bonus: dto.toBonus()}, nil
	case http.StatusAccepted:
		var dto acceptedDTO
		if err := decode(resp.Body(), &dto); err != nil {
			return StartOutcome{}, fmt.Errorf("start activation: %w", err)
		}
		return StartOutcome{Status: activation.StatusProgress, AcceptedID: dto.ID}, nil
	case http.StatusConflict:
		return StartOutcome{Status: activation.StatusExists}, nil
	case http.StatusForbidden:
		return StartOutcome{Status: activation.StatusEligibilityExpired}, nil
	default:
		return StartOutcome{}, &APIError{Op: "start activation", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
}

func (c *Client) GetActivation(ctx context.Context, id string) (*activation.Bonus, bool, error) {
	resp, err := request(ctx, c.polling).
		SetPathParam("id", id).
		Get(activationsPath + "/{id}")
	if err != nil {
		return nil, false, fmt.Errorf("get activation %s: %w", id, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var dto bonusDTO
		if err := decode(resp.Body(), &dto); err != nil {
			return nil, false, fmt.Errorf("get activation %s: %w", id, err)
		}
		return dto.toBonus(), true, nil
	case http.StatusAccepted, http.StatusNotFound:
		return nil, false, nil
	default:
		return nil, false, &APIError{Op: "get activation", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
}

func decode(body []byte, v any) error {
	if len(body) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return nil
}
