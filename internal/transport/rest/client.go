package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	pathResetGame      = "/reset_game"
	pathSetGameOptions = "/set_game_options"
	pathMakeMove       = "/make_move"
	pathAIVsAI         = "/ai_vs_ai"

	maxBodySize = 1 << 20
)

var (
	tracer = otel.Tracer("rest")
	meter  = otel.Meter("rest")
)

// A repeated AI round plays a second game and scores it again, so it is only
// retried when the request never left the client.
var notReplayable = map[string]bool{
	pathAIVsAI: true,
}

type Config struct {
	BaseURL         string
	Timeout         time.Duration
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Client talks to the game service. The service owns all game state; the
// client only encodes requests and decodes and validates responses.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	conf       Config

	requests metric.Int64Counter
}

func New(logger *slog.Logger, conf Config) *Client {
	logger = logger.With("component", "rest")

	requests, err := meter.Int64Counter("game_service.requests",
		metric.WithDescription("Calls to the game service by endpoint and outcome"))
	if err != nil {
		logger.Warn("failed to create request counter", "error", err)
	}

	return &Client{
		logger:     logger,
		baseURL:    strings.TrimRight(conf.BaseURL, "/"),
		httpClient: &http.Client{Timeout: conf.Timeout},
		validate:   newValidator(),
		conf:       conf,

		requests: requests,
	}
}

func (that *Client) ResetGame(ctx context.Context) (*entity.GameState, error) {
	var response resetResponse
	if err := that.post(ctx, pathResetGame, nil, &response); err != nil {
		return nil, err
	}

	return that.decoded(response.toEntity(response.Scores))
}

func (that *Client) SetGameOptions(ctx context.Context, options entity.Options) (*entity.GameState, error) {
	request := optionsRequest{
		GameMode:     options.GameMode,
		Difficulty:   options.Difficulty,
		PlayerChoice: options.PlayerChoice,
	}

	var response gameResponse
	if err := that.post(ctx, pathSetGameOptions, request, &response); err != nil {
		return nil, err
	}

	return that.decoded(response.toEntity(response.Scores))
}

func (that *Client) MakeMove(ctx context.Context, position int) (*entity.GameState, error) {
	var response gameResponse
	if err := that.post(ctx, pathMakeMove, moveRequest{Position: position}, &response); err != nil {
		return nil, err
	}

	return that.decoded(response.toEntity(response.Scores))
}

func (that *Client) PlayAIRound(ctx context.Context) (*entity.AIRound, error) {
	var response aiRoundResponse
	if err := that.post(ctx, pathAIVsAI, nil, &response); err != nil {
		return nil, err
	}

	round, err := response.toEntity()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	return round, nil
}

func (that *Client) decoded(state *entity.GameState, err error) (*entity.GameState, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	return state, nil
}

// post sends body as JSON and decodes a validated response into out.
// Transport failures and gateway statuses are retried with exponential backoff.
func (that *Client) post(ctx context.Context, path string, body, out any) error {
	ctx, span := tracer.Start(ctx, "rest.post", trace.WithAttributes(
		attribute.String("http.method", http.MethodPost),
		attribute.String("http.route", path),
	))
	defer span.End()

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	attempts := 0
	operation := func() error {
		attempts++
		return that.do(ctx, path, payload, out)
	}

	notify := func(err error, wait time.Duration) {
		that.logger.WarnContext(ctx, "game service call failed, retrying",
			"path", path, "attempt", attempts, "wait", wait, "error", err)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(that.newBackOff(), ctx), notify)
	span.SetAttributes(attribute.Int("http.attempts", attempts))
	that.count(ctx, path, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "game service call failed")

		return err
	}

	return nil
}

func (that *Client) count(ctx context.Context, path string, err error) {
	if that.requests == nil {
		return
	}

	outcome := "ok"
	switch {
	case errors.Is(err, apperror.ErrRejected):
		outcome = "rejected"
	case errors.Is(err, apperror.ErrMalformedResponse):
		outcome = "malformed"
	case err != nil:
		outcome = "unavailable"
	}

	that.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.route", path),
		attribute.String("outcome", outcome),
	))
}

func (that *Client) do(ctx context.Context, path string, payload []byte, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, that.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(request.Header))

	response, err := that.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(fmt.Errorf("%w: %w", apperror.ErrServiceUnavailable, ctx.Err()))
		}

		err = fmt.Errorf("%w: %w", apperror.ErrServiceUnavailable, err)
		if notReplayable[path] && !isDialError(err) {
			return backoff.Permanent(err)
		}

		return err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return that.sent(path, fmt.Errorf("%w: failed to read response: %w", apperror.ErrServiceUnavailable, err))
	}

	if isTransient(response.StatusCode) {
		return that.sent(path, fmt.Errorf("%w: status %d", apperror.ErrServiceUnavailable, response.StatusCode))
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return backoff.Permanent(rejection(response.StatusCode, raw))
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return backoff.Permanent(fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err))
	}

	if err = that.validate.Struct(out); err != nil {
		return backoff.Permanent(fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err))
	}

	return nil
}

// sent marks a failure after the service received the request as final for
// paths that must not be replayed.
func (that *Client) sent(path string, err error) error {
	if notReplayable[path] {
		return backoff.Permanent(err)
	}

	return err
}

func isDialError(err error) bool {
	var opErr *net.OpError

	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func (that *Client) newBackOff() backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = that.conf.InitialInterval
	exponential.MaxInterval = that.conf.MaxInterval
	exponential.MaxElapsedTime = 0

	retries := uint64(0)
	if that.conf.MaxAttempts > 1 {
		retries = that.conf.MaxAttempts - 1
	}

	return backoff.WithMaxRetries(exponential, retries)
}

func isTransient(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// rejection carries the server's reason when it sent one.
func rejection(status int, raw []byte) error {
	reason := fmt.Sprintf("status %d", status)

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Error != "":
			reason = body.Error
		case body.Message != "":
			reason = body.Message
		}
	}

	return &apperror.Rejection{Status: status, Reason: reason}
}
