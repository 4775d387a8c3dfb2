package recalcqueue

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/footyrecords/club-history/internal/platform/logging"
	"github.com/footyrecords/club-history/internal/platform/resilience"
)

var errQueueTransient = crerr.New("recalc queue transient failure")

// PublisherConfig configures the queue-backed stability recalculator.
type PublisherConfig struct {
	BaseURL        string
	Token          string
	JobPath        string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Publisher hands stability recalculation off to a queue worker instead
// of running it inline. It satisfies the ingestion service's
// StabilityRecalculator so deployments can swap the in-process pool for
// a queue without touching ingestion.
type Publisher struct {
	client         *http.Client
	baseURL        string
	token          string
	jobPath        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewPublisher(cfg PublisherConfig, logger *logging.Logger) *Publisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	jobPath := "/" + strings.TrimLeft(strings.TrimSpace(cfg.JobPath), "/")
	if jobPath == "/" {
		jobPath = "/jobs/stability-recalc"
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Publisher{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		jobPath:        jobPath,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type recalcJob struct {
	ClubIDs []string `json:"club_ids"`
}

func (p *Publisher) Recalculate(ctx context.Context, clubIDs []string) error {
	if len(clubIDs) == 0 {
		return nil
	}

	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "recalc queue circuit breaker rejected request", "state", p.breaker.State())
			return fmt.Errorf("recalc queue is temporarily unavailable: %w", err)
		}
	}

	baseURL, err := validateHTTPBaseURL(p.baseURL)
	if err != nil {
		return crerr.Wrap(err, "invalid RECALC_QUEUE_BASE_URL")
	}
	publishURL := baseURL + p.jobPath

	body, err := sonic.Marshal(recalcJob{ClubIDs: clubIDs})
	if err != nil {
		return crerr.Wrap(err, "marshal recalc job payload")
	}
	bodyText := truncateForLog(string(body), 4096)
	curlPreview := buildCurlPreview(publishURL, bodyText, p.token != "")

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("recalcqueue.publish_url", publishURL),
			attribute.Int("recalcqueue.club_count", len(clubIDs)),
			attribute.String("recalcqueue.request_body", bodyText),
			attribute.String("recalcqueue.request_curl_preview", curlPreview),
		)
	}
	p.logger.InfoContext(ctx, "recalc job publish request", "publish_url", publishURL, "club_count", len(clubIDs), "curl_preview", curlPreview)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, publishURL, strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create recalc queue request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: publish recalc job publish_url=%s: %v", errQueueTransient, publishURL, err)
		p.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf(
				"%w: publish recalc job status=%d publish_url=%s body=%s",
				errQueueTransient,
				resp.StatusCode,
				publishURL,
				strings.TrimSpace(string(raw)),
			)
			p.recordCircuitResult(callErr)
			return callErr
		}

		callErr := fmt.Errorf(
			"publish recalc job status=%d publish_url=%s body=%s",
			resp.StatusCode,
			publishURL,
			strings.TrimSpace(string(raw)),
		)
		p.recordCircuitResult(callErr)
		return callErr
	}

	p.logger.InfoContext(ctx, "recalc job published", "club_count", len(clubIDs))
	p.recordCircuitResult(nil)
	return nil
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func buildCurlPreview(publishURL, body string, withToken bool) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart("POST")
	appendPart(shellQuote(publishURL))
	if withToken {
		appendPart("-H")
		appendPart(shellQuote("Authorization: Bearer ***"))
	}
	appendPart("-H")
	appendPart(shellQuote("Content-Type: application/json"))
	appendPart("-d")
	appendPart(shellQuote(body))

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}

func (p *Publisher) recordCircuitResult(err error) {
	if !p.circuitEnabled || p.breaker == nil {
		return
	}
	if err == nil || !stderrors.Is(err, errQueueTransient) {
		p.breaker.RecordSuccess()
		return
	}
	p.breaker.RecordFailure()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
