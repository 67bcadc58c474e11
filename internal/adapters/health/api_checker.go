package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/platform/health"
)

const defaultEndpointTimeout = 5 * time.Second

type APIChecker struct {
	client    *http.Client
	baseURL   string
	endpoints []string
	resolver  ports.Resolver
}

// Compile-time interface check
var _ health.Checker = (*APIChecker)(nil)

// NewAPIChecker probes endpoints relative to baseURL. Absolute endpoint URLs
// are used as given. resolver may be nil to skip the DNS pre-flight.
func NewAPIChecker(baseURL string, endpoints []string, resolver ports.Resolver) *APIChecker {
	return &APIChecker{
		client: &http.Client{
			Timeout: defaultEndpointTimeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		resolver:  resolver,
	}
}

func (c *APIChecker) Name() string {
	return readiness.CheckAPIEndpoints
}

func (c *APIChecker) Check(ctx context.Context) readiness.CheckResult {
	details := map[string]any{}
	dnsErr := c.lookup(ctx, details)

	statuses := make(map[string]any, len(c.endpoints))
	failing := make([]string, 0)
	for _, endpoint := range c.endpoints {
		status, err := c.probe(ctx, endpoint)
		if err != nil {
			statuses[endpoint] = err.Error()
			failing = append(failing, endpoint)
			continue
		}
		statuses[endpoint] = status
		if !endpointHealthy(status) {
			failing = append(failing, endpoint)
		}
	}
	details["endpoints"] = statuses

	if len(failing) > 0 {
		msg := fmt.Sprintf("%d of %d endpoint(s) not responding: %s", len(failing), len(c.endpoints), strings.Join(failing, ", "))
		if dnsErr != nil {
			msg += fmt.Sprintf(" (DNS lookup also failed: %s)", dnsErr.Error())
		}
		return readiness.Warning(msg, false).WithDetails(details)
	}

	return readiness.Pass(fmt.Sprintf("All %d endpoint(s) responding", len(c.endpoints)), false).
		WithDetails(details)
}

// lookup records what DNS says about the base host. The answer is diagnostic
// only: the system resolver used by the HTTP client also reads /etc/hosts
// and search domains, so only the endpoint responses decide the outcome.
func (c *APIChecker) lookup(ctx context.Context, details map[string]any) error {
	if c.resolver == nil {
		return nil
	}
	base, err := url.Parse(c.baseURL)
	if err != nil || base.Hostname() == "" {
		return nil
	}

	addrs, err := c.resolver.Resolve(ctx, base.Hostname())
	switch {
	case errors.Is(err, ports.ErrResolverUnavailable):
		details["dns"] = "skipped"
		return nil
	case err != nil:
		details["dns"] = err.Error()
		return err
	default:
		details["dns"] = addrs
		return nil
	}
}

func (c *APIChecker) probe(ctx context.Context, endpoint string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(endpoint), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode, nil
}

func (c *APIChecker) resolve(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// endpointHealthy accepts 401: a protected route that answers is up.
func endpointHealthy(status int) bool {
	return (status >= 200 && status < 300) || status == http.StatusUnauthorized
}
