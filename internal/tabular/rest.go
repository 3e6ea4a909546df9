package tabular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ignite/pipeline-portal/internal/pkg/httpretry"
)

// RESTStore talks to a PostgREST-style HTTP endpoint: one path per table,
// filters as query parameters ("col=eq.value", "col=gte.value"), JSON array
// responses. This is the wire dialect the hosted store exposes to browsers,
// so the stub server in cmd/stub-api speaks it too.
type RESTStore struct {
	baseURL string
	apiKey  string
	client  httpretry.HTTPDoer
}

// NewRESTStore creates a REST-backed store. A nil doer gets the default
// retrying client so transient 5xx responses on a single page request are
// absorbed at the transport layer.
func NewRESTStore(baseURL, apiKey string, doer httpretry.HTTPDoer) *RESTStore {
	if doer == nil {
		doer = httpretry.NewRetryClient(nil, 3)
	}
	return &RESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  doer,
	}
}

// Execute runs one page of a query.
func (s *RESTStore) Execute(ctx context.Context, q Query) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.queryURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", q.Table, err)
	}
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", q.Table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("request %s: status %d: %s", q.Table, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", q.Table, err)
	}
	return rows, nil
}

func (s *RESTStore) queryURL(q Query) string {
	params := url.Values{}
	if len(q.Columns) > 0 {
		params.Set("select", strings.Join(q.Columns, ","))
	}
	for _, f := range q.Filters {
		params.Add(f.Column, string(f.Op)+"."+formatFilterValue(f.Value))
	}
	if q.OrderBy != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	return s.baseURL + "/" + q.Table + "?" + params.Encode()
}

func formatFilterValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
