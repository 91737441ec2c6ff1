// Copyright 2026 The ghoaa Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	"github.com/noritada/ghoaa/internal/cache"
	ghoaaerrors "github.com/noritada/ghoaa/internal/errors"
	"github.com/noritada/ghoaa/internal/progress"
)

const (
	// DefaultEndpoint is the GraphQL endpoint of github.com.
	DefaultEndpoint = "https://api.github.com/graphql"

	defaultTimeout          = 60 * time.Second
	defaultMaxResponseBytes = 10 * 1024 * 1024
	defaultUserAgent        = "ghoaa"
)

// GraphQLClient implements the Client interface over HTTPS.
// Response bodies reach the cache byte-for-byte, before decoding.
type GraphQLClient struct {
	httpClient *http.Client
	endpoint   string
	cache      *cache.Store
	progress   progress.Reporter
	log        logrus.FieldLogger
}

type clientOptions struct {
	timeout          time.Duration
	maxResponseBytes int64
	userAgent        string
	httpClient       *http.Client
	cache            *cache.Store
	progress         progress.Reporter
	log              logrus.FieldLogger
}

// Option configures a GraphQLClient.
type Option func(*clientOptions)

// WithTimeout bounds each request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithMaxResponseBytes caps the size of a response body.
func WithMaxResponseBytes(n int64) Option {
	return func(o *clientOptions) { o.maxResponseBytes = n }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// WithHTTPClient replaces the HTTP client, including its authentication.
// Intended for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithCache stores every successful response body in s.
func WithCache(s *cache.Store) Option {
	return func(o *clientOptions) { o.cache = s }
}

// WithProgress sends Downloading and Downloaded signals to r.
func WithProgress(r progress.Reporter) Option {
	return func(o *clientOptions) { o.progress = r }
}

// WithLogger sets the logger requests are logged to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *clientOptions) { o.log = l }
}

// NewGraphQLClient creates a client for endpoint authenticating with token.
// An empty endpoint selects DefaultEndpoint.
func NewGraphQLClient(token, endpoint string, opts ...Option) *GraphQLClient {
	o := clientOptions{
		timeout:          defaultTimeout,
		maxResponseBytes: defaultMaxResponseBytes,
		userAgent:        defaultUserAgent,
		progress:         progress.Nop{},
		log:              logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: newTransport(token, o.userAgent, o.maxResponseBytes),
			Timeout:   o.timeout,
		}
	}

	return &GraphQLClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		cache:      o.cache,
		progress:   o.progress,
		log:        o.log,
	}
}

// QueryMembers implements Client.
func (c *GraphQLClient) QueryMembers(ctx context.Context, vars MembersVariables, seq int) (*MembersEnvelope, error) {
	return query[MembersData](ctx, c, membersQuery, vars.graphQL(), seq)
}

// QueryRepositories implements Client.
func (c *GraphQLClient) QueryRepositories(ctx context.Context, vars RepositoriesVariables, seq int) (*RepositoriesEnvelope, error) {
	return query[RepositoriesData](ctx, c, repositoriesQuery, vars.graphQL(), seq)
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// query sends one request and decodes the body into an Envelope[T].
// The body is cached before decoding so that a malformed response can still
// be inspected on disk.
func query[T any](ctx context.Context, c *GraphQLClient, q string, variables map[string]interface{}, seq int) (*Envelope[T], error) {
	payload, err := json.Marshal(graphQLRequest{Query: q, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode GraphQL request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build GraphQL request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	vars, _ := json.Marshal(variables)
	log := c.log.WithFields(logrus.Fields{
		"sequence":  seq,
		"variables": string(vars),
	})

	c.progress.Report(progress.Signal{Kind: progress.Downloading, Sequence: seq})
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ghoaaerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ghoaaerrors.NewTransportError(err)
	}

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"bytes":   len(body),
		"elapsed": time.Since(start).Round(time.Millisecond),
	})

	if resp.StatusCode >= http.StatusBadRequest {
		log.Debug("GraphQL request failed")
		return nil, ghoaaerrors.NewHTTPStatusError(resp.StatusCode, string(body))
	}
	log.Debug("GraphQL request completed")

	c.progress.Report(progress.Signal{Kind: progress.Downloaded, Sequence: seq, Bytes: len(body)})

	if c.cache.Enabled() {
		if err := c.cache.Save(seq, body); err != nil {
			return nil, err
		}
		log.WithField("cache_file", c.cache.Path(seq)).Debug("response cached")
	}

	var env Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, ghoaaerrors.NewDecodeError(err)
	}
	return &env, nil
}
