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
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
// It serves scripted envelopes in request order and records every call.
type MockClient struct {
	mu sync.Mutex

	// Pages to return, one per call; the last one is repeated once exhausted.
	MembersPages      []*MembersEnvelope
	RepositoriesPages []*RepositoriesEnvelope

	// Error to return from every call
	Error error

	// Track calls for verification
	MembersCalls      []MembersVariables
	RepositoriesCalls []RepositoriesVariables
	Sequences         []int
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithMembersPages sets the members responses to return.
func WithMembersPages(pages ...*MembersEnvelope) MockClientOption {
	return func(m *MockClient) {
		m.MembersPages = pages
	}
}

// WithRepositoriesPages sets the repositories responses to return.
func WithRepositoriesPages(pages ...*RepositoriesEnvelope) MockClientOption {
	return func(m *MockClient) {
		m.RepositoriesPages = pages
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// NewMockClient creates a mock client with options
func NewMockClient(opts ...MockClientOption) *MockClient {
	mock := &MockClient{}
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}

// QueryMembers implements the Client interface
func (m *MockClient) QueryMembers(ctx context.Context, vars MembersVariables, seq int) (*MembersEnvelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := len(m.MembersCalls)
	m.MembersCalls = append(m.MembersCalls, vars)
	m.Sequences = append(m.Sequences, seq)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}
	if len(m.MembersPages) == 0 {
		return nil, fmt.Errorf("mock: no members pages configured")
	}
	return m.MembersPages[min(call, len(m.MembersPages)-1)], nil
}

// QueryRepositories implements the Client interface
func (m *MockClient) QueryRepositories(ctx context.Context, vars RepositoriesVariables, seq int) (*RepositoriesEnvelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := len(m.RepositoriesCalls)
	m.RepositoriesCalls = append(m.RepositoriesCalls, vars)
	m.Sequences = append(m.Sequences, seq)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Error != nil {
		return nil, m.Error
	}
	if len(m.RepositoriesPages) == 0 {
		return nil, fmt.Errorf("mock: no repositories pages configured")
	}
	return m.RepositoriesPages[min(call, len(m.RepositoriesPages)-1)], nil
}
