// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store holds the key-value adapters the rule settings persist to.
package store

import (
	"context"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.Base("store is closed")

// 💾 Store persists string lists by key
type Store interface {
	// Get returns the list stored under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (values []string, ok bool, err error)

	// Set replaces the list stored under key
	Set(ctx context.Context, key string, values []string) error

	// Close releases any underlying resources
	Close() error
}

// 🧠 Memory is an in-process Store
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]string
	closed bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: map[string][]string{}}
}

func (m *Memory) Get(ctx context.Context, key string) ([]string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, errors.WithStack(ErrClosed)
	}

	values, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), values...), true, nil
}

func (m *Memory) Set(ctx context.Context, key string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.WithStack(ErrClosed)
	}

	m.data[key] = append([]string(nil), values...)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
