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

package rules

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/pkg/store"
)

// Store keys for the two rule lists
const (
	StringRulesKey = "TextReplace_rulesString"
	RegexRulesKey  = "TextReplace_rulesRegex"
)

// 🏷️ Kind selects one of the rule lists
type Kind string

const (
	KindString Kind = "string"
	KindRegex  Kind = "regex"
)

// Kinds lists every rule list kind
var Kinds = []Kind{KindString, KindRegex}

// Key returns the store key for the kind
func (k Kind) Key() (string, error) {
	switch k {
	case KindString:
		return StringRulesKey, nil
	case KindRegex:
		return RegexRulesKey, nil
	default:
		return "", errors.Errorf("unknown rule kind %q", k)
	}
}

// Title is the heading shown above the list
func (k Kind) Title() string {
	if k == KindRegex {
		return "Using Regex"
	}
	return "Using String"
}

// ⚙️ Settings owns the rule lists and writes every edit through to the store
type Settings struct {
	mu    sync.Mutex
	store store.Store
	lists map[Kind]*List
}

// Load reads both rule lists from s. Absent keys start as a lone sentinel row.
func Load(ctx context.Context, s store.Store) (*Settings, error) {
	logger := zerolog.Ctx(ctx)

	settings := &Settings{store: s, lists: map[Kind]*List{}}
	for _, kind := range Kinds {
		key, _ := kind.Key()

		values, ok, err := s.Get(ctx, key)
		if err != nil {
			return nil, errors.Errorf("loading %s rules: %w", kind, err)
		}
		if !ok {
			values = []string{""}
		}

		settings.lists[kind] = NewList(values)
		logger.Debug().Str("kind", string(kind)).Int("rules", len(settings.lists[kind].Rules())).Msg("loaded rules")
	}

	return settings, nil
}

// List returns a snapshot of the rows for kind
func (s *Settings) List(kind Kind) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(kind)
	if err != nil {
		return nil, err
	}
	return l.Values(), nil
}

// Edit changes row index of kind and persists the list
func (s *Settings) Edit(ctx context.Context, kind Kind, index int, value string) error {
	return s.mutate(ctx, kind, func(l *List) error {
		return l.Edit(index, value)
	})
}

// Remove deletes row index of kind and persists the list
func (s *Settings) Remove(ctx context.Context, kind Kind, index int) error {
	return s.mutate(ctx, kind, func(l *List) error {
		return l.Remove(index)
	})
}

// Problem is a find field that does not compile
type Problem struct {
	Index int
	Rule  string
	Err   error
}

// Check validates the find fields of the regex list. String rules are never validated.
func (s *Settings) Check(kind Kind) ([]Problem, error) {
	rows, err := s.List(kind)
	if err != nil {
		return nil, err
	}
	if kind != KindRegex {
		return nil, nil
	}

	var problems []Problem
	for i, row := range rows {
		if err := FindError(row); err != nil {
			problems = append(problems, Problem{Index: i, Rule: row, Err: err})
		}
	}
	return problems, nil
}

func (s *Settings) mutate(ctx context.Context, kind Kind, fn func(*List) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(kind)
	if err != nil {
		return err
	}

	before := l.Values()
	if err := fn(l); err != nil {
		return err
	}

	key, _ := kind.Key()
	if err := s.store.Set(ctx, key, l.Values()); err != nil {
		s.lists[kind] = NewList(before)
		return errors.Errorf("saving %s rules: %w", kind, err)
	}

	zerolog.Ctx(ctx).Debug().Str("kind", string(kind)).Int("rows", l.Len()).Msg("saved rules")
	return nil
}

func (s *Settings) list(kind Kind) (*List, error) {
	l, ok := s.lists[kind]
	if !ok {
		return nil, errors.Errorf("unknown rule kind %q", kind)
	}
	return l, nil
}
