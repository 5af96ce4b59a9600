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

// Package rules manages the user-editable find/replace rule lists.
//
// The lists are persisted through a store.Store and edited with sentinel
// semantics: the last row is always an empty placeholder for a new rule.
package rules

import (
	"gitlab.com/tozd/go/errors"
)

// ErrIndexOutOfRange is returned when an edit targets a row that does not exist
var ErrIndexOutOfRange = errors.Base("rule index out of range")

// 📋 List is an ordered rule list whose last element is the empty sentinel row
type List struct {
	values []string
}

// NewList builds a List from stored values, restoring the trailing sentinel if it is missing
func NewList(values []string) *List {
	l := &List{values: append([]string(nil), values...)}
	if len(l.values) == 0 || l.values[len(l.values)-1] != "" {
		l.values = append(l.values, "")
	}
	return l
}

// Values returns a copy of every row, sentinel included
func (l *List) Values() []string {
	return append([]string(nil), l.values...)
}

// Rules returns the non-empty rows
func (l *List) Rules() []string {
	out := make([]string, 0, len(l.values))
	for _, v := range l.values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of rows, sentinel included
func (l *List) Len() int {
	return len(l.values)
}

// IsSentinel reports whether index is the trailing placeholder row
func (l *List) IsSentinel(index int) bool {
	return index == len(l.values)-1
}

// ✏️ Edit sets row index to value. Editing the sentinel appends a new one;
// setting a row to "" deletes it.
func (l *List) Edit(index int, value string) error {
	if err := l.check(index); err != nil {
		return err
	}

	if l.IsSentinel(index) {
		l.values = append(l.values, "")
	}

	l.values[index] = value

	if value == "" {
		l.values = append(l.values[:index], l.values[index+1:]...)
	}

	return nil
}

// 🗑️ Remove deletes row index. Removing the sentinel is a no-op.
func (l *List) Remove(index int) error {
	if err := l.check(index); err != nil {
		return err
	}

	if l.IsSentinel(index) {
		return nil
	}

	l.values = append(l.values[:index], l.values[index+1:]...)
	return nil
}

func (l *List) check(index int) error {
	if index < 0 || index >= len(l.values) {
		return errors.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(l.values))
	}
	return nil
}
