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

package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📄 File is a Store backed by a single YAML document mapping keys to lists.
// Every Set rewrites the whole file through a temp file and rename.
type File struct {
	mu     sync.Mutex
	path   string
	data   map[string][]string
	closed bool
}

// OpenFile loads the store at path, starting empty if the file does not exist
func OpenFile(ctx context.Context, path string) (*File, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("opening file store")

	f := &File{path: path, data: map[string][]string{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, errors.Errorf("reading store file: %w", err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return f, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	if err := decoder.Decode(&f.data); err != nil {
		return nil, errors.Errorf("parsing store file: %w", err)
	}
	if f.data == nil {
		f.data = map[string][]string{}
	}

	return f, nil
}

// Path returns the file backing the store
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(ctx context.Context, key string) ([]string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, false, errors.WithStack(ErrClosed)
	}

	values, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]string(nil), values...), true, nil
}

func (f *File) Set(ctx context.Context, key string, values []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errors.WithStack(ErrClosed)
	}

	prev, had := f.data[key]
	f.data[key] = append([]string(nil), values...)

	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}

	zerolog.Ctx(ctx).Debug().Str("path", f.path).Str("key", key).Int("values", len(values)).Msg("wrote store key")
	return nil
}

// flush writes the current data atomically. Callers hold mu.
func (f *File) flush() error {
	out, err := yaml.Marshal(f.data)
	if err != nil {
		return errors.Errorf("encoding store: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".uwuify-store-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return errors.Errorf("replacing store file: %w", err)
	}

	return nil
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
