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
	"context"

	"gitlab.com/tozd/go/errors"
)

// Driver names accepted by Open
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Drivers lists every driver Open understands
var Drivers = []string{DriverMemory, DriverFile, DriverSQLite}

// 🎯 Open creates the store for driver. path is ignored for memory.
func Open(ctx context.Context, driver, path string) (Store, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverFile:
		return OpenFile(ctx, path)
	case DriverSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, errors.Errorf("unknown store driver %q", driver)
	}
}
