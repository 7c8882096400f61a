/* Copyright 2025 Cozinha Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package context defines cozinha context
package context

import (
	"net/http"

	"github.com/cozinha/cozinha/pkg/cli/database"
	"github.com/cozinha/cozinha/pkg/clock"
)

// Paths contain directory definitions
type Paths struct {
	Home   string
	Config string
	Data   string
	Cache  string
}

// CozinhaCtx is a context holding the information of the current runtime
type CozinhaCtx struct {
	Paths         Paths
	APIEndpoint   string
	ImageEndpoint string
	Version       string
	DB            *database.DB
	// UserID is the provisioned local user identity. Empty when the identity
	// has not been provisioned, in which case identity-dependent features
	// degrade instead of failing startup.
	UserID     string
	Offline    bool
	Clock      clock.Clock
	HTTPClient *http.Client
}
