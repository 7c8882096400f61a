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

package infra

import (
	"testing"

	"github.com/cozinha/cozinha/pkg/assert"
	"github.com/cozinha/cozinha/pkg/cli/config"
	"github.com/cozinha/cozinha/pkg/cli/context"
)

func TestGetDBPath(t *testing.T) {
	paths := context.Paths{Data: "/home/user/.local/share"}

	t.Run("default location", func(t *testing.T) {
		got := getDBPath(paths, "")
		assert.Equal(t, got, "/home/user/.local/share/cozinha/cozinha.db", "path mismatch")
	})

	t.Run("custom location", func(t *testing.T) {
		got := getDBPath(paths, "/tmp/custom.db")
		assert.Equal(t, got, "/tmp/custom.db", "path mismatch")
	})
}

func TestInitFiles(t *testing.T) {
	ctx := context.CozinhaCtx{
		Paths: context.Paths{
			Config: t.TempDir(),
		},
	}

	if err := initFiles(ctx, ""); err != nil {
		t.Fatal(err)
	}

	cf, err := config.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cf.APIEndpoint, DefaultAPIEndpoint, "api endpoint mismatch")
	assert.Equal(t, cf.ImageEndpoint, DefaultImageEndpoint, "image endpoint mismatch")
}

func TestInitFilesExistingConfig(t *testing.T) {
	ctx := context.CozinhaCtx{
		Paths: context.Paths{
			Config: t.TempDir(),
		},
	}

	if err := initFiles(ctx, "http://api.example.com"); err != nil {
		t.Fatal(err)
	}

	// a second run must not clobber the existing config
	if err := initFiles(ctx, "http://other.example.com"); err != nil {
		t.Fatal(err)
	}

	cf, err := config.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cf.APIEndpoint, "http://api.example.com", "api endpoint mismatch")
}

func TestReadEnv(t *testing.T) {
	t.Run("env var set", func(t *testing.T) {
		t.Setenv("COZINHA_TEST_ENDPOINT", "http://env.example.com")

		got := readEnv("COZINHA_TEST_ENDPOINT", "http://fallback.example.com")
		assert.Equal(t, got, "http://env.example.com", "endpoint mismatch")
	})

	t.Run("env var unset", func(t *testing.T) {
		got := readEnv("COZINHA_TEST_ENDPOINT_UNSET", "http://fallback.example.com")
		assert.Equal(t, got, "http://fallback.example.com", "endpoint mismatch")
	})
}
