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

package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cozinha/cozinha/pkg/assert"
	"github.com/cozinha/cozinha/pkg/cli/consts"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/database"
)

func TestEnsureLocalUserRegisters(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	var callCount int
	var requestedName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/create_user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		callCount++

		var payload struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatal(err)
		}
		requestedName = payload.Name

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7}`))
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:          db,
		APIEndpoint: server.URL,
		HTTPClient:  http.DefaultClient,
	}

	if err := EnsureLocalUser(&ctx); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, callCount, 1, "registration call count mismatch")
	assert.Equal(t, ctx.UserID, "7", "user id mismatch")

	if !strings.HasPrefix(requestedName, consts.LocalUserNamePrefix) {
		t.Errorf("name %q does not carry the local user prefix", requestedName)
	}

	var userCount int
	database.MustScan(t, "counting users", db.QueryRow("SELECT count(*) FROM users"), &userCount)
	assert.Equal(t, userCount, 1, "user count mismatch")

	var storedName string
	database.MustScan(t, "reading user name", db.QueryRow("SELECT name FROM users WHERE id = 7"), &storedName)
	assert.Equal(t, storedName, requestedName, "stored name mismatch")

	// a second run must reuse the stored identity without touching the network
	ctx.UserID = ""
	if err := EnsureLocalUser(&ctx); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, callCount, 1, "registration call count mismatch after reuse")
	assert.Equal(t, ctx.UserID, "7", "user id mismatch after reuse")
}

func TestEnsureLocalUserRegistrationFails(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:          db,
		APIEndpoint: server.URL,
		HTTPClient:  http.DefaultClient,
	}

	// a failed registration degrades instead of failing the run
	if err := EnsureLocalUser(&ctx); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ctx.UserID, "", "user id mismatch")

	var userCount int
	database.MustScan(t, "counting users", db.QueryRow("SELECT count(*) FROM users"), &userCount)
	assert.Equal(t, userCount, 0, "user count mismatch")
}

func TestEnsureLocalUserResponseWithoutID(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:          db,
		APIEndpoint: server.URL,
		HTTPClient:  http.DefaultClient,
	}

	if err := EnsureLocalUser(&ctx); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ctx.UserID, "", "user id mismatch")

	var userCount int
	database.MustScan(t, "counting users", db.QueryRow("SELECT count(*) FROM users"), &userCount)
	assert.Equal(t, userCount, 0, "user count mismatch")
}

func TestGetLocalUserEmpty(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	got, err := GetLocalUser(db)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected no local user. Got %+v", got)
	}
}

func TestRandomName(t *testing.T) {
	name := randomName()

	if !strings.HasPrefix(name, consts.LocalUserNamePrefix) {
		t.Errorf("name %q does not carry the local user prefix", name)
	}
	if len(name) == len(consts.LocalUserNamePrefix) {
		t.Errorf("name %q carries no random fragment", name)
	}
}
