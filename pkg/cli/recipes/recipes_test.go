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

package recipes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cozinha/cozinha/pkg/assert"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/database"
	"github.com/pkg/errors"
)

func seedRecipe(t *testing.T, db *database.DB) {
	database.MustExec(t, "seeding recipe", db, `INSERT INTO recipes
	(id, name, total_ingredients, time, cover, video, rating, difficulty, calories, observation)
	VALUES (1, 'Sopa', 3, 45, '/tmp/sopa.jpg', '', 4.5, 'Fácil', '100 Kcal', '')`)
}

func TestFetchEmptyID(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	ctx := context.CozinhaCtx{DB: db}

	_, err := Fetch(ctx, "")
	assert.Equal(t, errors.Cause(err), ErrIDRequired, "error mismatch")
}

func TestFetchLocalHit(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	seedRecipe(t, db)

	var callCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:          db,
		APIEndpoint: server.URL,
		HTTPClient:  http.DefaultClient,
	}

	got, err := Fetch(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, got.Name, "Sopa", "name mismatch")
	assert.Equal(t, got.Cover, "/tmp/sopa.jpg", "cover mismatch")

	// a cached favorite wins without touching the network
	assert.Equal(t, callCount, 0, "call count mismatch")
}

func TestFetchOfflineHit(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	seedRecipe(t, db)

	ctx := context.CozinhaCtx{
		DB:      db,
		Offline: true,
	}

	got, err := Fetch(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, got.Name, "Sopa", "name mismatch")
}

func TestFetchOfflineMiss(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	ctx := context.CozinhaCtx{
		DB:      db,
		Offline: true,
	}

	_, err := Fetch(ctx, "42")
	assert.Equal(t, errors.Cause(err), ErrNotAvailableOffline, "error mismatch")
}

func TestFetchRemote(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	var callCount int
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		requestedPath = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "2",
			"name": "Feijoada",
			"total_ingredients": "11",
			"time": "120",
			"cover": "2-feijoada.jpg",
			"rating": "4.8",
			"difficulty": "Difícil"
		}`))
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:            db,
		APIEndpoint:   server.URL,
		ImageEndpoint: "http://images.example.com/",
		UserID:        "7",
		HTTPClient:    http.DefaultClient,
	}

	got, err := Fetch(ctx, "2")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, callCount, 1, "call count mismatch")
	assert.Equal(t, requestedPath, "/recipes/2/7", "path mismatch")
	assert.Equal(t, got.Name, "Feijoada", "name mismatch")
	assert.Equal(t, got.Cover, "http://images.example.com/2-feijoada.jpg", "cover mismatch")
}

func TestFetchRemoteAnonymous(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "2", "name": "Feijoada"}`))
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:          db,
		APIEndpoint: server.URL,
		HTTPClient:  http.DefaultClient,
	}

	if _, err := Fetch(ctx, "2"); err != nil {
		t.Fatal(err)
	}

	// no provisioned identity means the unscoped route
	assert.Equal(t, requestedPath, "/recipes/2", "path mismatch")
}

func TestFetchRemoteFailure(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	ctx := context.CozinhaCtx{
		DB:          db,
		APIEndpoint: server.URL,
		HTTPClient:  http.DefaultClient,
	}

	_, err := Fetch(ctx, "42")
	assert.NotEqual(t, err, nil, "expected an error")
}
