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

// Package client provides interfaces for interacting with the recipe server
// and the data structures for responses
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrContentTypeMismatch is an error for an unexpected response content type
var ErrContentTypeMismatch = errors.New("content type mismatch")

// HTTPError represents an HTTP error response from the server
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf(`response %d "%s"`, e.StatusCode, e.Message)
}

var contentTypeApplicationJSON = "application/json"

const (
	// clientRateLimitPerSecond is the max requests per second the client will make
	clientRateLimitPerSecond = 50
	// clientRateLimitBurst is the burst capacity for rate limiting
	clientRateLimitBurst = 100
)

// rateLimitedTransport wraps an http.RoundTripper with rate limiting
type rateLimitedTransport struct {
	transport http.RoundTripper
	limiter   *rate.Limiter
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.transport.RoundTrip(req)
}

// NewRateLimitedHTTPClient creates an HTTP client with rate limiting
func NewRateLimitedHTTPClient() *http.Client {
	interval := time.Second / time.Duration(clientRateLimitPerSecond)

	transport := &rateLimitedTransport{
		transport: http.DefaultTransport,
		limiter:   rate.NewLimiter(rate.Every(interval), clientRateLimitBurst),
	}
	return &http.Client{
		Transport: transport,
	}
}

func getHTTPClient(ctx context.CozinhaCtx) *http.Client {
	if ctx.HTTPClient != nil {
		return ctx.HTTPClient
	}

	return &http.Client{}
}

func getReq(ctx context.CozinhaCtx, method, path, body string) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s%s", ctx.APIEndpoint, path)
	req, err := http.NewRequest(method, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "constructing http request")
	}

	req.Header.Set("CLI-Version", ctx.Version)
	if body != "" {
		req.Header.Set("Content-Type", contentTypeApplicationJSON)
	}

	return req, nil
}

// checkRespErr checks if the given http response indicates an error. It returns a decoded
// error message if the response is an error.
func checkRespErr(res *http.Response) error {
	if res.StatusCode < 400 {
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "server responded with %d but client could not read the response body", res.StatusCode)
	}

	bodyStr := string(body)
	return &HTTPError{
		StatusCode: res.StatusCode,
		Message:    strings.TrimRight(bodyStr, "\n"),
	}
}

func checkContentType(res *http.Response) error {
	got := res.Header.Get("Content-Type")
	if !strings.HasPrefix(got, contentTypeApplicationJSON) {
		return errors.Wrapf(ErrContentTypeMismatch, "got: '%s' want: '%s'. Did you configure your endpoint correctly?", got, contentTypeApplicationJSON)
	}

	return nil
}

// doReq does a http request to the given path in the api endpoint
func doReq(ctx context.CozinhaCtx, method, path, body string) (*http.Response, error) {
	req, err := getReq(ctx, method, path, body)
	if err != nil {
		return nil, errors.Wrap(err, "getting request")
	}

	log.Debug("HTTP %s %s\n", method, path)

	hc := getHTTPClient(ctx)
	res, err := hc.Do(req)
	if err != nil {
		return res, errors.Wrap(err, "making http request")
	}

	log.Debug("HTTP %d %s\n", res.StatusCode, res.Status)

	if err = checkRespErr(res); err != nil {
		return res, errors.Wrap(err, "server responded with an error")
	}

	if err = checkContentType(res); err != nil {
		return res, errors.Wrap(err, "unexpected Content-Type")
	}

	return res, nil
}

// getJSON does a GET request to the given path and decodes the response body into dest
func getJSON(ctx context.CozinhaCtx, path string, dest interface{}) error {
	res, err := doReq(ctx, "GET", path, "")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading the response body")
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return errors.Wrap(err, "unmarshalling the payload")
	}

	return nil
}

// postJSON does a POST request with the given payload and decodes the response body into dest
func postJSON(ctx context.CozinhaCtx, path string, payload, dest interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshalling the payload")
	}

	res, err := doReq(ctx, "POST", path, string(b))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading the response body")
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return errors.Wrap(err, "unmarshalling the payload")
	}

	return nil
}

// IngredientData is an ingredient of a recipe as represented across the application
type IngredientData struct {
	ID       string `json:"id"`
	RecipeID string `json:"recipe_id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Section  string `json:"section"`
}

// InstructionData is an instruction of a recipe as represented across the application
type InstructionData struct {
	ID       string `json:"id"`
	RecipeID string `json:"recipe_id"`
	Step     string `json:"step"`
	Text     string `json:"text"`
}

// FoodTypeData is a food type of a recipe as represented across the application
type FoodTypeData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecipeDetail is the application-wide recipe representation. The server
// serves numeric fields as strings, and the local cache normalizes its rows
// to the same shape on read.
type RecipeDetail struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	TotalIngredients string            `json:"total_ingredients"`
	Time             string            `json:"time"`
	Cover            string            `json:"cover"`
	Video            string            `json:"video"`
	Rating           string            `json:"rating"`
	Difficulty       string            `json:"difficulty"`
	Calories         string            `json:"calories"`
	Observation      string            `json:"observation"`
	Ingredients      []IngredientData  `json:"ingredients"`
	Instructions     []InstructionData `json:"instructions"`
	FoodTypes        []FoodTypeData    `json:"food_types"`
}

// GetRecipe gets a recipe detail from the server. The user id scopes the
// request so that the response carries the user-specific rating. It may be
// empty when no local identity has been provisioned.
func GetRecipe(ctx context.CozinhaCtx, id, userID string) (RecipeDetail, error) {
	var ret RecipeDetail

	path := fmt.Sprintf("/recipes/%s", id)
	if userID != "" {
		path = fmt.Sprintf("/recipes/%s/%s", id, userID)
	}

	if err := getJSON(ctx, path, &ret); err != nil {
		return ret, errors.Wrap(err, "getting recipe")
	}

	return ret, nil
}

// RemoteFoodType is a food type taxonomy row as served by the food types endpoint
type RemoteFoodType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetFoodTypes gets the full food type taxonomy from the server
func GetFoodTypes(ctx context.CozinhaCtx) ([]RemoteFoodType, error) {
	var ret []RemoteFoodType

	if err := getJSON(ctx, "/foodtypes", &ret); err != nil {
		return nil, errors.Wrap(err, "getting food types")
	}

	return ret, nil
}

// CreateUserResp is the response of the user registration endpoint
type CreateUserResp struct {
	ID int `json:"id"`
}

// CreateUser registers a new user with the given name and returns the
// server-assigned identity
func CreateUser(ctx context.CozinhaCtx, name string) (CreateUserResp, error) {
	var ret CreateUserResp

	payload := struct {
		Name string `json:"name"`
	}{
		Name: name,
	}

	if err := postJSON(ctx, "/create_user", payload, &ret); err != nil {
		return ret, errors.Wrap(err, "creating user")
	}

	return ret, nil
}

// RateRecipeResp is the response of the rating endpoint
type RateRecipeResp struct {
	Status string `json:"status"`
	Data   struct {
		Average string `json:"average"`
	} `json:"data"`
}

// RateRecipe submits a rating for the given recipe on behalf of the given user
func RateRecipe(ctx context.CozinhaCtx, recipeID, userID string, score int) (RateRecipeResp, error) {
	var ret RateRecipeResp

	payload := struct {
		RecipeID string `json:"recipe_id"`
		UserID   string `json:"user_id"`
		Rate     int    `json:"rate"`
	}{
		RecipeID: recipeID,
		UserID:   userID,
		Rate:     score,
	}

	if err := postJSON(ctx, "/rate", payload, &ret); err != nil {
		return ret, errors.Wrap(err, "rating recipe")
	}

	return ret, nil
}
