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

// Package infra provides operations and definitions for the
// local infrastructure for cozinha
package infra

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/config"
	"github.com/cozinha/cozinha/pkg/cli/consts"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/database"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/cozinha/cozinha/pkg/cli/user"
	"github.com/cozinha/cozinha/pkg/cli/utils"
	"github.com/cozinha/cozinha/pkg/clock"
	"github.com/cozinha/cozinha/pkg/dirs"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	// DefaultAPIEndpoint is the default API endpoint used when none is configured
	DefaultAPIEndpoint = "http://localhost:3001"
	// DefaultImageEndpoint is the default base path for remote recipe covers
	DefaultImageEndpoint = "http://localhost:3001/images/"
)

// The environment variable names that override the configured endpoints
const (
	envAPIEndpoint   = "COZINHA_API_ENDPOINT"
	envImageEndpoint = "COZINHA_IMAGE_ENDPOINT"
)

// RunEFunc is a function type of cozinha commands
type RunEFunc func(*cobra.Command, []string) error

func getDBPath(paths context.Paths, customPath string) string {
	if customPath != "" {
		return customPath
	}

	return fmt.Sprintf("%s/%s/%s", paths.Data, consts.CozinhaDirName, consts.CozinhaDBFileName)
}

// newBaseCtx creates a minimal context with paths and database connection.
// This base context is used for file and database initialization before
// being enriched with config values by setupCtx.
func newBaseCtx(versionTag, customDBPath string) (context.CozinhaCtx, error) {
	paths := context.Paths{
		Home:   dirs.Home,
		Config: dirs.ConfigHome,
		Data:   dirs.DataHome,
		Cache:  dirs.CacheHome,
	}

	if err := utils.EnsureDir(fmt.Sprintf("%s/%s", paths.Data, consts.CozinhaDirName)); err != nil {
		return context.CozinhaCtx{}, errors.Wrap(err, "ensuring data directory")
	}

	dbPath := getDBPath(paths, customDBPath)

	db, err := database.Open(dbPath)
	if err != nil {
		return context.CozinhaCtx{}, errors.Wrap(err, "connecting to db")
	}

	ctx := context.CozinhaCtx{
		Paths:   paths,
		Version: versionTag,
		DB:      db,
	}

	return ctx, nil
}

// Init initializes the cozinha environment and returns a new cozinha context.
// apiEndpoint is used when creating a new config file (e.g., from ldflags during tests)
func Init(versionTag, apiEndpoint, dbPath string) (*context.CozinhaCtx, error) {
	// A .env file in the working directory may carry endpoint overrides
	if err := godotenv.Load(consts.EnvFilename); err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.Debug("loading env file: %v\n", err)
	}

	ctx, err := newBaseCtx(versionTag, dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "initializing a context")
	}

	if err := initFiles(ctx, apiEndpoint); err != nil {
		return nil, errors.Wrap(err, "initializing files")
	}

	if err := InitDB(ctx); err != nil {
		return nil, errors.Wrap(err, "initializing database")
	}

	ctx, err = setupCtx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "setting up the context")
	}

	log.Debug("context: %+v\n", ctx)

	return &ctx, nil
}

// initFiles creates the config directory and a config file with default
// values unless one already exists
func initFiles(ctx context.CozinhaCtx, apiEndpoint string) error {
	if err := utils.EnsureDir(fmt.Sprintf("%s/%s", ctx.Paths.Config, consts.CozinhaDirName)); err != nil {
		return errors.Wrap(err, "ensuring config directory")
	}

	configPath := config.GetPath(ctx)
	ok, err := utils.FileExists(configPath)
	if err != nil {
		return errors.Wrap(err, "checking for a config file")
	}
	if ok {
		return nil
	}

	if apiEndpoint == "" {
		apiEndpoint = DefaultAPIEndpoint
	}

	cf := config.Config{
		APIEndpoint:   apiEndpoint,
		ImageEndpoint: DefaultImageEndpoint,
	}
	if err := config.Write(ctx, cf); err != nil {
		return errors.Wrap(err, "writing a default config file")
	}

	return nil
}

// setupCtx enriches the base context with values from the config file and
// the database. This is called after files and database have been initialized.
func setupCtx(ctx context.CozinhaCtx) (context.CozinhaCtx, error) {
	cf, err := config.Read(ctx)
	if err != nil {
		return ctx, errors.Wrap(err, "reading config")
	}

	apiEndpoint := readEnv(envAPIEndpoint, cf.APIEndpoint)
	imageEndpoint := readEnv(envImageEndpoint, cf.ImageEndpoint)

	var userID string
	localUser, err := user.GetLocalUser(ctx.DB)
	if err != nil {
		return ctx, errors.Wrap(err, "finding local user")
	}
	if localUser != nil {
		userID = strconv.Itoa(localUser.ID)
	}

	ret := context.CozinhaCtx{
		Paths:         ctx.Paths,
		Version:       ctx.Version,
		DB:            ctx.DB,
		APIEndpoint:   apiEndpoint,
		ImageEndpoint: imageEndpoint,
		UserID:        userID,
		Clock:         clock.New(),
		HTTPClient:    client.NewRateLimitedHTTPClient(),
	}

	return ret, nil
}

func readEnv(name, fallback string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}

	return fallback
}

// InitDB initializes the database schema
func InitDB(ctx context.CozinhaCtx) error {
	log.Debug("initializing the database\n")

	return database.InitSchema(ctx.DB)
}
