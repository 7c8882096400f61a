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

// Package user guarantees the app has at most one durable local user
// identity, synthesized client-side and registered server-side on first run
package user

import (
	"database/sql"
	"math/rand"
	"strconv"

	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/consts"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/database"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/pkg/errors"
)

// randomName synthesizes a pseudorandom display name: a fixed prefix
// followed by a base-36 fragment.
func randomName() string {
	return consts.LocalUserNamePrefix + strconv.FormatInt(rand.Int63n(1<<41), 36)
}

// GetLocalUser reads the provisioned local user row. It returns nil without
// an error when no row exists.
func GetLocalUser(db *database.DB) (*database.LocalUser, error) {
	var ret database.LocalUser

	err := db.QueryRow("SELECT id, name FROM users LIMIT 1").Scan(&ret.ID, &ret.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "querying local user")
	}

	return &ret, nil
}

// EnsureLocalUser publishes the existing local identity to the context, or
// registers a new one with the server and persists the assigned id. A failed
// or id-less registration is logged and leaves both the local store and the
// context untouched; identity-dependent features degrade instead of the
// startup failing.
func EnsureLocalUser(ctx *context.CozinhaCtx) error {
	existing, err := GetLocalUser(ctx.DB)
	if err != nil {
		return errors.Wrap(err, "reading local user")
	}

	if existing != nil {
		ctx.UserID = strconv.Itoa(existing.ID)
		return nil
	}

	name := randomName()

	resp, err := client.CreateUser(*ctx, name)
	if err != nil {
		log.Debug("registering local user: %v\n", err)
		return nil
	}
	if resp.ID == 0 {
		log.Debug("registration response carried no id\n")
		return nil
	}

	row := database.LocalUser{ID: resp.ID, Name: name}
	if err := row.Insert(ctx.DB); err != nil {
		return errors.Wrap(err, "persisting local user")
	}

	ctx.UserID = strconv.Itoa(resp.ID)

	return nil
}
