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

// Package consts provides definitions of constants
package consts

var (
	// CozinhaDirName is the name of the directory containing cozinha files
	CozinhaDirName = "cozinha"
	// CozinhaDBFileName is a filename for the cozinha SQLite database
	CozinhaDBFileName = "cozinha.db"
	// ImagesDirName is the name of the directory holding downloaded recipe covers
	ImagesDirName = "images"
	// ConfigFilename is the name of the config file
	ConfigFilename = "cozinharc"
	// EnvFilename is the name of the optional env file loaded at startup
	EnvFilename = ".env"

	// LocalUserNamePrefix is the prefix for locally synthesized user handles
	LocalUserNamePrefix = "user_"
)
