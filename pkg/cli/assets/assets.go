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

// Package assets materializes remote images as local files and removes them
// on eviction. It carries no recipe semantics beyond path construction.
package assets

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cozinha/cozinha/pkg/cli/consts"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/cozinha/cozinha/pkg/cli/utils"
	"github.com/pkg/errors"
)

// ImagesDir returns the path of the local directory holding downloaded covers
func ImagesDir(ctx context.CozinhaCtx) string {
	return filepath.Join(ctx.Paths.Data, consts.CozinhaDirName, consts.ImagesDirName)
}

// DownloadImage downloads the byte stream at the given remote url into the
// local images directory under the given file name, creating the directory
// if needed, and returns the resulting local path.
func DownloadImage(ctx context.CozinhaCtx, remoteURL, fileName string) (string, error) {
	imagesDir := ImagesDir(ctx)

	if err := utils.EnsureDir(imagesDir); err != nil {
		return "", errors.Wrap(err, "ensuring images directory")
	}

	localPath := filepath.Join(imagesDir, fileName)

	hc := ctx.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	res, err := hc.Get(remoteURL)
	if err != nil {
		return "", errors.Wrapf(err, "downloading image from %s", remoteURL)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return "", errors.Errorf("downloading image from %s: response %d", remoteURL, res.StatusCode)
	}

	f, err := os.Create(localPath)
	if err != nil {
		return "", errors.Wrapf(err, "creating local file at %s", localPath)
	}
	defer f.Close()

	if _, err := io.Copy(f, res.Body); err != nil {
		return "", errors.Wrap(err, "writing image to local file")
	}

	return localPath, nil
}

// DeleteImage removes the local file at the given path. Deletion is
// best-effort and idempotent: a missing file is not an error, and any
// failure is logged instead of propagated so that eviction never blocks
// the caller's workflow.
func DeleteImage(localPath string) {
	if localPath == "" {
		return
	}

	err := os.Remove(localPath)
	if err != nil && !os.IsNotExist(err) {
		log.Debug("deleting local image at %s: %v\n", localPath, err)
	}
}
