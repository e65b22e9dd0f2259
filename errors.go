// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spashell

import "errors"

// Errors reported when the root document cannot be prepared. Both indicate a
// broken asset bundle rather than a problem with any individual request.
var (
	ErrRootDocumentMissing = errors.New("root document not found in asset store")
	ErrRootDocumentNotText = errors.New("root document is not valid UTF-8 text")
	ErrInvalidStoreDir     = errors.New("invalid asset store directory")
)
