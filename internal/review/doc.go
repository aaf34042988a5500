// Copyright 2026 The reviewmd Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package review assembles the review comments of a pull request from the
// page-level github.Client operations. It walks the two pagination
// dimensions (review threads, and comments nested inside a thread), applies
// the resolved/outdated inclusion policy, normalizes raw nodes into the
// canonical Comment record, and returns the result sorted by creation time.
//
// A fetch is all-or-nothing: any error from the underlying client aborts the
// walk and no partial results are returned.
package review
