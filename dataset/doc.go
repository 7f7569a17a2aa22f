// Copyright 2025 go-paxsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dataset reads and writes passenger files.
//
// # Format
//
// A passenger file is UTF-8 text with one header line followed by one line
// per passenger. UTF-16 files are accepted when they start with a byte order
// mark. Each row is:
//
//	full_name,cabin_number,cabin_class,destination_port
//
// Fields are separated by a bare comma. There is no quoting or escaping, so
// a field that itself contains a comma shifts every field after it. Files
// written by Save use the same layout and the Header line, so a saved file
// can be read back with Load.
//
// # Errors
//
// Load fails when the file cannot be opened, when it holds no data rows
// (ErrEmpty), or when a cabin number is not an integer (ErrMalformedRow).
// A malformed row aborts the whole load; rows are never skipped.
package dataset
