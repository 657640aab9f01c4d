// SPDX-License-Identifier: MPL-2.0

// Package scan walks a commands directory and derives a type identifier from
// every file that follows the command naming convention
// (<Identifier>Command<ext>, e.g. "App/GoodByeCommand.go" -> `App\GoodBye`).
//
// Ordering is deterministic: within each directory the matching files come
// first in lexical order, then the subdirectories in lexical order. Shallow
// commands are therefore listed before the commands of nested namespaces.
package scan
