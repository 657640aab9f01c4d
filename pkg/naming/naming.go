// SPDX-License-Identifier: MPL-2.0

// Package naming converts between user-facing command names and type
// identifiers.
//
// A command name is a colon-delimited list of kebab-case segments
// ("app:good-bye"); a type identifier is a backslash-delimited list of
// PascalCase segments (`App\GoodBye`). The conversion is applied per segment.
//
// Word boundaries inside a PascalCase segment are found from case transitions
// only:
//   - an upper-case letter after a lower-case letter or a digit starts a word
//     ("GoodBye" -> "good-bye", "V2Api" -> "v2-api")
//   - an upper-case letter followed by a lower-case letter ends an acronym
//     ("HTTPServer" -> "http-server")
//   - digits never start a word ("Sha256Sum" -> "sha256-sum")
//   - '_' and '-' are word separators
//
// Acronyms do not survive a round trip ("HTTPServer" -> "http-server" ->
// "HttpServer"); every other segment built from letters and digits does.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nscmd/nscmd/pkg/types"
)

// ToTypeSegments converts a command name into a type identifier.
//
//	ToTypeSegments("app:good-bye") // `App\GoodBye`
func ToTypeSegments(name types.CommandName) types.TypeIdentifier {
	segs := strings.Split(string(name), types.CommandSeparator)
	for i, seg := range segs {
		segs[i] = KebabToPascal(seg)
	}
	return types.TypeIdentifier(strings.Join(segs, types.NamespaceSeparator))
}

// ToCommandName converts a type identifier into a command name. Both the
// namespace separator and '/' are accepted between segments so that
// relative file paths can be converted directly.
//
//	ToCommandName(`App\GoodBye`) // "app:good-bye"
func ToCommandName(id types.TypeIdentifier) types.CommandName {
	if id == "" {
		return ""
	}
	segs := strings.Split(strings.ReplaceAll(string(id), "/", types.NamespaceSeparator), types.NamespaceSeparator)
	for i, seg := range segs {
		segs[i] = PascalToKebab(seg)
	}
	return types.CommandName(strings.Join(segs, types.CommandSeparator))
}

// KebabToPascal converts one kebab-case segment to PascalCase by upper-casing
// the first rune of every hyphen-separated word. Empty words are dropped.
func KebabToPascal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for word := range strings.SplitSeq(s, "-") {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}

// PascalToKebab converts one PascalCase segment to lower-case kebab-case
// following the word-boundary rules in the package documentation.
func PascalToKebab(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	pendingHyphen := false
	for i, r := range runes {
		if r == '_' || r == '-' {
			pendingHyphen = b.Len() > 0
			continue
		}
		if i > 0 && unicode.IsUpper(r) && startsWord(runes, i) {
			pendingHyphen = b.Len() > 0
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// startsWord reports whether the upper-case rune at i begins a new word.
func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
