// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"testing"

	"github.com/nscmd/nscmd/pkg/types"
)

func TestToTypeSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   types.CommandName
		want types.TypeIdentifier
	}{
		{"hello", "Hello"},
		{"app:good-bye", `App\GoodBye`},
		{"db:migrate:run-all", `Db\Migrate\RunAll`},
		{"hash:sha256-sum", `Hash\Sha256Sum`},
		{"net:v2-api", `Net\V2Api`},
		{"", ""},
		{"app::bye", `App\\Bye`},
	}

	for _, tt := range tests {
		if got := ToTypeSegments(tt.in); got != tt.want {
			t.Errorf("ToTypeSegments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToCommandName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   types.TypeIdentifier
		want types.CommandName
	}{
		{"Hello", "hello"},
		{`App\GoodBye`, "app:good-bye"},
		{"App/GoodBye", "app:good-bye"},
		{`Db\Migrate\RunAll`, "db:migrate:run-all"},
		{"", ""},
		{`App\\Bye`, "app::bye"},
	}

	for _, tt := range tests {
		if got := ToCommandName(tt.in); got != tt.want {
			t.Errorf("ToCommandName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPascalToKebab_WordBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "GoodBye", "good-bye"},
		{"single word", "Hello", "hello"},
		{"lower first", "hello", "hello"},
		{"acronym prefix", "HTTPServer", "http-server"},
		{"acronym suffix", "ServeHTTP", "serve-http"},
		{"all caps", "ABC", "abc"},
		{"digits stay in word", "Sha256Sum", "sha256-sum"},
		{"digit then upper", "V2Api", "v2-api"},
		{"trailing digits", "Route66", "route66"},
		{"underscore", "Foo_Bar", "foo-bar"},
		{"leading underscore", "_Foo", "foo"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PascalToKebab(tt.in); got != tt.want {
				t.Errorf("PascalToKebab(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKebabToPascal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"good-bye", "GoodBye"},
		{"hello", "Hello"},
		{"sha256-sum", "Sha256Sum"},
		{"good--bye", "GoodBye"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := KebabToPascal(tt.in); got != tt.want {
			t.Errorf("KebabToPascal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	// Letter-only identifiers without acronyms are mutual inverses.
	ids := []types.TypeIdentifier{
		"Hello",
		`App\GoodBye`,
		`Cache\Clear\AllPools`,
		`Debug\Router`,
		"Sha256Sum",
	}

	for _, id := range ids {
		name := ToCommandName(id)
		if back := ToTypeSegments(name); back != id {
			t.Errorf("ToTypeSegments(ToCommandName(%q)) = %q", id, back)
		}
		if again := ToCommandName(ToTypeSegments(name)); again != name {
			t.Errorf("ToCommandName(ToTypeSegments(%q)) = %q", name, again)
		}
	}
}

func TestRoundTrip_AcronymsStabilize(t *testing.T) {
	t.Parallel()

	// Acronyms lose their casing once, after which the transform is stable.
	name := ToCommandName("HTTPServer")
	if name != "http-server" {
		t.Fatalf("ToCommandName(HTTPServer) = %q", name)
	}
	if again := ToCommandName(ToTypeSegments(name)); again != name {
		t.Errorf("round trip of %q = %q", name, again)
	}
}
