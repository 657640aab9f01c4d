// SPDX-License-Identifier: MPL-2.0

package fixture_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nscmd/nscmd/internal/fixture"
	command "github.com/nscmd/nscmd/internal/fixture/src/Command"
	app "github.com/nscmd/nscmd/internal/fixture/src/Command/App"
	"github.com/nscmd/nscmd/pkg/loader"
	"github.com/nscmd/nscmd/pkg/types"
)

func TestDemoProject(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(fixture.ManifestPath()); err != nil {
		t.Fatalf("demo manifest missing: %v", err)
	}

	l, err := loader.New(fixture.ManifestPath())
	if err != nil {
		t.Fatalf("loader.New() error = %v", err)
	}

	names, err := l.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if diff := cmp.Diff([]types.CommandName{"hello", "app:good-bye"}, names); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	hello, err := l.Get("hello")
	if err != nil {
		t.Fatalf("Get(hello) error = %v", err)
	}
	if h, ok := hello.(*command.HelloCommand); !ok || h.Greeting != "Hello" {
		t.Errorf("Get(hello) = %#v", hello)
	}

	bye, err := l.Get("app:good-bye")
	if err != nil {
		t.Fatalf("Get(app:good-bye) error = %v", err)
	}
	if _, ok := bye.(*app.GoodByeCommand); !ok {
		t.Errorf("Get(app:good-bye) returned %T", bye)
	}
}
