// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	ManifestLoadFailedId Id = iota + 1
	NamespaceNotMappedId
	CommandsDirUnreadableId
	CommandNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the glamour style
// at stylePath (a built-in name such as "dark", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range slices.Concat(i.docLinks, i.extLinks) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	manifestLoadFailedIssue = &Issue{
		id: ManifestLoadFailedId,
		mdMsg: `
# Failed to load the manifest!

The manifest could not be read, is not valid JSON, or does not contain the
namespace mapping section.

## Things you can try:
- Check that the file exists and is readable
- Validate the JSON syntax:
~~~
$ jq . composer.json
~~~
- Make sure the mapping section exists and maps prefixes to directories:
~~~json
{
  "autoload": {
    "psr-4": {
      "App\\Command\\": "src/Command/"
    }
  }
}
~~~
- Point to another manifest with ` + "`--manifest`" + ` or another section with
  ` + "`section`" + ` in your config file`,
		extLinks: []HttpLink{"https://getcomposer.org/doc/04-schema.md#psr-4"},
	}

	namespaceNotMappedIssue = &Issue{
		id: NamespaceNotMappedId,
		mdMsg: `
# Namespace not mapped!

No prefix in the manifest covers the requested namespace, so there is no
directory to look for commands in.

## Things you can try:
- Add a prefix for the namespace (or one of its parents) to the manifest
- Check the spelling of ` + "`--namespace`" + `; prefixes match whole segments,
  so ` + "`App`" + ` covers ` + "`App\\Command`" + ` but not ` + "`Application`" + `
- Run this command to see the resolved settings:
~~~
$ nscmd config show
~~~`,
	}

	commandsDirUnreadableIssue = &Issue{
		id: CommandsDirUnreadableId,
		mdMsg: `
# Commands directory not readable!

The manifest maps the namespace to a directory that does not exist, is not a
directory, or cannot be read.

## Things you can try:
- Print the resolved directory:
~~~
$ nscmd where
~~~
- Create the directory, or fix the mapping in the manifest
- Check the directory permissions`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command name does not resolve to a registered type.

## Things you can try:
- List the available commands:
~~~
$ nscmd list
~~~
- Check the spelling; names are lower-case kebab-case segments joined with
  colons, such as ` + "`app:good-bye`" + `
- Make sure the package defining the command is imported so that it can
  register itself`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be parsed or does not match the
expected schema.

## Things you can try:
- Check the CUE syntax of the file
- Show the file in use:
~~~
$ nscmd config path
~~~
- Dump the defaults and start from there:
~~~
$ nscmd config dump
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	issues = map[Id]*Issue{
		manifestLoadFailedIssue.Id():    manifestLoadFailedIssue,
		namespaceNotMappedIssue.Id():    namespaceNotMappedIssue,
		commandsDirUnreadableIssue.Id(): commandsDirUnreadableIssue,
		commandNotFoundIssue.Id():       commandNotFoundIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
