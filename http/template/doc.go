/*
Package template parses the HTML templates the bookstore app responds with.

A [*Parse] looks up templates in a user-supplied [io/fs.FS] first
and falls back to those embedded in this package.
[ShellTmpl] is the one embedded template: the page that boots the client application.
It expects data shaped like:

	struct {
		Title  string
		Status int
		Props  any
	}

and calls these functions, which [NewParser] stubs until replaced with [WithFn] or [*Parse.AddFn]:

  - asset: see [AssetURI]
  - env: see [Env]
  - json
  - nonce: see [Nonce]
  - rootUrl: see [RootUrl]
*/
package template
