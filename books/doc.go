/*
Package books reads the book list from the library API.

A [*Client] makes a single GET request to the library's base URL and
returns the JSON array of titles it responds with, unmodified.

	c, err := books.NewClient(
		books.WithBaseURL("http://127.0.0.1:3000/library"),
		books.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok})),
	)
	titles, err := c.FetchAll(ctx)

Attaching credentials is left to the [http.RoundTripper] a token source builds;
the Client never reads or stores tokens itself.
*/
package books
