/*
Package routes holds the client application's navigation table and resolves paths against it.

# Table

A [Table] is an ordered tree of [Entry] values built once at startup.
Top-level entries carry absolute paths ("/auth");
nested entries carry paths relative to their parent ("login", or "" for the parent's own index).
[NewTable] copies and validates what it is given, so a [*Table] never changes afterwards.

[Library] returns the table the bookstore client ships with.

# Resolver

A [*Resolver] matches a requested path against a [*Table]
and returns the [Match] chain, parent first, active child last.
Children are tried before their parent's own view,
and siblings are tried in the order they were declared.
Entries without a [View] group children and are not navigable on their own.
When nothing matches, [ErrRouteNotFound] returns.

# Navigation state

A [*Navigator] is the one place the current [Location] lives.
The application owns it; it only changes on a successful [*Navigator.Navigate].
Per-request handling carries a [Location] in a [context.Context]
using [NewLocationContext] and [LocationFromContext].
*/
package routes
