// Package resolver implements the multi-source configuration resolution
// engine.
//
// For a named application scope it enumerates six candidate sources (remote
// configuration service, app-scoped and generic environment variables,
// app-scoped and root .env files, and the full process environment), reads
// the available ones independently, deep-merges them by a fixed priority
// order, and caches the merged result per app id. Key lookups reconcile the
// differing spelling conventions of the sources (dotted, flattened, nested)
// through the normalizer so callers can query one logical key regardless of
// how a source spelled it.
//
// Source failures are isolated: a failing source contributes no keys and the
// resolution proceeds on the remaining ones. Only two conditions abort an
// operation — an invalid app id, and a failure to read the process
// environment, which is the guaranteed-available floor of every resolution.
package resolver
