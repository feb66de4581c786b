// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SourceVariant identifies one origin of configuration data. The set of
// variants is closed: every resolution consults exactly these six, in
// priority order.
type SourceVariant string

const (
	// SourceProcessEnv is the full current process environment. It is always
	// available and acts as the lowest-priority catch-all.
	SourceProcessEnv SourceVariant = "process_env"

	// SourceRootDotEnv is the shared .env file at the configuration root.
	SourceRootDotEnv SourceVariant = "root_dotenv"

	// SourceAppDotEnv is the per-application .env.<appid> file.
	SourceAppDotEnv SourceVariant = "app_dotenv"

	// SourceGenericEnvVars covers prefixed environment variables that apply
	// to every application (PREFIX_<KEY>).
	SourceGenericEnvVars SourceVariant = "generic_env"

	// SourceAppEnvVars covers app-scoped environment variables
	// (PREFIX_<APPID>_<KEY>).
	SourceAppEnvVars SourceVariant = "app_env"

	// SourceRemoteService is the remote configuration service. When
	// reachable it overrides every local source.
	SourceRemoteService SourceVariant = "remote_service"
)

// sourcePriorities is the canonical priority table. Higher wins on key
// conflict. All code must rank sources through Priority; the table exists
// in exactly one place so documentation and behavior cannot drift.
var sourcePriorities = map[SourceVariant]int{
	SourceProcessEnv:     0,
	SourceRootDotEnv:     1,
	SourceAppDotEnv:      2,
	SourceGenericEnvVars: 3,
	SourceAppEnvVars:     4,
	SourceRemoteService:  5,
}

// Priority returns the integer rank of the variant. Unknown variants rank
// below every known one.
func (v SourceVariant) Priority() int {
	p, ok := sourcePriorities[v]
	if !ok {
		return -1
	}
	return p
}

func (v SourceVariant) String() string {
	return string(v)
}

// AllSourceVariants returns every known variant ordered from lowest to
// highest priority.
func AllSourceVariants() []SourceVariant {
	return []SourceVariant{
		SourceProcessEnv,
		SourceRootDotEnv,
		SourceAppDotEnv,
		SourceGenericEnvVars,
		SourceAppEnvVars,
		SourceRemoteService,
	}
}
