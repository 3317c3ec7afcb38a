// Package domain contains the core domain model for domainwatch.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// net/http, os/exec, SMTP, or the filesystem. Infra/adapters map into/from
// these types.
package domain
