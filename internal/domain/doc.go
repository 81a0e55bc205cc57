// Package domain contains the core model for cfgjs: parsed definitions, the
// recognized key set and the project configuration.
//
// The domain does not touch the filesystem or YAML. Infra adapters map
// into/from these types.
package domain
