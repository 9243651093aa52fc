// Package config loads flairgen configuration.
//
// Values are layered with koanf: the embedded defaults first, then the user
// config file, then FLAIRGEN_ environment variables. The merged tree is
// decoded into Config.
package config
