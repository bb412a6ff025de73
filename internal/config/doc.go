// Package config defines the optional settings of furiosa-version and
// provides helpers to load and validate them from YAML.
//
// The Config type holds the directory the native libraries are loaded from
// and the diagnostic log level.
package config
