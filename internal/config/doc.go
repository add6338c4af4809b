// Package config provides configuration structures and utilities for OSINT Nexus.
// It defines the backend connection settings, transport options, mock server
// settings and the XDG locations of the preferences, log and report files.
package config
