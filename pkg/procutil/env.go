// Package procutil reads the environment variables that supply command
// defaults.
package procutil

import (
	"os"
	"strings"
)

type EnvVar string

const (
	// RESNAME_NAMESPACE is the default -namespace of the commands.
	RESNAME_NAMESPACE = EnvVar("RESNAME_NAMESPACE")
	// RESNAME_VERBOSE turns on -verbose by default.
	RESNAME_VERBOSE = EnvVar("RESNAME_VERBOSE")
)

// LookupBoolEnv returns the boolean value of the variable, or defaultValue
// when it is unset or not a recognized boolean.
func LookupBoolEnv(name EnvVar, defaultValue bool) bool {
	if val, ok := os.LookupEnv(string(name)); ok {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

// LookupEnv returns the value of the variable, or defaultValue when it is
// unset or empty.
func LookupEnv(name EnvVar, defaultValue string) string {
	if val, ok := os.LookupEnv(string(name)); ok && val != "" {
		return val
	}
	return defaultValue
}
