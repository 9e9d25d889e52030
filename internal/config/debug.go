package config

import (
	"os"
	"strconv"
)

// IsDebug reports whether REACH_DEBUG holds a true value ("1", "true", ...).
func IsDebug() bool {
	v, err := strconv.ParseBool(os.Getenv("REACH_DEBUG"))
	return err == nil && v
}
