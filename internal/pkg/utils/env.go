package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns defaultValue when key is unset or blank, and also when
// parse rejects the value.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	value = strings.TrimSpace(value)
	if !exists || value == "" {
		return defaultValue
	}

	parsed, err := parse(value)
	if err != nil {
		log.Printf("Env %s=%q is invalid (%v), falling back to %v", key, value, err, defaultValue)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(value string) (string, error) {
		return value, nil
	})
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}
