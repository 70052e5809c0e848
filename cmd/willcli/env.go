package main

import (
	"os"
	"path/filepath"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

func defaultKeyPath() string {
	return env("WILLCLI_KEY_PATH", filepath.Join(os.Getenv("HOME"), ".willd.priv.key"))
}

func defaultTmAddr() string {
	return env("WILLCLI_TM_ADDR", "http://localhost:26657")
}

func defaultDocstoreConfig() string {
	return env("WILLCLI_DOCSTORE_CONFIG", filepath.Join(os.Getenv("HOME"), ".willcli", "docstore.toml"))
}
