package config

import (
	"log"
	"os"

	"cindrella-backend/storage"
)

var Store storage.Store

// ConnectStore picks the persistence backend from STORE_BACKEND and wires
// the global Store. Defaults to the local file store under DATA_DIR.
func ConnectStore() {
	backend := os.Getenv("STORE_BACKEND")

	switch backend {
	case "postgres":
		dsn := os.Getenv("DB_URL")
		store, err := storage.NewGormStore(dsn)
		if err != nil {
			panic("Failed to connect store database: " + err.Error())
		}
		Store = store
	case "memory":
		Store = storage.NewMemoryStore()
	default:
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "./data"
		}
		store, err := storage.NewFileStore(dir)
		if err != nil {
			panic("Failed to open data dir: " + err.Error())
		}
		Store = store
	}

	log.Printf("Store connected (backend: %s)", storeName(backend))
}

func storeName(backend string) string {
	if backend == "" {
		return "file"
	}
	return backend
}
