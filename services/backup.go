// services/backup.go
package services

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"cindrella-backend/storage"

	cron "github.com/robfig/cron/v3"
)

var backupKeys = []string{storage.KeyBills, storage.KeyStaff}

// Backup snapshots the persisted collections to dated JSON files. The
// store itself has no history, so this is the only recovery path after a
// bad write.
type Backup struct {
	store storage.Store
	dir   string
}

func NewBackup(store storage.Store, dir string) *Backup {
	return &Backup{store: store, dir: dir}
}

// StartScheduler runs a snapshot every day at 3 AM.
func (b *Backup) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		if err := b.Snapshot(time.Now()); err != nil {
			log.Printf("Backup snapshot failed: %v", err)
		}
	})

	c.Start()
	log.Println("Backup scheduler started")
}

// Snapshot writes each collection to <dir>/<key>-<YYYYMMDD>.json. Keys with
// nothing stored yet are skipped.
func (b *Backup) Snapshot(now time.Time) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}
	stamp := now.Format("20060102")
	for _, key := range backupKeys {
		data, err := b.store.Get(key)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return err
		}
		path := filepath.Join(b.dir, key+"-"+stamp+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		log.Printf("Backed up %q to %s", key, path)
	}
	return nil
}
