// File: /jobs/media_cleanup_job.go
package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"iranbazaar-api/models"
)

// MediaCleanupJob periodically removes media files that have no matching
// ListingImage row. A crash between writing the file and inserting the row
// can leave such orphans behind; this job bounds that gap for disk storage.
type MediaCleanupJob struct {
	db       *gorm.DB
	mediaDir string
	ticker   *time.Ticker
	done     chan bool
}

// NewMediaCleanupJob creates a new media cleanup job
func NewMediaCleanupJob(db *gorm.DB, mediaDir string, interval time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{
		db:       db,
		mediaDir: mediaDir,
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *MediaCleanupJob) Start() {
	fmt.Println("Media cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Media cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *MediaCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *MediaCleanupJob) cleanup() {
	listingsDir := filepath.Join(j.mediaDir, "listings")

	entries, err := os.ReadDir(listingsDir)
	if err != nil {
		fmt.Printf("Error during media cleanup: %v\n", err)
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		// Leave fresh files alone; their row may still be on the way.
		if time.Since(info.ModTime()) < time.Hour {
			continue
		}

		key := "listings/" + entry.Name()
		var count int64
		if err := j.db.Model(&models.ListingImage{}).Where("image = ?", key).Count(&count).Error; err != nil {
			fmt.Printf("Error during media cleanup: %v\n", err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := os.Remove(filepath.Join(listingsDir, entry.Name())); err != nil {
			fmt.Printf("Warning: could not remove orphaned file %s: %v\n", key, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		fmt.Printf("Media cleanup removed %d orphaned file(s)\n", removed)
	}
}
