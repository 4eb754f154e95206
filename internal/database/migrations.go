package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task indexes for filtering
		{"tasks", "idx_tasks_author_id", "author_id"},
		{"tasks", "idx_tasks_executor_id", "executor_id"},
		{"tasks", "idx_tasks_status_id", "status_id"},
		{"tasks", "idx_tasks_created_at", "created_at"},

		// Join table indexes for the label filter
		{"task_labels", "idx_task_labels_task_id", "task_id"},
		{"task_labels", "idx_task_labels_label_id", "label_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			log.Printf("Index %s already exists, skipping", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
