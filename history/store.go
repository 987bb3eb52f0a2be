// Package history persists generation runs and user-reported issues
// in a local sqlite database.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("history: not found")

// Store wraps the gorm handle; one Store per process.
type Store struct {
	db *gorm.DB
}

// Open connects with WAL mode for concurrency and runs migrations.
// Pass ":memory:" for an in-process throwaway database (tests).
func Open(path string, environment string) (*Store, error) {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("history: connect to database: %w", err)
	}

	if err := db.AutoMigrate(&GenerationLog{}, &IssueReport{}); err != nil {
		return nil, fmt.Errorf("history: run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("history: get database instance: %w", err)
	}
	return sqlDB.Close()
}

// LogGeneration appends a log entry asynchronously so the request is
// never blocked on the write. Failures are logged and dropped.
func (s *Store) LogGeneration(tool string, params interface{}, records, pages int, clientIP string) {
	go func() {
		paramsJSON := ""
		if params != nil {
			if bytes, err := json.Marshal(params); err == nil {
				paramsJSON = string(bytes)
			}
		}
		entry := GenerationLog{
			Tool:     tool,
			Params:   paramsJSON,
			Records:  records,
			Pages:    pages,
			ClientIP: clientIP,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			log.Printf("[HISTORY] Failed to create generation log: %v", err)
		}
	}()
}

// ListGenerations returns log entries newest first, with offset/limit
// pagination. limit <= 0 falls back to 50.
func (s *Store) ListGenerations(offset, limit int) ([]GenerationLog, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	var total int64
	if err := s.db.Model(&GenerationLog{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("history: count generations: %w", err)
	}
	var entries []GenerationLog
	err := s.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("history: list generations: %w", err)
	}
	return entries, total, nil
}

// CreateIssue stores a new report and returns it with ID and status set.
func (s *Store) CreateIssue(issue *IssueReport) error {
	if err := s.db.Create(issue).Error; err != nil {
		return fmt.Errorf("history: create issue: %w", err)
	}
	return nil
}

// ListIssues returns reports newest first, optionally filtered by status.
func (s *Store) ListIssues(status string) ([]IssueReport, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var issues []IssueReport
	if err := q.Find(&issues).Error; err != nil {
		return nil, fmt.Errorf("history: list issues: %w", err)
	}
	return issues, nil
}

// UpdateIssueStatus moves a report to a new status.
func (s *Store) UpdateIssueStatus(id, status string) (*IssueReport, error) {
	if !ValidIssueStatus(status) {
		return nil, fmt.Errorf("history: unknown issue status %q", status)
	}
	var issue IssueReport
	if err := s.db.First(&issue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("history: load issue: %w", err)
	}
	issue.Status = status
	if err := s.db.Save(&issue).Error; err != nil {
		return nil, fmt.Errorf("history: update issue: %w", err)
	}
	return &issue, nil
}
