// Package repository holds the data access layer for job applications.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Gokulvemuri/job-application-manager/internal/model"
)

// ErrNotFound is returned when the targeted id matches no record
var ErrNotFound = errors.New("job application not found")

// JobApplicationRepository runs job application queries against the shared pool.
// Each method issues exactly one statement.
type JobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository creates a repository on top of db
func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

// Create inserts the creatable fields and returns the stored row
func (r *JobApplicationRepository) Create(ctx context.Context, info model.CreatableJobInfo) (*model.JobApplication, error) {
	rec := model.JobApplication{CreatableJobInfo: info}

	if err := r.db.WithContext(ctx).
		Select(model.CreatableColumns).
		Clauses(clause.Returning{}).
		Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert job application: %w", err)
	}

	return &rec, nil
}

// ListAll returns every record, newest id first
func (r *JobApplicationRepository) ListAll(ctx context.Context) ([]model.JobApplication, error) {
	recs := []model.JobApplication{}

	if err := r.db.WithContext(ctx).Order("id DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}

	return recs, nil
}

// GetByID returns the record with the given id or ErrNotFound
func (r *JobApplicationRepository) GetByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	var rec model.JobApplication

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get job application %d: %w", id, err)
	}

	return &rec, nil
}

// UpdateByID overwrites all mutable fields of the record and returns it as stored
func (r *JobApplicationRepository) UpdateByID(ctx context.Context, id int64, info model.EditableJobInfo) (*model.JobApplication, error) {
	var rec model.JobApplication

	result := r.db.WithContext(ctx).
		Model(&rec).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(info.Assignments())
	if result.Error != nil {
		return nil, fmt.Errorf("update job application %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &rec, nil
}

// DeleteByID removes the record and returns its state before deletion
func (r *JobApplicationRepository) DeleteByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	var rec model.JobApplication

	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&rec)
	if result.Error != nil {
		return nil, fmt.Errorf("delete job application %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &rec, nil
}
