// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

// MovementModel represents the movements table in the database.
type MovementModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type             string          `gorm:"type:varchar(10);not null;index"`
	Description      string          `gorm:"type:varchar(255)"`
	IsRecurring      bool            `gorm:"not null;default:false;index"`
	Frequency        *string         `gorm:"type:varchar(10)"`
	ScheduledDate    *time.Time      `gorm:"type:date"`
	EndDate          *time.Time      `gorm:"type:date"`
	Status           *string         `gorm:"type:varchar(10);index"`
	SourceMovementID *uuid.UUID      `gorm:"type:uuid;index"`
	RemindedOn       *time.Time      `gorm:"type:date"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	DeletedAt        gorm.DeletedAt  `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the MovementModel.
func (MovementModel) TableName() string {
	return "movements"
}

// ToEntity converts a MovementModel to a domain Movement entity.
func (m *MovementModel) ToEntity() *entity.Movement {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	movement := &entity.Movement{
		ID:               m.ID,
		UserID:           m.UserID,
		CategoryID:       m.CategoryID,
		Date:             m.Date.UTC(),
		Amount:           m.Amount,
		Type:             entity.MovementType(m.Type),
		Description:      m.Description,
		IsRecurring:      m.IsRecurring,
		ScheduledDate:    utcPtr(m.ScheduledDate),
		EndDate:          utcPtr(m.EndDate),
		SourceMovementID: m.SourceMovementID,
		RemindedOn:       utcPtr(m.RemindedOn),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        deletedAt,
	}

	if m.Frequency != nil {
		frequency := entity.Frequency(*m.Frequency)
		movement.Frequency = &frequency
	}
	if m.Status != nil {
		status := entity.RecurringStatus(*m.Status)
		movement.Status = &status
	}

	return movement
}

// ToEntityWithCategory converts a MovementModel with its Category to a MovementWithCategory entity.
func (m *MovementModel) ToEntityWithCategory() *entity.MovementWithCategory {
	result := &entity.MovementWithCategory{
		Movement: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// MovementFromEntity creates a MovementModel from a domain Movement entity.
func MovementFromEntity(movement *entity.Movement) *MovementModel {
	var deletedAt gorm.DeletedAt
	if movement.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *movement.DeletedAt, Valid: true}
	}

	m := &MovementModel{
		ID:               movement.ID,
		UserID:           movement.UserID,
		CategoryID:       movement.CategoryID,
		Date:             movement.Date,
		Amount:           movement.Amount,
		Type:             string(movement.Type),
		Description:      movement.Description,
		IsRecurring:      movement.IsRecurring,
		ScheduledDate:    movement.ScheduledDate,
		EndDate:          movement.EndDate,
		SourceMovementID: movement.SourceMovementID,
		RemindedOn:       movement.RemindedOn,
		CreatedAt:        movement.CreatedAt,
		UpdatedAt:        movement.UpdatedAt,
		DeletedAt:        deletedAt,
	}

	if movement.Frequency != nil {
		frequency := string(*movement.Frequency)
		m.Frequency = &frequency
	}
	if movement.Status != nil {
		status := string(*movement.Status)
		m.Status = &status
	}

	return m
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
