// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/domain/grocery"
	"github.com/platewise/platewise/internal/domain/mealplan"
	"gorm.io/gorm"
)

// ShoppingListModel represents the GORM model for the active shopping
// list. One row per user; Version backs the optimistic-locking writes.
type ShoppingListModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version   int64     `gorm:"default:1"`
	Items     ItemsJSON `gorm:"type:json"`
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// PantryModel represents the GORM model for the active pantry
type PantryModel struct {
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version   int64     `gorm:"default:1"`
	Items     ItemsJSON `gorm:"type:json"`
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (PantryModel) TableName() string {
	return "pantries"
}

// SavedListModel represents the GORM model for saved-list templates
type SavedListModel struct {
	ID          uuid.UUID       `gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:char(36);not null;index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	IsPublic    bool            `gorm:"default:false;index"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Items       IngredientsJSON `gorm:"type:json"`
	PlanDetails PlanJSON        `gorm:"type:json"`
	ItemCount   int             `gorm:"default:0"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (SavedListModel) TableName() string {
	return "saved_lists"
}

// BeforeCreate hook for SavedListModel
func (m *SavedListModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ItemsJSON stores aggregated list items as a JSON column
type ItemsJSON []grocery.Item

// Scan implements the sql.Scanner interface
func (i *ItemsJSON) Scan(value interface{}) error {
	if value == nil {
		*i = ItemsJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into ItemsJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (i ItemsJSON) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// IngredientsJSON stores raw ingredients as a JSON column
type IngredientsJSON []grocery.Ingredient

// Scan implements the sql.Scanner interface
func (i *IngredientsJSON) Scan(value interface{}) error {
	if value == nil {
		*i = IngredientsJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into IngredientsJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (i IngredientsJSON) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// PlanJSON stores day plans as a JSON column
type PlanJSON []mealplan.DayPlan

// Scan implements the sql.Scanner interface
func (p *PlanJSON) Scan(value interface{}) error {
	if value == nil {
		*p = PlanJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PlanJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (p PlanJSON) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Migrate runs auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ShoppingListModel{},
		&PantryModel{},
		&SavedListModel{},
	)
}
