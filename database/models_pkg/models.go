// Package models_pkg holds the persisted data models. It is kept separate
// from the database package so that callers can share the types without
// importing the GORM wiring.
package models_pkg

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Country is one tradeable country instrument.
type Country struct {
	Code            string          `gorm:"primaryKey;size:2" json:"code"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	CurrentPrice    decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"currentPrice"`
	PreviousPrice   decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"previousPrice"`
	AvailableShares int64           `gorm:"not null" json:"availableShares"`
	TotalShares     int64           `gorm:"not null" json:"totalShares"`
	IsPreSale       bool            `gorm:"not null" json:"isPreSale"`
	PreSaleProgress float64         `gorm:"type:decimal(6,2);not null" json:"preSaleProgress"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Country
func (Country) TableName() string {
	return "countries"
}

// Price returns the current price as a float.
func (c Country) Price() float64 {
	f, _ := c.CurrentPrice.Float64()
	return f
}

// NewsItem is an ingested headline. CountryCode is nil when no country was
// detected in the text.
type NewsItem struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	CountryCode *string        `gorm:"size:2;index" json:"countryCode"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Content     string         `gorm:"type:text" json:"content"`
	Source      string         `gorm:"size:100;index" json:"source"`
	Link        string         `gorm:"type:text" json:"link"`
	Categories  pq.StringArray `gorm:"type:text[]" json:"categories"`
	Timestamp   time.Time      `gorm:"index;not null" json:"timestamp"`
}

// TableName specifies the table name for NewsItem
func (NewsItem) TableName() string {
	return "news_items"
}

// Text is the string the categorizer reads: title and content joined.
func (n NewsItem) Text() string {
	if n.Content == "" {
		return n.Title
	}
	return n.Title + " " + n.Content
}

// Country returns the detected country code or "".
func (n NewsItem) Country() string {
	if n.CountryCode == nil {
		return ""
	}
	return *n.CountryCode
}
