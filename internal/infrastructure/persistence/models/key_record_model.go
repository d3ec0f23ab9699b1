package models

import (
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
)

// KeyRecordModel is the GORM database model for recorded key halves
type KeyRecordModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	KeyPairID       string    `gorm:"not null;index;type:varchar(36)"`
	Type            string    `gorm:"not null;index;type:varchar(10)"`
	KeyString       string    `gorm:"not null;type:char(20)"`
	Exponent        uint64    `gorm:"not null"`
	Modulus         uint64    `gorm:"not null;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyRecordModel) TableName() string {
	return "key_records"
}

// ToDomain converts GORM model to domain entity
func (m *KeyRecordModel) ToDomain() *textbook.KeyRecord {
	return &textbook.KeyRecord{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Type:            m.Type,
		KeyString:       m.KeyString,
		Exponent:        m.Exponent,
		Modulus:         m.Modulus,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyRecordModel) FromDomain(r *textbook.KeyRecord) {
	m.ID = r.ID
	m.KeyPairID = r.KeyPairID
	m.Type = r.Type
	m.KeyString = r.KeyString
	m.Exponent = r.Exponent
	m.Modulus = r.Modulus
	m.DateTimeCreated = r.DateTimeCreated
}
