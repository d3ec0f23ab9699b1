// Package persistence implements the key registry on top of GORM.
// SQLite and PostgreSQL are supported through their GORM drivers.
package persistence
