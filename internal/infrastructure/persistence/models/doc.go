// Package models contains the GORM models of the key registry.
// They are kept apart from the domain entities and converted with ToDomain/FromDomain.
package models
