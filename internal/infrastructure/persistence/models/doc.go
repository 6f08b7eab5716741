// Package models holds the GORM row types for stored messages. Rows convert to and from
// domain messages so that gorm tags stay out of the domain layer.
package models
