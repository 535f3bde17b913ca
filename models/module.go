package models

// Module is a unit of learning material: a titled body of content that quiz
// questions can be attached to.
//
// Modules are created by seeding or administrative tooling, never through the
// public API; the API only lists and reads them.
type Module struct {
	// ModuleID is the internal unique identifier of the module, assigned by
	// the persistence layer on creation.
	ModuleID int64 `json:"module_id"`

	// Title is the short human-readable name of the module.
	Title string `json:"title"`

	// Description is a one-or-two sentence summary shown in listings.
	Description string `json:"description"`

	// Content is the full text body of the learning material.
	Content string `json:"content"`
}

// TableName returns the name of the database table
// associated with the Module model.
func (m Module) TableName() string {
	return "modules"
}
