// Package model holds the value objects shared by adapters, domain and controllers.
package model

// Path represents a file system path.
type Path string
