// File: doc.go
// Role: package-level overview for core.
package core
