// Package domain contains the core business entities and domain logic of
// the application, independent of any specific delivery mechanism or
// storage implementation.
package domain
