// Package services contains stateless domain services that implement
// business rules spanning more than one entity.
package services
