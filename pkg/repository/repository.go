// Package repository declares the persistence ports used by the services.
// Adapters live under infra/repository.
package repository
