// Package domain holds what every board package shares: the sentinel errors
// adapters map to status codes and the per-field ValidationError. Cards live
// in domain/project, the store in domain/board.
package domain
