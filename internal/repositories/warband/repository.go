// Package warband provides the interface for saved-warband persistence
package warband

//go:generate mockgen -destination=mock/mock_repository.go -package=warbandmock github.com/warbandforge/warband-api/internal/repositories/warband Repository

import (
	"context"
	"time"

	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// Record is the stored envelope around a warband.
type Record struct {
	Warband   wb.Warband `json:"warband"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Repository defines the interface for saved-warband persistence
type Repository interface {
	// Create stores a new warband
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a warband with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a warband by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the warband doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing warband
	// Returns errors.NotFound if the warband doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a warband by ID
	// Returns errors.NotFound if the warband doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves saved warbands, optionally narrowed to one faction
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for storing a warband
type CreateInput struct {
	Warband *wb.Warband
}

// CreateOutput defines the output for storing a warband
type CreateOutput struct {
	Record *Record
}

// GetInput defines the input for getting a warband
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a warband
type GetOutput struct {
	Record *Record
}

// UpdateInput defines the input for updating a warband
type UpdateInput struct {
	Warband *wb.Warband
}

// UpdateOutput defines the output for updating a warband
type UpdateOutput struct {
	Record *Record
}

// DeleteInput defines the input for deleting a warband
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a warband
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing warbands. An empty FactionID
// lists the whole collection.
type ListInput struct {
	FactionID string
}

// ListOutput defines the output for listing warbands
type ListOutput struct {
	Records []*Record
}
