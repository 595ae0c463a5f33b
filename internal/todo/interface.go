package todo

import "context"

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	// Resolve turns a natural-language utterance into an action batch via the
	// LLM resolver and applies it. If resolution fails the raw utterance is
	// added verbatim as a new item so user input is never lost.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)

	// List returns the given day's items in the current sort order.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Toggle flips completion of one item.
	Toggle(ctx context.Context, id string) error

	// Edit partially updates one item, preserving its ID.
	Edit(ctx context.Context, input EditInput) error

	// Delete removes one item.
	Delete(ctx context.Context, id string) error

	// Clear bulk-removes the given day's items matching the scope.
	Clear(ctx context.Context, input ClearInput) (ClearOutput, error)

	// Transcribe converts recorded audio into text.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)
}
