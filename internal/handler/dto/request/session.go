package request

// UpdateSessionStateRequest carries a partial dialog-slot update. Keys are
// validated in the usecase layer so unknown slots fail uniformly no matter
// which transport delivered them.
type UpdateSessionStateRequest struct {
	Patch map[string]any `json:"patch" binding:"required"`
}
