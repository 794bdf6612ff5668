package request

// StepStatusPatchRequest is the payload for the step transition route.
//
// Force permits the pending to completed fast-forward reserved for operators;
// without it the step must pass through in_progress.
type StepStatusPatchRequest struct {
	Status string `json:"status" binding:"required"`
	Force  bool   `json:"force"`
}
