package templates

// ActivationResultID is the element replaced by the activation outcome.
const ActivationResultID = "activation-result"

// ActivationStatus is the visible phase of an activation attempt.
type ActivationStatus string

const (
	ActivationStatusPending   ActivationStatus = "pending"
	ActivationStatusActivated ActivationStatus = "activated"
	ActivationStatusFailed    ActivationStatus = "failed"
)

// ActivationView is the render-ready projection of an activation attempt.
type ActivationView struct {
	Token        string
	Status       ActivationStatus
	Message      string
	LoadingLabel string
	RetryLabel   string
}

// pending reports whether activation has not been attempted yet.
func (v ActivationView) pending() bool {
	return v.Status == ActivationStatusPending || v.Status == ""
}
