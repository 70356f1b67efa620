package templates

const (
	// SignupFormID is the swap target for form submissions.
	SignupFormID = "signup-form"
	// SignupSubmitID identifies the submit button for out-of-band updates.
	SignupSubmitID = "signup-submit"
)

// SignupField is one labelled input of the sign-up form.
type SignupField struct {
	Name        string
	Label       string
	Placeholder string
	Type        string
	Value       string
	Error       string
}

// SignupView is the render-ready projection of a form session.
type SignupView struct {
	Heading     string
	Fields      []SignupField
	SubmitLabel string
	CanSubmit   bool
	Pending     bool
	Succeeded   bool
	Notice      string
}

func (f SignupField) invalid() bool {
	return f.Error != ""
}

func (f SignupField) inputType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

func feedbackID(name string) string {
	return name + "-feedback"
}
