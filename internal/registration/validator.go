package registration

// PasswordMismatchKey is the catalog key for the password mismatch message.
const PasswordMismatchKey = "passwordMismatch"

// Mismatch reports the mismatch message key when both passwords are set and
// differ. It is advisory and never hides server-reported errors.
func Mismatch(password, confirmPassword string) (string, bool) {
	if password == "" || confirmPassword == "" {
		return "", false
	}
	if password == confirmPassword {
		return "", false
	}
	return PasswordMismatchKey, true
}

// CanSubmit reports whether the submit control is enabled.
//
// Username and email are not checked here; the user API reports them.
func CanSubmit(fields FormFields, state State) bool {
	if state == StatePending {
		return false
	}
	return fields.Password != "" && fields.Password == fields.ConfirmPassword
}
