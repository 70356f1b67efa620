package signup

import (
	"github.com/louisbranch/hoaxify/internal/registration"
	webi18n "github.com/louisbranch/hoaxify/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/hoaxify/internal/services/web/templates"
)

// buildView projects a controller snapshot into render-ready copy for loc.
//
// Server-reported messages are shown as received; the API localizes them
// from Accept-Language. The mismatch message sits under the confirmation
// field and never replaces a server message.
func buildView(snap registration.Snapshot, loc webi18n.Localizer) webtemplates.SignupView {
	fields := make([]webtemplates.SignupField, 0, len(registration.Fields()))
	for _, field := range registration.Fields() {
		name := string(field)
		item := webtemplates.SignupField{
			Name:        name,
			Label:       webtemplates.T(loc, name),
			Placeholder: webtemplates.T(loc, name+"Placeholder"),
			Value:       snap.Fields.Value(field),
			Error:       snap.Error(field),
		}
		if field == registration.FieldPassword || field == registration.FieldConfirmPassword {
			item.Type = "password"
		}
		if field == registration.FieldConfirmPassword && item.Error == "" && snap.MismatchKey != "" {
			item.Error = webtemplates.T(loc, snap.MismatchKey)
		}
		fields = append(fields, item)
	}
	return webtemplates.SignupView{
		Heading:     webtemplates.T(loc, "signUp"),
		Fields:      fields,
		SubmitLabel: webtemplates.T(loc, "submit"),
		CanSubmit:   snap.CanSubmit,
		Pending:     snap.State == registration.StatePending,
		Succeeded:   snap.State == registration.StateSucceeded,
		Notice:      webtemplates.T(loc, "accountActivationNotification"),
	}
}
