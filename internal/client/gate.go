package client

// Decision is what a guarded view should do for the current state.
type Decision int

const (
	// ShowLoading renders the loading indicator.
	ShowLoading Decision = iota
	// ShowError renders the error surface.
	ShowError
	// RedirectLogin sends the visitor to the sign-in page, carrying the
	// originally requested path so it can be restored afterwards.
	RedirectLogin
	// RedirectHome sends a signed-in but under-privileged user home.
	RedirectHome
	// Render shows the guarded view.
	Render
)

// GateInput is everything the gate looks at. It is a plain value so the
// decision stays a pure function of its inputs.
type GateInput struct {
	Loading      bool
	Err          error
	Identity     *Identity
	RequireAdmin bool
	IsAdmin      bool
	From         string
}

// Sign-in pages a RedirectLogin outcome can point at. Admin surfaces
// get their own login page.
const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin/login"
)

// GateOutcome carries the decision, the login page to use, and the
// path to restore after a login redirect.
type GateOutcome struct {
	Decision Decision
	Target   string
	From     string
}

// Decide resolves access for a guarded view. Errors win over loading so
// a failed session lookup is surfaced instead of spinning forever; an
// unknown admin state never renders the admin surface.
func Decide(in GateInput) GateOutcome {
	if in.Err != nil {
		return GateOutcome{Decision: ShowError}
	}
	if in.Loading {
		return GateOutcome{Decision: ShowLoading}
	}
	if in.Identity == nil {
		target := LoginPath
		if in.RequireAdmin {
			target = AdminLoginPath
		}
		return GateOutcome{Decision: RedirectLogin, Target: target, From: in.From}
	}
	if in.RequireAdmin && !in.IsAdmin {
		return GateOutcome{Decision: RedirectHome}
	}
	return GateOutcome{Decision: Render}
}
