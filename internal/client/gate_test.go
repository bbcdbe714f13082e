package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	identity := &Identity{}

	tests := []struct {
		name string
		in   GateInput
		want GateOutcome
	}{
		{
			name: "error wins over everything",
			in: GateInput{
				Loading:      true,
				Err:          assert.AnError,
				Identity:     identity,
				RequireAdmin: true,
				IsAdmin:      true,
			},
			want: GateOutcome{Decision: ShowError},
		},
		{
			name: "loading before identity is known",
			in:   GateInput{Loading: true},
			want: GateOutcome{Decision: ShowLoading},
		},
		{
			name: "anonymous visitor redirects to login with origin",
			in:   GateInput{From: "/books/42"},
			want: GateOutcome{Decision: RedirectLogin, Target: LoginPath, From: "/books/42"},
		},
		{
			name: "signed-in non-admin on admin surface goes home",
			in:   GateInput{Identity: identity, RequireAdmin: true, IsAdmin: false},
			want: GateOutcome{Decision: RedirectHome},
		},
		{
			name: "signed-in admin renders admin surface",
			in:   GateInput{Identity: identity, RequireAdmin: true, IsAdmin: true},
			want: GateOutcome{Decision: Render},
		},
		{
			name: "signed-in user renders plain guarded view",
			in:   GateInput{Identity: identity},
			want: GateOutcome{Decision: Render},
		},
		{
			name: "admin flag alone is not enough without identity",
			in:   GateInput{IsAdmin: true, RequireAdmin: true, From: "/admin"},
			want: GateOutcome{Decision: RedirectLogin, Target: AdminLoginPath, From: "/admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.in))
		})
	}
}
