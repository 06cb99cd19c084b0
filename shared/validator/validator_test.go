package validator_test

import (
	"strings"
	"testing"

	"luxehotel/shared/validator"
)

type sampleRequest struct {
	RoomID        string `json:"room_id"        validate:"required,max=50"`
	Email         string `json:"email"          validate:"omitempty,email"`
	GuestCount    int    `json:"guest_count"    validate:"omitempty,min=1,max=20"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=credit-card debit-card paypal"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload",
			body: `{"room_id":"suite","email":"jane@example.com","guest_count":2,"payment_method":"paypal"}`,
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing required field",
			body:    `{"email":"jane@example.com"}`,
			wantErr: "RoomID is required",
		},
		{
			name:    "invalid email",
			body:    `{"room_id":"suite","email":"not-an-email"}`,
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "guest count over limit",
			body:    `{"room_id":"suite","guest_count":50}`,
			wantErr: "GuestCount must be less than or equal to 20",
		},
		{
			name:    "unknown payment method",
			body:    `{"room_id":"suite","payment_method":"cash"}`,
			wantErr: "PaymentMethod must be one of credit-card debit-card paypal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req sampleRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("jane@example.com", "email"); err != nil {
		t.Errorf("unexpected error for valid email: %v", err)
	}

	if err := validator.ValidateVar("jane-at-example", "email"); err == nil {
		t.Error("expected an error for invalid email")
	}
}
