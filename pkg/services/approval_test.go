package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"triroars-proposal/pkg/clients/mail"
	"triroars-proposal/pkg/config"
	"triroars-proposal/pkg/models"
	"triroars-proposal/pkg/signature"
)

// fakeMailClient records every Send and fails for configured recipients.
type fakeMailClient struct {
	mu      sync.Mutex
	sent    []mail.Message
	failFor map[string]error
}

func (f *fakeMailClient) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	for _, to := range msg.To {
		if err, ok := f.failFor[to]; ok {
			return err
		}
	}
	return nil
}

func (f *fakeMailClient) messages() []mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mail.Message(nil), f.sent...)
}

func testConfig() *config.Config {
	return &config.Config{
		SenderAddress:     "triroars@gmail.com",
		InternalRecipient: "triroars@gmail.com",
		SendTimeout:       time.Second,
	}
}

func signedPad(t *testing.T) *signature.Pad {
	t.Helper()
	pad := signature.NewPad(300, 150)
	pad.AddStroke(signature.Stroke{{X: 10, Y: 20}, {X: 90, Y: 60}})
	return pad
}

func TestValidationBlankNameFailsFirst(t *testing.T) {
	fake := &fakeMailClient{}
	svc := NewApprovalService(fake, testConfig())

	// Even with a bad email and empty signature, the name message wins.
	for _, name := range []string{"", "   ", "\t"} {
		res := svc.SubmitApproval(context.Background(),
			models.ClientIdentity{FullName: name, Email: "no-at-sign"},
			signature.NewPad(300, 150))
		if res.Succeeded() {
			t.Fatalf("blank name %q: expected failure", name)
		}
		if res.Kind != FailureValidation || res.Message != MsgNameRequired {
			t.Fatalf("blank name %q: got kind=%v message=%q", name, res.Kind, res.Message)
		}
	}
	if len(fake.messages()) != 0 {
		t.Fatalf("no email may be sent on validation failure")
	}
}

func TestValidationEmailNeedsAtSign(t *testing.T) {
	fake := &fakeMailClient{}
	svc := NewApprovalService(fake, testConfig())

	for _, email := range []string{"", "   ", "dana.example.com"} {
		res := svc.SubmitApproval(context.Background(),
			models.ClientIdentity{FullName: "דנה כהן", Email: email},
			signedPad(t))
		if res.Kind != FailureValidation || res.Message != MsgEmailInvalid {
			t.Fatalf("email %q: got kind=%v message=%q", email, res.Kind, res.Message)
		}
	}
}

func TestValidationSignatureCheckedLast(t *testing.T) {
	fake := &fakeMailClient{}
	svc := NewApprovalService(fake, testConfig())

	res := svc.SubmitApproval(context.Background(),
		models.ClientIdentity{FullName: "דנה כהן", Email: "dana@example.com"},
		signature.NewPad(300, 150))
	if res.Kind != FailureValidation || res.Message != MsgSignatureRequired {
		t.Fatalf("empty signature: got kind=%v message=%q", res.Kind, res.Message)
	}

	// With an invalid email too, the email check fires before the
	// signature check: the ordering is deterministic.
	res = svc.SubmitApproval(context.Background(),
		models.ClientIdentity{FullName: "דנה כהן", Email: "bad"},
		signature.NewPad(300, 150))
	if res.Message != MsgEmailInvalid {
		t.Fatalf("expected email message before signature message, got %q", res.Message)
	}
}

func TestApprovalBothSendsSucceed(t *testing.T) {
	fake := &fakeMailClient{}
	svc := NewApprovalService(fake, testConfig())

	res := svc.SubmitApproval(context.Background(),
		models.ClientIdentity{FullName: "דנה כהן", Email: "dana@example.com"},
		signedPad(t))
	if !res.Succeeded() {
		t.Fatalf("expected success, got %v (%q)", res.State, res.Message)
	}
	if res.Message != MsgApprovalSent {
		t.Fatalf("unexpected success message %q", res.Message)
	}
	if svc.State() != StateSucceeded {
		t.Fatalf("state = %v, want succeeded", svc.State())
	}

	msgs := fake.messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(msgs))
	}
	recipients := map[string]bool{}
	for _, m := range msgs {
		for _, to := range m.To {
			recipients[to] = true
		}
		if !strings.Contains(m.HTMLBody, "דנה כהן") {
			t.Fatalf("email body missing client name")
		}
		if len(m.Attachments) != 1 || !m.Attachments[0].Inline {
			t.Fatalf("each approval email carries the inline signature")
		}
	}
	if !recipients["dana@example.com"] || !recipients["triroars@gmail.com"] {
		t.Fatalf("unexpected recipients: %v", recipients)
	}
}

func TestApprovalPartialAndTotalFailure(t *testing.T) {
	cases := []struct {
		name    string
		failFor map[string]error
	}{
		{name: "client send fails", failFor: map[string]error{"dana@example.com": errors.New("smtp: boom")}},
		{name: "internal send fails", failFor: map[string]error{"triroars@gmail.com": errors.New("smtp: boom")}},
		{name: "both fail", failFor: map[string]error{
			"dana@example.com":   errors.New("smtp: boom"),
			"triroars@gmail.com": errors.New("smtp: boom"),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeMailClient{failFor: tc.failFor}
			svc := NewApprovalService(fake, testConfig())

			res := svc.SubmitApproval(context.Background(),
				models.ClientIdentity{FullName: "דנה כהן", Email: "dana@example.com"},
				signedPad(t))
			if res.Succeeded() {
				t.Fatalf("partial or total delivery failure must not succeed")
			}
			if res.Kind != FailureTransport {
				t.Fatalf("kind = %v, want transport failure", res.Kind)
			}
			if res.Message != MsgApprovalSendError {
				t.Fatalf("message = %q", res.Message)
			}
			if res.Err == nil {
				t.Fatalf("operator error missing")
			}
			if svc.State() != StateFailed {
				t.Fatalf("state = %v, want failed", svc.State())
			}
		})
	}
}

func TestApprovalResubmitAfterFailure(t *testing.T) {
	fake := &fakeMailClient{failFor: map[string]error{"dana@example.com": errors.New("smtp: boom")}}
	svc := NewApprovalService(fake, testConfig())
	identity := models.ClientIdentity{FullName: "דנה כהן", Email: "dana@example.com"}

	if res := svc.SubmitApproval(context.Background(), identity, signedPad(t)); res.Succeeded() {
		t.Fatalf("first attempt should fail")
	}

	// No automatic retry happened; the next explicit attempt succeeds.
	fake.mu.Lock()
	sent := len(fake.sent)
	fake.failFor = nil
	fake.mu.Unlock()
	if sent != 2 {
		t.Fatalf("expected exactly one attempt per recipient, got %d sends", sent)
	}

	if res := svc.SubmitApproval(context.Background(), identity, signedPad(t)); !res.Succeeded() {
		t.Fatalf("resubmit should succeed: %q", res.Message)
	}
}
