package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"triroars-proposal/pkg/clients/mail"
	"triroars-proposal/pkg/config"
	"triroars-proposal/pkg/models"
	"triroars-proposal/pkg/render"
	"triroars-proposal/pkg/signature"
)

// Localized messages surfaced by the approval workflow.
const (
	MsgNameRequired      = "נא להזין שם מלא"
	MsgEmailInvalid      = "נא להזין אימייל תקין"
	MsgSignatureRequired = "נא לחתום בשדה החתימה"
	MsgApprovalSent      = "המיילים נשלחו בהצלחה!"
	MsgApprovalSendError = "שגיאה בשליחת המיילים"
)

// ApprovalService defines the interface for the proposal approval workflow
type ApprovalService interface {
	SubmitApproval(ctx context.Context, identity models.ClientIdentity, capture signature.Capture) Result
	State() State
}

type approvalServiceImpl struct {
	mailClient mail.Client
	config     *config.Config
	now        func() time.Time

	mu    sync.Mutex
	state State
}

// NewApprovalService creates a new approval workflow service
func NewApprovalService(mailClient mail.Client, cfg *config.Config) ApprovalService {
	return &approvalServiceImpl{
		mailClient: mailClient,
		config:     cfg,
		now:        time.Now,
		state:      StateIdle,
	}
}

// State returns the workflow's current lifecycle state.
func (s *approvalServiceImpl) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *approvalServiceImpl) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// SubmitApproval runs one approval event end to end: validate, export the
// signature, render both email variants and deliver them. Both emails must
// succeed for the workflow to report success; a partial send is reported as
// failure, never as success.
func (s *approvalServiceImpl) SubmitApproval(ctx context.Context, identity models.ClientIdentity, capture signature.Capture) Result {
	s.setState(StateValidating)

	// Ordered short-circuit validation: name, then email, then signature.
	msg, ok := runChecks([]fieldCheck{
		{ok: func() bool { return strings.TrimSpace(identity.FullName) != "" }, message: MsgNameRequired},
		{ok: func() bool {
			e := strings.TrimSpace(identity.Email)
			return e != "" && strings.Contains(e, "@")
		}, message: MsgEmailInvalid},
		{ok: func() bool { return !capture.IsEmpty() }, message: MsgSignatureRequired},
	})
	if !ok {
		s.setState(StateFailed)
		return failed(FailureValidation, msg, nil)
	}

	sig, err := capture.Export()
	if err != nil {
		// Export after a passed IsEmpty check is a programmer error;
		// surface a generic failure, keep the cause in the logs.
		log.Printf("Error exporting signature: %v", err)
		s.setState(StateFailed)
		return failed(FailureInternal, MsgApprovalSendError, err)
	}

	record := models.ApprovalRecord{
		Identity:  identity,
		Signature: sig,
		Timestamp: s.now(),
	}

	internalDoc, err := render.RenderEmail(render.KindInternal, record)
	if err != nil {
		s.setState(StateFailed)
		return failed(FailureInternal, MsgApprovalSendError, err)
	}
	clientDoc, err := render.RenderEmail(render.KindClientFacing, record)
	if err != nil {
		s.setState(StateFailed)
		return failed(FailureInternal, MsgApprovalSendError, err)
	}

	s.setState(StateSending)
	log.Printf("Sending approval emails for %s (%s)", identity.FullName, identity.Email)

	// Both sends are dispatched together and jointly awaited; either
	// failure fails the whole submission.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.send(gctx, []string{s.config.InternalRecipient}, internalDoc)
	})
	g.Go(func() error {
		return s.send(gctx, []string{identity.Email}, clientDoc)
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error sending approval emails: %v", err)
		s.setState(StateFailed)
		return failed(FailureTransport, MsgApprovalSendError, err)
	}

	s.setState(StateSucceeded)
	return succeeded(MsgApprovalSent)
}

func (s *approvalServiceImpl) send(ctx context.Context, to []string, doc models.RenderedDocument) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()
	return s.mailClient.Send(ctx, mail.Message{
		To:          to,
		Subject:     doc.Subject,
		HTMLBody:    doc.HTMLBody,
		Attachments: doc.Attachments,
	})
}
