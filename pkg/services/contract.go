package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/vincent-petithory/dataurl"

	"triroars-proposal/pkg/assets"
	"triroars-proposal/pkg/clients/mail"
	"triroars-proposal/pkg/config"
	"triroars-proposal/pkg/models"
	"triroars-proposal/pkg/render"
	"triroars-proposal/pkg/signature"
	"triroars-proposal/pkg/utils"
)

// Localized messages surfaced by the contract workflow.
const (
	MsgClientNameRequired      = "נא למלא את שם הלקוח"
	MsgClientEmailRequired     = "נא למלא את אימייל הלקוח"
	MsgClientSignatureRequired = "נא לחתום בשדה חתימת הלקוח"
	MsgMissingDetails          = "חסרים פרטים נדרשים"
	MsgContractSent            = "ההסכם נשלח בהצלחה!"
	MsgContractSendError       = "שגיאה בשליחת ההסכם"
	MsgAssetLoadError          = "שגיאה בטעינת חתימת המפתח"
)

// ContractPDFPrefix prefixes the generated contract PDF filename; the client
// name is appended after sanitization.
const ContractPDFPrefix = "הסכם_פיתוח_"

// ContractService defines the interface for the signed-contract workflow
type ContractService interface {
	SubmitContract(ctx context.Context, req models.ContractRequest) Result
	State() State
}

type contractServiceImpl struct {
	mailClient   mail.Client
	devSignature *assets.DeveloperSignature
	config       *config.Config
	now          func() time.Time

	mu    sync.Mutex
	state State
}

// NewContractService creates a new contract workflow service
func NewContractService(mailClient mail.Client, devSignature *assets.DeveloperSignature, cfg *config.Config) ContractService {
	return &contractServiceImpl{
		mailClient:   mailClient,
		devSignature: devSignature,
		config:       cfg,
		now:          time.Now,
		state:        StateIdle,
	}
}

// State returns the workflow's current lifecycle state.
func (s *contractServiceImpl) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *contractServiceImpl) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// SubmitContract runs one contract signing end to end: validate the form,
// resolve both signature images, render the agreement and deliver a single
// consolidated email carrying the developer signature, the client signature
// and the pre-rendered PDF. The PDF already embeds both signatures, so
// partial delivery is not meaningfully separable; it is one send.
func (s *contractServiceImpl) SubmitContract(ctx context.Context, req models.ContractRequest) Result {
	s.setState(StateValidating)

	clientSig := signature.FromDataURL(req.ClientSignature)
	msg, ok := runChecks([]fieldCheck{
		{ok: func() bool { return strings.TrimSpace(req.FormData.ClientFullName) != "" }, message: MsgClientNameRequired},
		{ok: func() bool { return strings.TrimSpace(req.FormData.ClientEmail) != "" }, message: MsgClientEmailRequired},
		{ok: func() bool { return !clientSig.IsEmpty() }, message: MsgClientSignatureRequired},
		{ok: func() bool { return strings.TrimSpace(req.PDFBase64) != "" }, message: MsgMissingDetails},
	})
	if !ok {
		s.setState(StateFailed)
		return failed(FailureValidation, msg, nil)
	}

	clientImage, err := clientSig.Export()
	if err != nil {
		s.setState(StateFailed)
		return failed(FailureValidation, MsgMissingDetails, err)
	}

	// A truncated or malformed PDF is rejected up front; no send is
	// attempted with a broken artifact.
	pdf, err := dataurl.DecodeString(req.PDFBase64)
	if err != nil {
		s.setState(StateFailed)
		return failed(FailureValidation, MsgMissingDetails, fmt.Errorf("error decoding contract PDF: %w", err))
	}

	devImage, err := s.developerSignature(req.DeveloperSignature)
	if err != nil {
		// The contract must never go out with a blank developer
		// signature; a missing asset blocks the send entirely.
		log.Printf("Error loading developer signature: %v", err)
		s.setState(StateFailed)
		return failed(FailureInternal, MsgAssetLoadError, err)
	}

	form := req.FormData
	if strings.TrimSpace(form.ContractDate) == "" {
		form.ContractDate = render.FormatContractDate(s.now())
	}

	doc, err := render.RenderContract(models.ContractData{
		Form:               form,
		DeveloperSignature: devImage,
		ClientSignature:    clientImage,
	})
	if err != nil {
		s.setState(StateFailed)
		return failed(FailureValidation, MsgMissingDetails, err)
	}

	pdfName := ContractPDFPrefix + utils.SanitizeFilename(form.ClientFullName) + ".pdf"
	doc.Attachments = append(doc.Attachments,
		models.Attachment{
			Filename:    "developer-signature" + utils.ExtensionFor(contentType(devImage.DataURL, "image/jpeg")),
			Content:     devImage.Bytes,
			ContentType: contentType(devImage.DataURL, "image/jpeg"),
		},
		models.Attachment{
			Filename:    "client-signature.png",
			Content:     clientImage.Bytes,
			ContentType: "image/png",
		},
		models.Attachment{
			Filename:    pdfName,
			Content:     pdf.Data,
			ContentType: "application/pdf",
		},
	)

	s.setState(StateSending)
	log.Printf("Sending signed contract for %s (%s)", form.ClientFullName, form.ClientEmail)

	sendCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()
	err = s.mailClient.Send(sendCtx, mail.Message{
		To:          []string{form.ClientEmail, s.config.InternalRecipient},
		Subject:     doc.Subject,
		HTMLBody:    doc.HTMLBody,
		Attachments: doc.Attachments,
	})
	if err != nil {
		log.Printf("Error sending contract email: %v", err)
		s.setState(StateFailed)
		return failed(FailureTransport, MsgContractSendError, err)
	}

	s.setState(StateSucceeded)
	return succeeded(MsgContractSent)
}

// developerSignature resolves the developer party's signature: the one the
// page already posted when present, the fixed asset otherwise.
func (s *contractServiceImpl) developerSignature(posted string) (models.SignatureImage, error) {
	if strings.TrimSpace(posted) != "" {
		du, err := dataurl.DecodeString(posted)
		if err != nil {
			return models.SignatureImage{}, fmt.Errorf("error decoding developer signature: %w", err)
		}
		return models.SignatureImage{DataURL: posted, Bytes: du.Data}, nil
	}
	return s.devSignature.Load()
}

// contentType extracts the media type of a data URI, falling back when it
// cannot be parsed.
func contentType(dataURL, fallback string) string {
	du, err := dataurl.DecodeString(dataURL)
	if err != nil {
		return fallback
	}
	return du.MediaType.ContentType()
}
