package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"triroars-proposal/pkg/models"
)

// InlineSignatureCID is the Content-ID of the signature image embedded in
// the approval emails. The body markup and the attachment both use this one
// constant; the document breaks silently if the two ever diverge.
const InlineSignatureCID = "signature"

// SignatureAttachmentName is the filename of the inline signature image.
const SignatureAttachmentName = "signature.png"

// ErrMissingRequiredField is returned by RenderContract when the client's
// full name or email is blank. The workflow validates these first, but the
// contract can be rendered from a standalone entry point, so the renderer
// defends independently.
var ErrMissingRequiredField = errors.New("missing required field")

// EmailKind selects which approval email template to render.
type EmailKind int

const (
	// KindInternal is the copy sent to the Triroars team.
	KindInternal EmailKind = iota
	// KindClientFacing is the confirmation sent to the client.
	KindClientFacing
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"shekels": formatThousands,
	"orBlank": orBlank,
}).ParseFS(templateFS, "templates/*.tmpl"))

type emailData struct {
	ClientName    string
	ClientEmail   string
	Date          string
	SignatureSrc  template.URL
	ProjectName   string
	TotalCost     int
	DurationWeeks int
}

// RenderEmail builds one of the two approval email variants from an
// approval record. Pure: identical records produce byte-identical documents.
// Both variants reference the client signature via InlineSignatureCID and
// carry it as an inline attachment under the same identifier.
func RenderEmail(kind EmailKind, rec models.ApprovalRecord) (models.RenderedDocument, error) {
	data := emailData{
		ClientName:    rec.Identity.FullName,
		ClientEmail:   rec.Identity.Email,
		Date:          FormatApprovalDate(rec.Timestamp),
		SignatureSrc:  template.URL("cid:" + InlineSignatureCID),
		ProjectName:   ProjectName,
		TotalCost:     DevelopmentTotalCost,
		DurationWeeks: ProjectDurationWeeks,
	}

	var name, subject string
	switch kind {
	case KindInternal:
		name = "internal_email.html.tmpl"
		subject = fmt.Sprintf("🎉 הצעת מחיר אושרה - %s", rec.Identity.FullName)
	case KindClientFacing:
		name = "client_email.html.tmpl"
		subject = fmt.Sprintf("✨ אישור הצעת מחיר - %s", ProjectName)
	default:
		return models.RenderedDocument{}, fmt.Errorf("unknown email kind: %d", kind)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return models.RenderedDocument{}, fmt.Errorf("error rendering %s: %w", name, err)
	}

	return models.RenderedDocument{
		Subject:  subject,
		HTMLBody: buf.String(),
		Attachments: []models.Attachment{{
			Filename:    SignatureAttachmentName,
			Content:     rec.Signature.Bytes,
			ContentID:   InlineSignatureCID,
			ContentType: "image/png",
			Inline:      true,
		}},
	}, nil
}

type contractTemplateData struct {
	Form         models.ContractForm
	ContractDate string

	DeveloperSignatureSrc template.URL
	ClientSignatureSrc    template.URL

	ProjectName   string
	TotalCost     int
	TotalHours    int
	DurationWeeks int
	Maintenance   int
	Tech          string

	CostItems  []CostItem
	Milestones []PaymentMilestone
	Tiers      []UsageTier
	Stages     []WorkStage
	Goals      []string
}

// RenderContract builds the full software development agreement as a single
// continuous HTML document: header, party block, eleven numbered clauses,
// the marketing appendices and the side-by-side signature block. Pure
// function of its input; blank optional fields render as underscores.
func RenderContract(data models.ContractData) (models.RenderedDocument, error) {
	if strings.TrimSpace(data.Form.ClientFullName) == "" {
		return models.RenderedDocument{}, fmt.Errorf("%w: clientFullName", ErrMissingRequiredField)
	}
	if strings.TrimSpace(data.Form.ClientEmail) == "" {
		return models.RenderedDocument{}, fmt.Errorf("%w: clientEmail", ErrMissingRequiredField)
	}

	form := data.Form
	if form.DeveloperName == "" {
		form.DeveloperName = DeveloperName
	}
	if form.DeveloperLicense == "" {
		form.DeveloperLicense = DeveloperLicense
	}
	if form.DeveloperAddress == "" {
		form.DeveloperAddress = DeveloperAddress
	}

	td := contractTemplateData{
		Form:                  form,
		ContractDate:          form.ContractDate,
		DeveloperSignatureSrc: template.URL(data.DeveloperSignature.DataURL),
		ClientSignatureSrc:    template.URL(data.ClientSignature.DataURL),
		ProjectName:           ProjectName,
		TotalCost:             DevelopmentTotalCost,
		TotalHours:            DevelopmentTotalHours,
		DurationWeeks:         ProjectDurationWeeks,
		Maintenance:           MonthlyMaintenanceCost,
		Tech:                  TechnologyStack,
		CostItems:             DevelopmentCostItems,
		Milestones:            PaymentMilestones,
		Tiers:                 UsageTiers,
		Stages:                WorkStages,
		Goals:                 ProjectGoals,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "contract.html.tmpl", td); err != nil {
		return models.RenderedDocument{}, fmt.Errorf("error rendering contract: %w", err)
	}

	return models.RenderedDocument{
		Subject:  fmt.Sprintf("📄 הסכם פיתוח תוכנה חתום - %s", form.ClientFullName),
		HTMLBody: buf.String(),
	}, nil
}

// formatThousands renders 33000 as "33,000".
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// orBlank substitutes placeholder underscores for blank form fields, so the
// printed contract leaves room to fill them in by hand.
func orBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return "________"
	}
	return s
}
