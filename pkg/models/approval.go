package models

import "time"

// ApprovalRequest is the data structure coming from the proposal approval form
type ApprovalRequest struct {
	ClientName       string `json:"clientName"`
	ClientEmail      string `json:"clientEmail"`
	SignatureDataURL string `json:"signatureDataUrl"`
}

// ClientIdentity holds the identity fields a client submits with an approval.
// Immutable once submitted; never stored beyond the lifetime of the request.
type ClientIdentity struct {
	FullName      string
	Email         string
	LicenseNumber string
	Address       string
}

// SignatureImage is an exported freehand signature, carried as a PNG data URI
// alongside the decoded image bytes.
type SignatureImage struct {
	DataURL string
	Bytes   []byte
}

// ApprovalRecord captures a single approval event: who approved, with what
// signature, and when. Constructed once at submission time and passed by
// value from there on.
type ApprovalRecord struct {
	Identity  ClientIdentity
	Signature SignatureImage
	Timestamp time.Time
}

// APIResponse is the wire shape every endpoint answers with
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
