package api

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"triroars-proposal/pkg/models"
	"triroars-proposal/pkg/services"
	"triroars-proposal/pkg/signature"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	approvalService services.ApprovalService
	contractService services.ContractService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(approvalService services.ApprovalService, contractService services.ContractService) *Handlers {
	return &Handlers{
		approvalService: approvalService,
		contractService: contractService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}

// HandleSendApproval processes a proposal approval: validates the submitted
// identity and signature, then dispatches the internal and client emails.
func (h *Handlers) HandleSendApproval(c *gin.Context) {
	var req models.ApprovalRequest

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: services.MsgMissingDetails})
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: services.MsgMissingDetails})
		return
	}

	if req.ClientName == "" || req.ClientEmail == "" || req.SignatureDataURL == "" {
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: services.MsgMissingDetails})
		return
	}

	identity := models.ClientIdentity{
		FullName: req.ClientName,
		Email:    req.ClientEmail,
	}
	capture := signature.FromDataURL(req.SignatureDataURL)

	// The send is detached from the request context: a client closing the
	// dialog mid-send must not produce a half-delivered email pair.
	result := h.approvalService.SubmitApproval(context.WithoutCancel(c.Request.Context()), identity, capture)
	respond(c, result)
}

// HandleSendContract processes a signed contract: one consolidated email
// carrying both signature images and the pre-rendered PDF.
func (h *Handlers) HandleSendContract(c *gin.Context) {
	var req models.ContractRequest

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: services.MsgMissingDetails})
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: services.MsgMissingDetails})
		return
	}

	result := h.contractService.SubmitContract(context.WithoutCancel(c.Request.Context()), req)
	respond(c, result)
}

// respond maps a workflow result onto the wire: validation problems are the
// caller's fault (400), everything else that failed is ours (500). Only the
// localized message reaches the user; the cause stays in the logs.
func respond(c *gin.Context, result services.Result) {
	if result.Succeeded() {
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Message: result.Message})
		return
	}
	status := http.StatusInternalServerError
	if result.Kind == services.FailureValidation {
		status = http.StatusBadRequest
	}
	c.JSON(status, models.APIResponse{Success: false, Message: result.Message})
}
