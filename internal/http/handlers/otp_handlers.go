package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// OTPHandlers handles the email verification flow
type OTPHandlers struct {
	otpSvc   domain.OTPService
	userRepo domain.UserRepository
}

// NewOTPHandlers creates new OTP handlers
func NewOTPHandlers(otpSvc domain.OTPService, userRepo domain.UserRepository) *OTPHandlers {
	return &OTPHandlers{
		otpSvc:   otpSvc,
		userRepo: userRepo,
	}
}

// SendOTPRequest represents an OTP send or resend request. Purpose
// defaults to registration.
type SendOTPRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Purpose string `json:"purpose,omitempty"`
}

// VerifyOTPRequest represents OTP verification request
type VerifyOTPRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Code    string `json:"code" binding:"required"`
	Purpose string `json:"purpose,omitempty"`
}

func normalizePurpose(p string) (string, bool) {
	switch p {
	case "", domain.OTPPurposeRegister:
		return domain.OTPPurposeRegister, true
	case domain.OTPPurposeReset:
		return domain.OTPPurposeReset, true
	}
	return "", false
}

// SendOTP generates and emails a one-time code
func (h *OTPHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "a valid email is required")
		return
	}

	purpose, ok := normalizePurpose(req.Purpose)
	if !ok {
		respondError(c, "unknown otp purpose")
		return
	}

	// The account must exist before any code is sent for it.
	if _, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email); err != nil {
		respondDomainError(c, err, "failed to send OTP")
		return
	}

	if _, err := h.otpSvc.Send(c.Request.Context(), req.Email, purpose); err != nil {
		respondDomainError(c, err, "failed to send OTP")
		return
	}

	respondMessage(c, "OTP sent")
}

// VerifyOTP checks a submitted code; a successful registration code
// marks the account's email verified.
func (h *OTPHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "email and code are required")
		return
	}

	purpose, ok := normalizePurpose(req.Purpose)
	if !ok {
		respondError(c, "unknown otp purpose")
		return
	}

	if err := h.otpSvc.Verify(c.Request.Context(), req.Email, purpose, req.Code); err != nil {
		respondDomainError(c, err, "OTP verification failed")
		return
	}

	if purpose == domain.OTPPurposeRegister {
		if err := h.userRepo.MarkEmailVerified(c.Request.Context(), req.Email); err != nil {
			log.Printf("EMAIL_ACTIVATION_FAILED: email=%s error=%v", req.Email, err)
			respondError(c, "failed to activate account")
			return
		}
		log.Printf("EMAIL_ACTIVATED: email=%s", req.Email)
	}

	respondMessage(c, "OTP verified")
}

// ResendOTP re-issues a code, subject to the same cooldown as SendOTP.
func (h *OTPHandlers) ResendOTP(c *gin.Context) {
	h.SendOTP(c)
}
