package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInvitationQR renders a PNG encoding the accept link of an invitation.
	GenerateInvitationQR(invitationID uuid.UUID) ([]byte, error)

	// ParseInvitationQR extracts the invitation id from scanned QR content.
	ParseInvitationQR(qrData string) (uuid.UUID, error)
}
