package qrcode

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"

	"farmdesk/config"
	"farmdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	invitationQRType  = "invitation"
	invitationPathTag = "invitations"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData is encoded when no app base URL is configured.
type QRCodeData struct {
	InvitationID string `json:"invitation_id"`
	Type         string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. With a baseURL the
// code carries a link to <baseURL>/invitations/<id>; otherwise a JSON payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProvideQRCodeService builds the service from the qrcode config section.
func ProvideQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateInvitationQR renders the invitation's QR code as PNG.
func (s *qrcodeService) GenerateInvitationQR(invitationID uuid.UUID) ([]byte, error) {
	content, err := s.content(invitationID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(invitationID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/" + invitationPathTag + "/" + invitationID.String(), nil
	}

	jsonData, err := json.Marshal(QRCodeData{
		InvitationID: invitationID.String(),
		Type:         invitationQRType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(jsonData), nil
}

// ParseInvitationQR accepts either form GenerateInvitationQR produces.
func (s *qrcodeService) ParseInvitationQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, "{") {
		var data QRCodeData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
		}
		if data.Type != invitationQRType {
			return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
		}

		return parseInvitationID(data.InvitationID)
	}

	link, err := url.Parse(qrData)
	if err != nil || link.Scheme == "" {
		return uuid.Nil, fmt.Errorf("unrecognized QR code content")
	}

	dir, id := path.Split(strings.TrimRight(link.Path, "/"))
	if path.Base(dir) != invitationPathTag {
		return uuid.Nil, fmt.Errorf("QR code link is not an invitation: %s", link.Path)
	}

	return parseInvitationID(id)
}

func parseInvitationID(raw string) (uuid.UUID, error) {
	invitationID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse invitation ID: %w", err)
	}

	return invitationID, nil
}
