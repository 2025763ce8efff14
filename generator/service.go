package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/alovak/sepaqr/epc"
	"github.com/alovak/sepaqr/generator/models"
)

// ErrAmbiguousRemittance is returned when a request carries both a
// structured reference and unstructured text; the payload format allows
// exactly one of the two.
var ErrAmbiguousRemittance = fmt.Errorf("%w: remittance reference and text are mutually exclusive", epc.ErrInvalidPayload)

type Service struct {
	repo *Repository
	cfg  *Config
}

func NewService(repo *Repository, cfg *Config) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
	}
}

// CreatePayload validates the request through the epc builder, stores the
// resulting record and returns it. Every validation failure wraps
// epc.ErrInvalidPayload so the API can map it to a client error.
func (s *Service) CreatePayload(ctx context.Context, req models.CreatePayload) (*models.Payload, error) {
	payload, err := buildPayload(req)
	if err != nil {
		return nil, err
	}

	record := &models.Payload{
		ID:                  uuid.New().String(),
		Version:             req.Version,
		CharacterSet:        req.CharacterSet,
		Identification:      req.Identification,
		BIC:                 req.BIC,
		Beneficiary:         req.Beneficiary,
		IBAN:                payload.IBAN(),
		Amount:              req.Amount,
		Purpose:             req.Purpose,
		RemittanceReference: req.RemittanceReference,
		RemittanceText:      req.RemittanceText,
		Information:         req.Information,
		Text:                payload.String(),
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.repo.CreatePayload(ctx, record); err != nil {
		return nil, fmt.Errorf("storing payload: %w", err)
	}

	return record, nil
}

func (s *Service) GetPayload(ctx context.Context, payloadID string) (*models.Payload, error) {
	payload, err := s.repo.GetPayload(ctx, payloadID)
	if err != nil {
		return nil, fmt.Errorf("finding payload: %w", err)
	}
	return payload, nil
}

func (s *Service) ListPayloads(ctx context.Context) ([]*models.Payload, error) {
	payloads, err := s.repo.ListPayloads(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing payloads: %w", err)
	}
	return payloads, nil
}

// RenderQR renders the stored payload text as a PNG QR symbol. The text is
// embedded in byte mode; the symbol content is exactly the payload text.
func (s *Service) RenderQR(ctx context.Context, payloadID string, size int) ([]byte, error) {
	payload, err := s.repo.GetPayload(ctx, payloadID)
	if err != nil {
		return nil, fmt.Errorf("finding payload: %w", err)
	}
	if size <= 0 {
		size = s.cfg.QRSize
	}
	png, err := qrcode.Encode(payload.Text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr: %w", err)
	}
	return png, nil
}

// buildPayload maps the wire-level request onto the epc builder. Code
// fields with unknown values fail with the same error class as the
// builder's own rules.
func buildPayload(req models.CreatePayload) (*epc.Payload, error) {
	b := epc.NewBuilder()

	if req.Version != "" {
		version, err := epc.ParseVersion(req.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", epc.ErrInvalidPayload, err)
		}
		b.Version(version)
	}
	if req.CharacterSet != "" {
		characterSet, err := epc.ParseCharacterSet(req.CharacterSet)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", epc.ErrInvalidPayload, err)
		}
		b.CharacterSet(characterSet)
	}
	if req.Identification != "" {
		identification, err := epc.ParseIdentification(req.Identification)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", epc.ErrInvalidPayload, err)
		}
		b.Identification(identification)
	}

	b.BIC(req.BIC)
	b.Beneficiary(req.Beneficiary)
	b.IBAN(req.IBAN)
	b.Amount(req.Amount)
	b.Purpose(epc.Purpose(req.Purpose))
	b.Information(req.Information)

	switch {
	case req.RemittanceReference != "" && req.RemittanceText != "":
		return nil, ErrAmbiguousRemittance
	case req.RemittanceReference != "":
		b.Remittance(epc.RemittanceReference(req.RemittanceReference))
	case req.RemittanceText != "":
		b.Remittance(epc.RemittanceText(req.RemittanceText))
	}

	return b.Build()
}
