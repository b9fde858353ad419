package cardform

import (
	"context"
	"errors"
	"testing"

	"github.com/devendraInfograins/CardApp/internal/models"
)

type stubCreator struct {
	payloads []models.CardInfo
	err      error
}

func (s *stubCreator) CreateCardType(_ context.Context, info models.CardInfo) (*models.CardInfo, error) {
	s.payloads = append(s.payloads, info)
	if s.err != nil {
		return nil, s.err
	}
	created := info
	created.ID = 1
	return &created, nil
}

func TestSubmitAppliesDefaults(t *testing.T) {
	form := NewForm()
	form.Draft.CardName = "Corporate Visa"
	form.Draft.CardTypeID = "330009"

	creator := &stubCreator{}
	created, errSubmit := form.Submit(context.Background(), creator)
	if errSubmit != nil {
		t.Fatalf("submit: %v", errSubmit)
	}
	if created.ID == 0 {
		t.Fatal("expected the created record back")
	}

	if len(creator.payloads) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(creator.payloads))
	}
	payload := creator.payloads[0]
	if payload.Organization != "Visa" || payload.Type != "Physical" || payload.Status != "online" {
		t.Fatalf("expected defaults in payload, got org=%s type=%s status=%s", payload.Organization, payload.Type, payload.Status)
	}
	if !payload.NeedCardHolder {
		t.Fatal("expected needCardHolder default true")
	}
	if payload.EnableWithdraw {
		t.Fatal("expected enableWithdraw default false")
	}
	if payload.RechargeMinQuota != "10" || payload.RechargeMaxQuota != "1000000" {
		t.Fatalf("expected quota defaults, got min=%s max=%s", payload.RechargeMinQuota, payload.RechargeMaxQuota)
	}
}

func TestSubmitResetsOnSuccessOnly(t *testing.T) {
	form := NewForm()
	form.Draft.CardName = "Corporate Visa"
	form.Draft.CardTypeID = "330009"
	form.Draft.Organization = "Mastercard"

	creator := &stubCreator{err: errors.New("cardTypeId already exists")}
	if _, errSubmit := form.Submit(context.Background(), creator); errSubmit == nil {
		t.Fatal("expected submit failure")
	}
	if form.Draft.CardName != "Corporate Visa" || form.Draft.Organization != "Mastercard" {
		t.Fatal("expected draft preserved after failure")
	}

	creator.err = nil
	if _, errSubmit := form.Submit(context.Background(), creator); errSubmit != nil {
		t.Fatalf("submit: %v", errSubmit)
	}
	if form.Draft.CardName != "" || form.Draft.Organization != "Visa" {
		t.Fatalf("expected draft reset to defaults, got name=%q org=%q", form.Draft.CardName, form.Draft.Organization)
	}
}

func TestSubmitRequiresNameAndTypeID(t *testing.T) {
	form := NewForm()
	form.Draft.CardName = "  "

	creator := &stubCreator{}
	if _, errSubmit := form.Submit(context.Background(), creator); !errors.Is(errSubmit, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", errSubmit)
	}
	if len(creator.payloads) != 0 {
		t.Fatal("expected no submission for an incomplete draft")
	}
}
