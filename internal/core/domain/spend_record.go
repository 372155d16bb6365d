package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendType classifies a spend record.
type SpendType string

const (
	SpendImpression       SpendType = "impression"
	SpendClick            SpendType = "click"
	SpendManualAdjustment SpendType = "manual_adjustment"
	SpendBudgetReset      SpendType = "budget_reset"
)

// SpendSource names where a spend event came from.
type SpendSource string

const (
	SourceSystem SpendSource = "system"
	SourceManual SpendSource = "manual"
	SourceAPI    SpendSource = "api"
	SourceImport SpendSource = "import"
)

// SpendRecord is an immutable, append-only ledger entry. Before and after
// values capture both counters of the campaign around the event.
type SpendRecord struct {
	ID                 int64
	CampaignID         int64
	Amount             decimal.Decimal
	Type               SpendType
	Source             SpendSource
	CreatedBy          string
	ReferenceID        string
	Description        string
	DailySpendBefore   decimal.Decimal
	DailySpendAfter    decimal.Decimal
	MonthlySpendBefore decimal.Decimal
	MonthlySpendAfter  decimal.Decimal
	Meta               map[string]string
	Timestamp          time.Time
}

// Well-known meta keys understood by the ledger. Any other key is stored
// verbatim in SpendRecord.Meta.
const (
	MetaType        = "type"
	MetaSource      = "source"
	MetaCreatedBy   = "created_by"
	MetaReferenceID = "reference_id"
	MetaDescription = "description"
)

// NewSpendRecord builds a spend record from an event's meta annotations.
// Unknown type or source values fall back to impression and system.
func NewSpendRecord(campaignID int64, amount decimal.Decimal, meta map[string]string) *SpendRecord {
	rec := &SpendRecord{
		CampaignID: campaignID,
		Amount:     amount,
		Type:       SpendImpression,
		Source:     SourceSystem,
		Meta:       map[string]string{},
	}
	for k, v := range meta {
		switch k {
		case MetaType:
			switch t := SpendType(v); t {
			case SpendImpression, SpendClick, SpendManualAdjustment:
				rec.Type = t
			}
		case MetaSource:
			switch s := SpendSource(v); s {
			case SourceSystem, SourceManual, SourceAPI, SourceImport:
				rec.Source = s
			}
		case MetaCreatedBy:
			rec.CreatedBy = v
		case MetaReferenceID:
			rec.ReferenceID = v
		case MetaDescription:
			rec.Description = v
		default:
			rec.Meta[k] = v
		}
	}
	return rec
}
