package mapping

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/models"
)

// ToModelParty converts a domain Party to a model Party.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:            d.PartyID,
		PartyType:          string(d.Type),
		Name:               d.Name,
		Phone:              d.Phone,
		GSTIN:              d.GSTIN,
		StateCode:          d.StateCode,
		OutstandingBalance: d.OutstandingBalance,
		AdvanceBalance:     d.AdvanceBalance,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:            m.PartyID,
		Type:               domain.PartyType(m.PartyType),
		Name:               m.Name,
		Phone:              m.Phone,
		GSTIN:              m.GSTIN,
		StateCode:          m.StateCode,
		OutstandingBalance: m.OutstandingBalance,
		AdvanceBalance:     m.AdvanceBalance,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties.
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
