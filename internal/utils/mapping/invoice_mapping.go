package mapping

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:          d.InvoiceID,
		InvoiceNumber:      d.InvoiceNumber,
		InvoiceType:        string(d.Type),
		Status:             string(d.Status),
		PartyID:            d.PartyID,
		PlaceOfSupplyState: d.PlaceOfSupplyState,
		Subtotal:           d.Subtotal,
		TaxAmount:          d.TaxAmount,
		DiscountAmount:     d.DiscountAmount,
		TotalAmount:        d.TotalAmount,
		AmountPaid:         d.AmountPaid,
		PendingAmount:      d.PendingAmount,
		ReturnedAmount:     d.ReturnedAmount,
		ParentInvoiceID:    d.ParentInvoiceID,
		Notes:              d.Notes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:          m.InvoiceID,
		InvoiceNumber:      m.InvoiceNumber,
		Type:               domain.InvoiceType(m.InvoiceType),
		Status:             domain.InvoiceStatus(m.Status),
		PartyID:            m.PartyID,
		PlaceOfSupplyState: m.PlaceOfSupplyState,
		Subtotal:           m.Subtotal,
		TaxAmount:          m.TaxAmount,
		DiscountAmount:     m.DiscountAmount,
		TotalAmount:        m.TotalAmount,
		AmountPaid:         m.AmountPaid,
		PendingAmount:      m.PendingAmount,
		ReturnedAmount:     m.ReturnedAmount,
		ParentInvoiceID:    m.ParentInvoiceID,
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices.
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToModelLineItem converts a domain LineItem to a model LineItem.
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:       d.LineItemID,
		InvoiceID:        d.InvoiceID,
		ProductID:        d.ProductID,
		ProductCode:      d.ProductCode,
		ProductName:      d.ProductName,
		HSNCode:          d.HSNCode,
		PriceMode:        string(d.PriceMode),
		Quantity:         d.Quantity,
		Length:           d.Length,
		UnitPrice:        d.UnitPrice,
		CostPrice:        d.CostPrice,
		GSTRate:          d.GSTRate,
		LineTotal:        d.LineTotal,
		TaxableValue:     d.TaxableValue,
		CGSTAmount:       d.CGST,
		SGSTAmount:       d.SGST,
		IGSTAmount:       d.IGST,
		ReturnedQuantity: d.ReturnedQuantity,
		ReturnedLength:   d.ReturnedLength,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem.
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:       m.LineItemID,
		InvoiceID:        m.InvoiceID,
		ProductID:        m.ProductID,
		ProductCode:      m.ProductCode,
		ProductName:      m.ProductName,
		HSNCode:          m.HSNCode,
		PriceMode:        domain.PriceMode(m.PriceMode),
		Quantity:         m.Quantity,
		Length:           m.Length,
		UnitPrice:        m.UnitPrice,
		CostPrice:        m.CostPrice,
		GSTRate:          m.GSTRate,
		LineTotal:        m.LineTotal,
		TaxableValue:     m.TaxableValue,
		CGST:             m.CGSTAmount,
		SGST:             m.SGSTAmount,
		IGST:             m.IGSTAmount,
		ReturnedQuantity: m.ReturnedQuantity,
		ReturnedLength:   m.ReturnedLength,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems.
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
