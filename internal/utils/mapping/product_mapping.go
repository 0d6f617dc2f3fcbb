package mapping

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Code:        d.Code,
		Name:        d.Name,
		HSNCode:     d.HSNCode,
		PriceMode:   string(d.PriceMode),
		UnitPrice:   d.UnitPrice,
		CostPrice:   d.CostPrice,
		GSTRate:     d.GSTRate,
		StockQty:    d.StockQty,
		StockLength: d.StockLength,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Code:        m.Code,
		Name:        m.Name,
		HSNCode:     m.HSNCode,
		PriceMode:   domain.PriceMode(m.PriceMode),
		UnitPrice:   m.UnitPrice,
		CostPrice:   m.CostPrice,
		GSTRate:     m.GSTRate,
		StockQty:    m.StockQty,
		StockLength: m.StockLength,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
