package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
)

var _ repository.SalesInvoiceRepository = (*SalesInvoiceRepo)(nil)

// SalesInvoiceRepo lecturas sobre sales_invoices / sales_invoice_items.
type SalesInvoiceRepo struct {
	q Querier
}

// NewSalesInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesInvoiceRepository(q Querier) *SalesInvoiceRepo {
	return &SalesInvoiceRepo{q: q}
}

// GetLastSubmittedLine última línea validada (docstatus = 1) del cliente para el artículo.
// Empates en posting_date se resuelven por posting_time y luego por nombre de factura.
func (r *SalesInvoiceRepo) GetLastSubmittedLine(ctx context.Context, customer, itemCode string) (*entity.SalesInvoiceLine, error) {
	query, args, err := lastInvoiceLineQuery(customer, itemCode).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build invoice query: %w", err)
	}

	var line entity.SalesInvoiceLine
	if err := pgxscan.Get(ctx, r.q, &line, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last invoice line: %w", err)
	}
	return &line, nil
}

func lastInvoiceLineQuery(customer, itemCode string) squirrel.SelectBuilder {
	return psql.
		Select(
			"si.name AS invoice_name",
			"si.customer",
			"sii.item_code",
			"sii.qty",
			"sii.rate",
			"si.posting_date",
		).
		From("sales_invoice_items sii").
		Join("sales_invoices si ON si.name = sii.parent").
		Where(squirrel.Eq{
			"si.customer":   customer,
			"sii.item_code": itemCode,
			"si.docstatus":  int(entity.DocStatusSubmitted),
		}).
		OrderBy("si.posting_date DESC", "si.posting_time DESC", "si.name DESC").
		Limit(1)
}
