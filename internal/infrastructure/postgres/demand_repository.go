package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DemandRepository = (*DemandRepo)(nil)

// demandSource describe un par cabecera/líneas de documento que compromete existencias.
type demandSource struct {
	lines       string
	header      string
	partyColumn string // columna de la cabecera con el cliente
}

var (
	salesOrderSource = demandSource{lines: "sales_order_items", header: "sales_orders", partyColumn: "customer"}
	quotationSource  = demandSource{lines: "quotation_items", header: "quotations", partyColumn: "party_name"}
)

// DemandRepo suma cantidades de pedidos de venta y cotizaciones abiertas.
type DemandRepo struct {
	q Querier
}

// NewDemandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDemandRepository(q Querier) *DemandRepo {
	return &DemandRepo{q: q}
}

// SumSalesOrderQty cantidad comprometida en pedidos de venta abiertos.
func (r *DemandRepo) SumSalesOrderQty(ctx context.Context, f repository.DemandFilter) (decimal.Decimal, error) {
	return r.sum(ctx, salesOrderSource, f)
}

// SumQuotationQty cantidad comprometida en cotizaciones abiertas.
func (r *DemandRepo) SumQuotationQty(ctx context.Context, f repository.DemandFilter) (decimal.Decimal, error) {
	return r.sum(ctx, quotationSource, f)
}

func (r *DemandRepo) sum(ctx context.Context, src demandSource, f repository.DemandFilter) (decimal.Decimal, error) {
	query, args, err := demandSumQuery(src, f).ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build %s query: %w", src.header, err)
	}
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum %s: %w", src.header, err)
	}
	return total, nil
}

// demandSumQuery arma:
//
//	SELECT COALESCE(SUM(l.qty), 0) FROM <lines> l JOIN <header> h ON h.name = l.parent
//	WHERE l.item_code = ? AND h.docstatus = ? [AND h.status NOT IN (...)] [AND h.<party> = ?]
func demandSumQuery(src demandSource, f repository.DemandFilter) squirrel.SelectBuilder {
	q := psql.Select("COALESCE(SUM(l.qty), 0)").
		From(src.lines + " l").
		Join(src.header + " h ON h.name = l.parent").
		Where(squirrel.Eq{"l.item_code": f.ItemCode}).
		Where(squirrel.Eq{"h.docstatus": int(f.DocStatus)})
	if len(f.ExcludeStatuses) > 0 {
		q = q.Where(squirrel.NotEq{"h.status": f.ExcludeStatuses})
	}
	if f.Customer != "" {
		q = q.Where(squirrel.Eq{"h." + src.partyColumn: f.Customer})
	}
	return q
}
