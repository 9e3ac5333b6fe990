// Package pricing contiene las reglas de negocio de la consulta de precios por cliente:
// qué demanda se considera abierta, a qué clientes se limita y si el disponible se recorta en cero.
package pricing

import (
	"fmt"
	"strings"

	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
)

// DemandPolicy define qué pedidos y cotizaciones se consideran abiertos.
type DemandPolicy string

const (
	// DemandDraft considera abiertos los documentos en borrador (docstatus = 0).
	DemandDraft DemandPolicy = "draft"
	// DemandActive considera abiertos los documentos validados que no están en un estado terminal.
	DemandActive DemandPolicy = "active"
)

// DemandScope define de qué clientes se toma la demanda comprometida.
type DemandScope string

const (
	ScopeAll      DemandScope = "all"
	ScopeCustomer DemandScope = "customer"
)

// Policy agrupa las decisiones de cálculo aplicadas a todas las consultas.
type Policy struct {
	Demand      DemandPolicy
	Scope       DemandScope
	ClampAtZero bool
	Warehouses  []string
}

// DefaultPolicy demanda en borrador de todos los clientes, disponible recortado en cero y todas las bodegas.
func DefaultPolicy() Policy {
	return Policy{
		Demand:      DemandDraft,
		Scope:       ScopeAll,
		ClampAtZero: true,
	}
}

// NewPolicy valida los valores de configuración y construye la política.
// Valores vacíos toman el default.
func NewPolicy(demand, scope string, clamp bool, warehouses []string) (Policy, error) {
	p := DefaultPolicy()
	p.ClampAtZero = clamp
	p.Warehouses = warehouses

	d, err := ParseDemandPolicy(demand)
	if err != nil {
		return Policy{}, err
	}
	p.Demand = d

	s, err := ParseDemandScope(scope)
	if err != nil {
		return Policy{}, err
	}
	p.Scope = s
	return p, nil
}

// ParseDemandPolicy interpreta "draft" o "active" (sin distinguir mayúsculas).
func ParseDemandPolicy(s string) (DemandPolicy, error) {
	switch DemandPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", DemandDraft:
		return DemandDraft, nil
	case DemandActive:
		return DemandActive, nil
	default:
		return "", fmt.Errorf("política de demanda desconocida %q (use draft o active)", s)
	}
}

// ParseDemandScope interpreta "all" o "customer" (sin distinguir mayúsculas).
func ParseDemandScope(s string) (DemandScope, error) {
	switch DemandScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeCustomer:
		return ScopeCustomer, nil
	default:
		return "", fmt.Errorf("alcance de demanda desconocido %q (use all o customer)", s)
	}
}

// DemandFilter traduce la política al filtro que entienden los repositorios.
func (p Policy) DemandFilter(itemCode, customer string) repository.DemandFilter {
	f := repository.DemandFilter{
		ItemCode:  itemCode,
		DocStatus: entity.DocStatusDraft,
	}
	if p.Demand == DemandActive {
		f.DocStatus = entity.DocStatusSubmitted
		f.ExcludeStatuses = entity.TerminalStatuses()
	}
	if p.Scope == ScopeCustomer {
		f.Customer = customer
	}
	return f
}
