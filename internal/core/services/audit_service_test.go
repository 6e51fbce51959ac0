package services_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditList_Paginates(t *testing.T) {
	f := newFixture(t, nil)
	for i := 0; i < 5; i++ {
		f.account(t, fmt.Sprintf("10%02d", i), domain.Asset)
	}
	filter := portsrepo.AuditFilter{EntityKind: domain.EntityAccount, Limit: 2}

	var seen []domain.AuditLog
	var token *string
	pages := 0
	for {
		page, next, err := f.svc.Audit.List(f.ctx, f.readOnly, filter, token)
		require.NoError(t, err)
		seen = append(seen, page...)
		pages++
		if next == nil {
			break
		}
		token = next
		require.Less(t, pages, 10)
	}

	assert.Equal(t, 3, pages)
	require.Len(t, seen, 5)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i-1].Sequence, seen[i].Sequence, "newest first")
	}
	for _, e := range seen {
		assert.Equal(t, domain.AuditCreate, e.Action)
		assert.Equal(t, adminUserID, e.ActorID)
	}
}

func TestAuditList_Errors(t *testing.T) {
	f := newFixture(t, nil)

	bad := "not-a-token"
	_, _, err := f.svc.Audit.List(f.ctx, f.readOnly, portsrepo.AuditFilter{}, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	outsider := domain.RequestContext{CompanyID: f.company.CompanyID, ActorID: "someone", Role: "GUEST"}
	_, _, err = f.svc.Audit.List(f.ctx, outsider, portsrepo.AuditFilter{}, nil)
	assert.Error(t, err)
}

func TestAuditList_ScopedToCompany(t *testing.T) {
	f := newFixture(t, nil)
	f.account(t, "1000", domain.Asset)

	other, err := f.svc.Company.CreateCompany(f.ctx, dto.CreateCompanyRequest{
		Name:               "Globex",
		BaseCurrency:       "EUR",
		BaseCurrencyName:   "Euro",
		BaseCurrencySymbol: "€",
	}, adminUserID)
	require.NoError(t, err)
	otherAdmin := domain.RequestContext{CompanyID: other.CompanyID, ActorID: adminUserID, Role: domain.RoleAdmin}

	logs, _, err := f.svc.Audit.List(f.ctx, otherAdmin, portsrepo.AuditFilter{EntityKind: domain.EntityAccount}, nil)
	require.NoError(t, err)
	assert.Empty(t, logs)

	logs, _, err = f.svc.Audit.List(f.ctx, f.readOnly, portsrepo.AuditFilter{EntityKind: domain.EntityAccount}, nil)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
