package services_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompany_RegistersBaseCurrencyAndAdmin(t *testing.T) {
	f := newFixture(t, nil)

	rc, err := f.svc.Company.ResolveRequestContext(f.ctx, adminUserID, f.company.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, rc.Role)

	base, err := f.svc.Currency.GetCurrencyByCode(f.ctx, f.readOnly, "USD")
	require.NoError(t, err)
	assert.True(t, base.IsBase)

	companies, err := f.svc.Company.ListUserCompanies(f.ctx, memberUserID)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme Trading", companies[0].Name)

	members, err := f.svc.Company.ListMembers(f.ctx, f.readOnly)
	require.NoError(t, err)
	assert.Len(t, members, 3)
}

func TestCreateCompany_Validation(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Company.CreateCompany(f.ctx, dto.CreateCompanyRequest{Name: "No Currency"}, adminUserID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Company.CreateCompany(f.ctx, dto.CreateCompanyRequest{Name: "Orphan", BaseCurrency: "USD"}, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveRequestContext(t *testing.T) {
	f := newFixture(t, nil)

	rc, err := f.svc.Company.ResolveRequestContext(f.ctx, readOnlyUserID, f.company.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleReadOnly, rc.Role)
	assert.Equal(t, readOnlyUserID, rc.ActorID)

	_, err = f.svc.Company.ResolveRequestContext(f.ctx, "stranger", f.company.CompanyID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.svc.Company.ResolveRequestContext(f.ctx, adminUserID, "no-such-company")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddMember(t *testing.T) {
	f := newFixture(t, nil)

	err := f.svc.Company.AddMember(f.ctx, f.member, dto.AddMemberRequest{UserID: "new", Role: domain.RoleMember})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = f.svc.Company.AddMember(f.ctx, f.admin, dto.AddMemberRequest{UserID: "new", Role: "OWNER"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, f.svc.Company.AddMember(f.ctx, f.admin, dto.AddMemberRequest{UserID: memberUserID, Role: domain.RoleAdmin}))
	rc, err := f.svc.Company.ResolveRequestContext(f.ctx, memberUserID, f.company.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, rc.Role, "adding an existing member changes the role")
}
