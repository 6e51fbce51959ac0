package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/platform/lock"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminUserID    = "user-admin"
	memberUserID   = "user-member"
	readOnlyUserID = "user-readonly"
)

// fixture is a company on a fresh memory store with one user per role.
type fixture struct {
	ctx      context.Context
	store    *memory.Store
	svc      *portssvc.ServiceContainer
	company  *domain.Company
	admin    domain.RequestContext
	member   domain.RequestContext
	readOnly domain.RequestContext
}

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) Advise(ctx context.Context, contextBlob string) (string, error) {
	args := m.Called(ctx, contextBlob)
	return args.String(0), args.Error(1)
}

func newFixture(t *testing.T, advisor portssvc.Advisor) *fixture {
	t.Helper()
	ctx := context.Background()
	cfg := &config.Config{StoreTimeout: 2 * time.Second, AdvisoryTimeout: 200 * time.Millisecond}
	store := memory.NewStore()
	locker := lock.NewLocalLocker(2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := services.NewServiceContainer(cfg, store, locker, advisor)

	company, err := svc.Company.CreateCompany(ctx, dto.CreateCompanyRequest{
		Name:               "Acme Trading",
		BaseCurrency:       "USD",
		BaseCurrencyName:   "US Dollar",
		BaseCurrencySymbol: "$",
	}, adminUserID)
	require.NoError(t, err)

	f := &fixture{
		ctx:      ctx,
		store:    store,
		svc:      svc,
		company:  company,
		admin:    domain.RequestContext{CompanyID: company.CompanyID, ActorID: adminUserID, Role: domain.RoleAdmin},
		member:   domain.RequestContext{CompanyID: company.CompanyID, ActorID: memberUserID, Role: domain.RoleMember},
		readOnly: domain.RequestContext{CompanyID: company.CompanyID, ActorID: readOnlyUserID, Role: domain.RoleReadOnly},
	}
	require.NoError(t, svc.Company.AddMember(ctx, f.admin, dto.AddMemberRequest{UserID: memberUserID, Role: domain.RoleMember}))
	require.NoError(t, svc.Company.AddMember(ctx, f.admin, dto.AddMemberRequest{UserID: readOnlyUserID, Role: domain.RoleReadOnly}))
	return f
}

func (f *fixture) account(t *testing.T, code string, accountType domain.AccountType) string {
	t.Helper()
	acc, err := f.svc.Account.CreateAccount(f.ctx, f.admin, dto.CreateAccountRequest{
		Code:        code,
		Name:        code + " account",
		AccountType: accountType,
	})
	require.NoError(t, err)
	return acc.AccountID
}

func (f *fixture) product(t *testing.T, sku string) string {
	t.Helper()
	p, err := f.svc.MasterData.CreateProduct(f.ctx, f.member, dto.CreateProductRequest{SKU: sku, Name: sku + " product"})
	require.NoError(t, err)
	return p.ProductID
}

func (f *fixture) fiscalYear(t *testing.T, name, start, end string) string {
	t.Helper()
	fy, err := f.svc.FiscalYear.CreateFiscalYear(f.ctx, f.admin, dto.CreateFiscalYearRequest{Name: name, StartDate: start, EndDate: end})
	require.NoError(t, err)
	return fy.FiscalYearID
}

func (f *fixture) draft(date string, lines ...domain.DraftLine) domain.VoucherDraft {
	return domain.VoucherDraft{Reference: "REF-" + date, VoucherDate: day(date), Lines: lines}
}

func (f *fixture) post(t *testing.T, date string, lines ...domain.DraftLine) *domain.Voucher {
	t.Helper()
	v, err := f.svc.Ledger.PostVoucher(f.ctx, f.member, f.draft(date, lines...))
	require.NoError(t, err)
	return v
}

func dr(accountID, amount string) domain.DraftLine {
	return domain.DraftLine{AccountID: accountID, Debit: decimal.RequireFromString(amount)}
}

func cr(accountID, amount string) domain.DraftLine {
	return domain.DraftLine{AccountID: accountID, Credit: decimal.RequireFromString(amount)}
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
