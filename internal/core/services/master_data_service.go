package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// masterDataService keeps the product and customer registers.
type masterDataService struct {
	BaseService
}

// NewMasterDataService creates a new master data service.
func NewMasterDataService(base BaseService) portssvc.MasterDataSvcFacade {
	return &masterDataService{BaseService: base}
}

var _ portssvc.MasterDataSvcFacade = (*masterDataService)(nil)

func (s *masterDataService) CreateProduct(ctx context.Context, rc domain.RequestContext, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageMasterData); err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(req.SKU)
	if sku == "" || strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("product sku and name are required")
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidationError("unit price must not be negative")
	}

	product := domain.Product{
		ProductID:   s.NewID(),
		CompanyID:   rc.CompanyID,
		SKU:         sku,
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		AuditFields: s.auditFields(rc.ActorID),
	}
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := repos.SaveProduct(ctx, product); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityProduct, product.ProductID, "sku "+sku)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create product", slog.String("sku", sku))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID), slog.String("sku", sku))
	return &product, nil
}

func (s *masterDataService) CreateCustomer(ctx context.Context, rc domain.RequestContext, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := s.Authorize(ctx, rc, domain.ActionManageMasterData); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("customer name is required")
	}

	customer := domain.Customer{
		CustomerID:  s.NewID(),
		CompanyID:   rc.CompanyID,
		Name:        name,
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		AuditFields: s.auditFields(rc.ActorID),
	}
	err := s.Mutate(ctx, rc, func(ctx context.Context, repos portsrepo.Repositories) error {
		if err := repos.SaveCustomer(ctx, customer); err != nil {
			return err
		}
		return s.Audit(ctx, repos, rc, domain.AuditCreate, domain.EntityCustomer, customer.CustomerID, name)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *masterDataService) GetProduct(ctx context.Context, rc domain.RequestContext, productID string) (*domain.Product, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var product *domain.Product
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		product, err = repos.FindProductByID(ctx, rc.CompanyID, productID)
		return err
	})
	return product, err
}

func (s *masterDataService) ListProducts(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Product, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var products []domain.Product
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		products, err = repos.ListProducts(ctx, rc.CompanyID, portsrepo.ListOptions{IncludeDeleted: includeDeleted})
		return err
	})
	return products, err
}

func (s *masterDataService) GetCustomer(ctx context.Context, rc domain.RequestContext, customerID string) (*domain.Customer, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var customer *domain.Customer
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		customer, err = repos.FindCustomerByID(ctx, rc.CompanyID, customerID)
		return err
	})
	return customer, err
}

func (s *masterDataService) ListCustomers(ctx context.Context, rc domain.RequestContext, includeDeleted bool) ([]domain.Customer, error) {
	if err := rc.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	var customers []domain.Customer
	err := s.Read(ctx, func(ctx context.Context, repos portsrepo.ReadRepositories) error {
		var err error
		customers, err = repos.ListCustomers(ctx, rc.CompanyID, portsrepo.ListOptions{IncludeDeleted: includeDeleted})
		return err
	})
	return customers, err
}

// stockedProduct returns the live product a stock movement refers to.
func stockedProduct(ctx context.Context, repos portsrepo.ReadRepositories, companyID, productID string) (*domain.Product, error) {
	p, err := repos.FindProductByID(ctx, companyID, productID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %s", productID))
	}
	if err != nil {
		return nil, err
	}
	if p.IsDeleted {
		return nil, apperrors.NewStateError(fmt.Sprintf("product %s is deleted", productID))
	}
	return p, nil
}
