package pricelists

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ilmsadmin/zbase-pricing/pkg/db"
	"github.com/ilmsadmin/zbase-pricing/pkg/db/models"
	pkgerrors "github.com/ilmsadmin/zbase-pricing/pkg/errors"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

const (
	priceListCodeIndex = "idx_price_lists_code"
	itemTierIndex      = "idx_price_list_items_tier"
)

type customerGroupReader interface {
	FindGroupByID(ctx context.Context, id uuid.UUID) (*models.CustomerGroup, error)
}

type customerReader interface {
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

type productReader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo      Repository
	groups    customerGroupReader
	customers customerReader
	products  productReader
	tx        txRunner
	now       func() time.Time
}

// NewService builds the price list service with the provided collaborators.
func NewService(repo Repository, groups customerGroupReader, customers customerReader, products productReader, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("price list repository required")
	}
	if groups == nil {
		return nil, fmt.Errorf("customer group reader required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer reader required")
	}
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:      repo,
		groups:    groups,
		customers: customers,
		products:  products,
		tx:        tx,
		now:       time.Now,
	}, nil
}

// today truncates the clock to a UTC date so window comparisons stay
// inclusive on both bounds.
func (s *service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *service) requireGroup(ctx context.Context, id uuid.UUID) error {
	if _, err := s.groups.FindGroupByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer group not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer group")
	}
	return nil
}

func (s *service) requirePriceList(ctx context.Context, id uuid.UUID) (*models.PriceList, error) {
	list, err := s.repo.FindPriceListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "price list not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load price list")
	}
	return list, nil
}

func (s *service) priceListDTO(ctx context.Context, id uuid.UUID) (*PriceListDTO, error) {
	list, err := s.requirePriceList(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountItems(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count price list items")
	}
	return FromPriceListModel(list, count), nil
}

// ensureCodeAvailable rejects a code already held by another price list.
func (s *service) ensureCodeAvailable(ctx context.Context, code string, excludeID *uuid.UUID) error {
	_, err := s.repo.FindPriceListByCode(ctx, code, excludeID)
	if err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "price list code already in use").
			WithDetails(map[string]string{"code": code})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check price list code")
}

func (s *service) Create(ctx context.Context, input CreatePriceListInput) (*PriceListDTO, error) {
	input.Code = strings.TrimSpace(input.Code)
	if input.Code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	if err := s.requireGroup(ctx, input.CustomerGroupID); err != nil {
		return nil, err
	}
	if err := s.ensureCodeAvailable(ctx, input.Code, nil); err != nil {
		return nil, err
	}

	model := input.ToModel()

	var err error
	if model.IsDefault {
		// Clearing the previous default and inserting the new one must
		// commit together, otherwise a group can transiently hold zero
		// or two defaults.
		err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			txRepo := s.repo.WithTx(tx)
			if clearErr := txRepo.ClearDefault(ctx, input.CustomerGroupID, nil); clearErr != nil {
				return clearErr
			}
			return txRepo.CreatePriceList(ctx, model)
		})
	} else {
		err = s.repo.CreatePriceList(ctx, model)
	}
	if err != nil {
		if db.IsUniqueViolation(err, priceListCodeIndex) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "price list code already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create price list")
	}

	return s.priceListDTO(ctx, model.ID)
}

func (s *service) List(ctx context.Context, filter ListFilter, params pagination.Params) (*PriceListPage, error) {
	lists, total, err := s.repo.ListPriceLists(ctx, filter, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list price lists")
	}

	ids := make([]uuid.UUID, 0, len(lists))
	for i := range lists {
		ids = append(ids, lists[i].ID)
	}
	counts, err := s.repo.CountItemsByList(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count price list items")
	}

	page := &PriceListPage{
		Data: make([]PriceListDTO, 0, len(lists)),
		Meta: pagination.NewMeta(total, params),
	}
	for i := range lists {
		page.Data = append(page.Data, *FromPriceListModel(&lists[i], counts[lists[i].ID]))
	}
	return page, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PriceListDTO, error) {
	return s.priceListDTO(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, patch UpdatePriceListInput) (*PriceListDTO, error) {
	list, err := s.requirePriceList(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Code != nil {
		code := strings.TrimSpace(*patch.Code)
		if code == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "code cannot be empty")
		}
		if code != list.Code {
			if err := s.ensureCodeAvailable(ctx, code, &id); err != nil {
				return nil, err
			}
		}
		list.Code = code
	}
	if patch.CustomerGroupID != nil {
		if err := s.requireGroup(ctx, *patch.CustomerGroupID); err != nil {
			return nil, err
		}
		list.CustomerGroupID = *patch.CustomerGroupID
		list.CustomerGroup = nil
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		list.Name = *patch.Name
	}
	if patch.Description != nil {
		list.Description = *patch.Description
	}
	if patch.StartDate != nil {
		list.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		list.EndDate = *patch.EndDate
	}
	if patch.Priority != nil {
		list.Priority = *patch.Priority
	}
	if patch.DiscountType != nil {
		list.DiscountType = *patch.DiscountType
	}
	if patch.Status != nil {
		list.Status = *patch.Status
	}
	if patch.ApplicableOn != nil {
		list.ApplicableOn = *patch.ApplicableOn
	}
	if patch.IsDefault != nil {
		list.IsDefault = *patch.IsDefault
	}

	promoting := patch.IsDefault != nil && *patch.IsDefault
	if promoting {
		err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			txRepo := s.repo.WithTx(tx)
			if clearErr := txRepo.ClearDefault(ctx, list.CustomerGroupID, &id); clearErr != nil {
				return clearErr
			}
			return txRepo.SavePriceList(ctx, list)
		})
	} else {
		err = s.repo.SavePriceList(ctx, list)
	}
	if err != nil {
		if db.IsUniqueViolation(err, priceListCodeIndex) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "price list code already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update price list")
	}

	return s.priceListDTO(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.requirePriceList(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeletePriceList(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete price list")
	}
	return nil
}

func (s *service) SetDefault(ctx context.Context, id uuid.UUID) (*PriceListDTO, error) {
	list, err := s.requirePriceList(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if clearErr := txRepo.ClearDefault(ctx, list.CustomerGroupID, &id); clearErr != nil {
			return clearErr
		}
		return txRepo.MarkDefault(ctx, id)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "promote default price list")
	}

	return s.priceListDTO(ctx, id)
}

func (s *service) AddItem(ctx context.Context, priceListID uuid.UUID, input AddItemInput) (*PriceListItemDTO, error) {
	if _, err := s.requirePriceList(ctx, priceListID); err != nil {
		return nil, err
	}
	if _, err := s.products.FindProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	minQuantity := input.EffectiveMinQuantity()
	taken, err := s.repo.TierExists(ctx, priceListID, input.ProductID, minQuantity, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check quantity tier")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already tiered at this minimum quantity").
			WithDetails(map[string]string{
				"product_id":   input.ProductID.String(),
				"min_quantity": minQuantity.String(),
			})
	}

	model := input.ToModel(priceListID)
	if err := s.repo.CreateItem(ctx, model); err != nil {
		if db.IsUniqueViolation(err, itemTierIndex) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already tiered at this minimum quantity")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create price list item")
	}

	return s.itemDTO(ctx, model.ID)
}

func (s *service) ListItems(ctx context.Context, priceListID uuid.UUID, params pagination.Params) (*PriceListItemPage, error) {
	if _, err := s.requirePriceList(ctx, priceListID); err != nil {
		return nil, err
	}

	items, total, err := s.repo.ListItems(ctx, priceListID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list price list items")
	}

	page := &PriceListItemPage{
		Data: make([]PriceListItemDTO, 0, len(items)),
		Meta: pagination.NewMeta(total, params),
	}
	for i := range items {
		page.Data = append(page.Data, *FromItemModel(&items[i]))
	}
	return page, nil
}

// requireItem loads the item and enforces that it belongs to the price list
// named in the request path.
func (s *service) requireItem(ctx context.Context, priceListID, itemID uuid.UUID) (*models.PriceListItem, error) {
	if _, err := s.requirePriceList(ctx, priceListID); err != nil {
		return nil, err
	}

	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "price list item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load price list item")
	}
	if item.PriceListID != priceListID {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidRelationship, "item does not belong to this price list").
			WithDetails(map[string]string{
				"price_list_id": priceListID.String(),
				"item_id":       itemID.String(),
			})
	}
	return item, nil
}

func (s *service) itemDTO(ctx context.Context, itemID uuid.UUID) (*PriceListItemDTO, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load price list item")
	}
	return FromItemModel(item), nil
}

func (s *service) UpdateItem(ctx context.Context, priceListID, itemID uuid.UUID, patch UpdateItemInput) (*PriceListItemDTO, error) {
	item, err := s.requireItem(ctx, priceListID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.MinQuantity != nil && !patch.MinQuantity.Equal(item.MinQuantity) {
		// The conflict check keys on the item's existing product: tiers
		// cannot be moved to another product through this call.
		taken, err := s.repo.TierExists(ctx, priceListID, item.ProductID, *patch.MinQuantity, &itemID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check quantity tier")
		}
		if taken {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already tiered at this minimum quantity")
		}
		item.MinQuantity = *patch.MinQuantity
	}

	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.MaxQuantity != nil {
		item.MaxQuantity = *patch.MaxQuantity
	}
	if patch.DiscountType != nil {
		item.DiscountType = *patch.DiscountType
	}
	if patch.DiscountValue != nil {
		item.DiscountValue = *patch.DiscountValue
	}
	if patch.DiscountRate != nil {
		item.DiscountRate = *patch.DiscountRate
	}
	if patch.SpecialConditions != nil {
		item.SpecialConditions = *patch.SpecialConditions
	}
	if patch.IsActive != nil {
		item.IsActive = *patch.IsActive
	}

	item.Product = nil
	if err := s.repo.SaveItem(ctx, item); err != nil {
		if db.IsUniqueViolation(err, itemTierIndex) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product already tiered at this minimum quantity")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update price list item")
	}

	return s.itemDTO(ctx, itemID)
}

func (s *service) RemoveItem(ctx context.Context, priceListID, itemID uuid.UUID) error {
	if _, err := s.requireItem(ctx, priceListID, itemID); err != nil {
		return err
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete price list item")
	}
	return nil
}

func (s *service) ResolveForCustomer(ctx context.Context, customerID uuid.UUID) (*ResolvedPriceListDTO, error) {
	customer, err := s.customers.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	// Ungrouped customers have no resolvable price list.
	if customer.GroupID == nil {
		return nil, nil
	}

	list, err := s.repo.FindCurrentForGroup(ctx, *customer.GroupID, s.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve price list")
	}
	return FromResolvedModel(list), nil
}
