package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ilmsadmin/zbase-pricing/api/responses"
	"github.com/ilmsadmin/zbase-pricing/api/validators"
	"github.com/ilmsadmin/zbase-pricing/internal/pricelists"
	"github.com/ilmsadmin/zbase-pricing/pkg/enums"
	pkgerrors "github.com/ilmsadmin/zbase-pricing/pkg/errors"
	"github.com/ilmsadmin/zbase-pricing/pkg/logger"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

const dateLayout = "2006-01-02"

func parsePathID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a uuid").
			WithDetails(map[string]any{"field": param})
	}
	return id, nil
}

func parseDate(value string, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must use YYYY-MM-DD").
			WithDetails(map[string]any{"field": field})
	}
	parsed = parsed.UTC()
	return &parsed, nil
}

type createPriceListRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=255"`
	Code            string  `json:"code" validate:"required,min=1,max=64"`
	Description     *string `json:"description,omitempty"`
	CustomerGroupID string  `json:"customer_group_id" validate:"required,uuid"`
	StartDate       string  `json:"start_date,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
	Priority        *int    `json:"priority,omitempty"`
	DiscountType    *string `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	ApplicableOn    *string `json:"applicable_on,omitempty" validate:"omitempty,oneof=all sales purchases"`
	IsDefault       *bool   `json:"is_default,omitempty"`
	CreatedBy       *string `json:"created_by,omitempty"`
}

func (req createPriceListRequest) toInput() (pricelists.CreatePriceListInput, error) {
	groupID, err := uuid.Parse(req.CustomerGroupID)
	if err != nil {
		return pricelists.CreatePriceListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "customer_group_id must be a uuid")
	}

	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return pricelists.CreatePriceListInput{}, err
	}
	endDate, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		return pricelists.CreatePriceListInput{}, err
	}

	input := pricelists.CreatePriceListInput{
		Name:            req.Name,
		Code:            req.Code,
		Description:     req.Description,
		CustomerGroupID: groupID,
		StartDate:       startDate,
		EndDate:         endDate,
		Priority:        req.Priority,
		IsDefault:       req.IsDefault,
		CreatedBy:       req.CreatedBy,
	}

	if req.DiscountType != nil {
		parsed, err := enums.ParseDiscountType(*req.DiscountType)
		if err != nil {
			return pricelists.CreatePriceListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid discount_type")
		}
		input.DiscountType = &parsed
	}
	if req.Status != nil {
		parsed, err := enums.ParsePriceListStatus(*req.Status)
		if err != nil {
			return pricelists.CreatePriceListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &parsed
	}
	if req.ApplicableOn != nil {
		parsed, err := enums.ParseApplicableOn(*req.ApplicableOn)
		if err != nil {
			return pricelists.CreatePriceListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid applicable_on")
		}
		input.ApplicableOn = &parsed
	}

	return input, nil
}

// PriceListCreate handles POST /api/v1/price-lists.
func PriceListCreate(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createPriceListRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// PriceListList handles GET /api/v1/price-lists.
func PriceListList(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r, pagination.DefaultLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := pricelists.ListFilter{
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, parseErr := enums.ParsePriceListStatus(raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid status"))
				return
			}
			filter.Status = &status
		}

		groupID, err := validators.ParseQueryUUID(r, "customer_group_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.CustomerGroupID = groupID

		page, err := svc.List(r.Context(), filter, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// PriceListGet handles GET /api/v1/price-lists/{priceListId}.
func PriceListGet(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type updatePriceListRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Code            *string `json:"code,omitempty" validate:"omitempty,min=1,max=64"`
	Description     *string `json:"description"`
	CustomerGroupID *string `json:"customer_group_id,omitempty" validate:"omitempty,uuid"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	Priority        *int    `json:"priority,omitempty"`
	DiscountType    *string `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	ApplicableOn    *string `json:"applicable_on,omitempty" validate:"omitempty,oneof=all sales purchases"`
	IsDefault       *bool   `json:"is_default,omitempty"`
}

func (req updatePriceListRequest) toInput() (pricelists.UpdatePriceListInput, error) {
	input := pricelists.UpdatePriceListInput{
		Name:      req.Name,
		Code:      req.Code,
		Priority:  req.Priority,
		IsDefault: req.IsDefault,
	}

	// A present-but-empty string clears the nullable columns; absence
	// leaves them untouched.
	if req.Description != nil {
		value := req.Description
		if strings.TrimSpace(*value) == "" {
			var cleared *string
			input.Description = &cleared
		} else {
			input.Description = &value
		}
	}
	if req.StartDate != nil {
		parsed, err := parseDate(*req.StartDate, "start_date")
		if err != nil {
			return pricelists.UpdatePriceListInput{}, err
		}
		input.StartDate = &parsed
	}
	if req.EndDate != nil {
		parsed, err := parseDate(*req.EndDate, "end_date")
		if err != nil {
			return pricelists.UpdatePriceListInput{}, err
		}
		input.EndDate = &parsed
	}
	if req.CustomerGroupID != nil {
		groupID, err := uuid.Parse(*req.CustomerGroupID)
		if err != nil {
			return pricelists.UpdatePriceListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "customer_group_id must be a uuid")
		}
		input.CustomerGroupID = &groupID
	}
	if req.DiscountType != nil {
		parsed, err := enums.ParseDiscountType(*req.DiscountType)
		if err != nil {
			return pricelists.UpdatePriceListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid discount_type")
		}
		input.DiscountType = &parsed
	}
	if req.Status != nil {
		parsed, err := enums.ParsePriceListStatus(*req.Status)
		if err != nil {
			return pricelists.UpdatePriceListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &parsed
	}
	if req.ApplicableOn != nil {
		parsed, err := enums.ParseApplicableOn(*req.ApplicableOn)
		if err != nil {
			return pricelists.UpdatePriceListInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid applicable_on")
		}
		input.ApplicableOn = &parsed
	}

	return input, nil
}

// PriceListUpdate handles PATCH /api/v1/price-lists/{priceListId}.
func PriceListUpdate(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePriceListRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// PriceListDelete handles DELETE /api/v1/price-lists/{priceListId}.
func PriceListDelete(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// PriceListSetDefault handles POST /api/v1/price-lists/{priceListId}/set-default.
func PriceListSetDefault(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPriceListID(ctx, id.String())
		}

		dto, err := svc.SetDefault(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type addItemRequest struct {
	ProductID         string           `json:"product_id" validate:"required,uuid"`
	Price             decimal.Decimal  `json:"price" validate:"required"`
	MinQuantity       *decimal.Decimal `json:"min_quantity,omitempty"`
	MaxQuantity       *decimal.Decimal `json:"max_quantity,omitempty"`
	DiscountType      *string          `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue     *decimal.Decimal `json:"discount_value,omitempty"`
	DiscountRate      *decimal.Decimal `json:"discount_rate,omitempty"`
	SpecialConditions *string          `json:"special_conditions,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

func (req addItemRequest) toInput() (pricelists.AddItemInput, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return pricelists.AddItemInput{}, pkgerrors.New(pkgerrors.CodeValidation, "product_id must be a uuid")
	}

	input := pricelists.AddItemInput{
		ProductID:         productID,
		Price:             req.Price,
		MinQuantity:       req.MinQuantity,
		MaxQuantity:       req.MaxQuantity,
		DiscountValue:     req.DiscountValue,
		DiscountRate:      req.DiscountRate,
		SpecialConditions: req.SpecialConditions,
		IsActive:          req.IsActive,
	}

	if req.DiscountType != nil {
		parsed, err := enums.ParseDiscountType(*req.DiscountType)
		if err != nil {
			return pricelists.AddItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid discount_type")
		}
		input.DiscountType = &parsed
	}

	return input, nil
}

// PriceListItemAdd handles POST /api/v1/price-lists/{priceListId}/items.
func PriceListItemAdd(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		priceListID, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.AddItem(r.Context(), priceListID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// PriceListItemList handles GET /api/v1/price-lists/{priceListId}/items.
func PriceListItemList(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		priceListID, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params, err := validators.ParsePagination(r, 50)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListItems(r.Context(), priceListID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

type updateItemRequest struct {
	Price             *decimal.Decimal `json:"price,omitempty"`
	MinQuantity       *decimal.Decimal `json:"min_quantity,omitempty"`
	MaxQuantity       *decimal.Decimal `json:"max_quantity,omitempty"`
	DiscountType      *string          `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue     *decimal.Decimal `json:"discount_value,omitempty"`
	DiscountRate      *decimal.Decimal `json:"discount_rate,omitempty"`
	SpecialConditions *string          `json:"special_conditions,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

func (req updateItemRequest) toInput() (pricelists.UpdateItemInput, error) {
	input := pricelists.UpdateItemInput{
		Price:         req.Price,
		MinQuantity:   req.MinQuantity,
		DiscountValue: req.DiscountValue,
		DiscountRate:  req.DiscountRate,
		IsActive:      req.IsActive,
	}

	if req.MaxQuantity != nil {
		value := req.MaxQuantity
		input.MaxQuantity = &value
	}
	// An explicit empty string clears the conditions text.
	if req.SpecialConditions != nil {
		value := req.SpecialConditions
		if strings.TrimSpace(*value) == "" {
			var cleared *string
			input.SpecialConditions = &cleared
		} else {
			input.SpecialConditions = &value
		}
	}
	if req.DiscountType != nil {
		parsed, err := enums.ParseDiscountType(*req.DiscountType)
		if err != nil {
			return pricelists.UpdateItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid discount_type")
		}
		input.DiscountType = &parsed
	}

	return input, nil
}

// PriceListItemUpdate handles PATCH /api/v1/price-lists/{priceListId}/items/{itemId}.
func PriceListItemUpdate(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		priceListID, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := parsePathID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateItem(r.Context(), priceListID, itemID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// PriceListItemRemove handles DELETE /api/v1/price-lists/{priceListId}/items/{itemId}.
func PriceListItemRemove(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		priceListID, err := parsePathID(r, "priceListId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := parsePathID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.RemoveItem(r.Context(), priceListID, itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// PriceListForCustomer handles GET /api/v1/price-lists/for-customer/{customerId}.
// A customer without a resolvable price list gets a null data payload, not
// an error.
func PriceListForCustomer(svc pricelists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := parsePathID(r, "customerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCustomerID(ctx, customerID.String())
		}

		dto, err := svc.ResolveForCustomer(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if dto == nil {
			responses.WriteSuccess(w, nil)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
