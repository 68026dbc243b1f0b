package controllers

import (
	"net/http"

	"github.com/ilmsadmin/zbase-pricing/api/responses"
	"github.com/ilmsadmin/zbase-pricing/api/validators"
	"github.com/ilmsadmin/zbase-pricing/internal/customers"
	"github.com/ilmsadmin/zbase-pricing/pkg/logger"
	"github.com/ilmsadmin/zbase-pricing/pkg/pagination"
)

// CustomerGroupList handles GET /api/v1/customer-groups.
func CustomerGroupList(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePagination(r, pagination.DefaultLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListGroups(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// CustomerGroupGet handles GET /api/v1/customer-groups/{groupId}.
func CustomerGroupGet(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathID(r, "groupId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.GetGroup(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
