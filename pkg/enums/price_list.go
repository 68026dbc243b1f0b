package enums

import "fmt"

// PriceListStatus represents the lifecycle state of a price list.
type PriceListStatus string

const (
	PriceListStatusActive   PriceListStatus = "active"
	PriceListStatusInactive PriceListStatus = "inactive"
)

var validPriceListStatuses = []PriceListStatus{
	PriceListStatusActive,
	PriceListStatusInactive,
}

// String implements fmt.Stringer.
func (s PriceListStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PriceListStatus.
func (s PriceListStatus) IsValid() bool {
	for _, candidate := range validPriceListStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePriceListStatus converts raw input into a PriceListStatus.
func ParsePriceListStatus(value string) (PriceListStatus, error) {
	for _, candidate := range validPriceListStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price list status %q", value)
}

// DiscountType distinguishes percentage discounts from fixed amounts.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

var validDiscountTypes = []DiscountType{
	DiscountTypePercentage,
	DiscountTypeFixed,
}

// String implements fmt.Stringer.
func (d DiscountType) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DiscountType.
func (d DiscountType) IsValid() bool {
	for _, candidate := range validDiscountTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDiscountType converts raw input into a DiscountType.
func ParseDiscountType(value string) (DiscountType, error) {
	for _, candidate := range validDiscountTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid discount type %q", value)
}

// ApplicableOn scopes which sales channels a price list covers.
type ApplicableOn string

const (
	ApplicableOnAll       ApplicableOn = "all"
	ApplicableOnSales     ApplicableOn = "sales"
	ApplicableOnPurchases ApplicableOn = "purchases"
)

var validApplicableOn = []ApplicableOn{
	ApplicableOnAll,
	ApplicableOnSales,
	ApplicableOnPurchases,
}

// String implements fmt.Stringer.
func (a ApplicableOn) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ApplicableOn.
func (a ApplicableOn) IsValid() bool {
	for _, candidate := range validApplicableOn {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseApplicableOn converts raw input into an ApplicableOn.
func ParseApplicableOn(value string) (ApplicableOn, error) {
	for _, candidate := range validApplicableOn {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid applicable_on value %q", value)
}
