package enums

import "fmt"

// ProductOrder selects the sort applied to product listings.
type ProductOrder string

const (
	// ProductOrderNew sorts newest listings first.
	ProductOrderNew ProductOrder = "NEW"
	// ProductOrderDeadline sorts listings by the soonest deadline.
	ProductOrderDeadline ProductOrder = "DEADLINE"
)

var validProductOrders = []ProductOrder{
	ProductOrderNew,
	ProductOrderDeadline,
}

// String implements fmt.Stringer.
func (o ProductOrder) String() string {
	return string(o)
}

// IsValid reports whether the value is a known ProductOrder.
func (o ProductOrder) IsValid() bool {
	for _, candidate := range validProductOrders {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseProductOrder converts raw input into a ProductOrder.
func ParseProductOrder(value string) (ProductOrder, error) {
	for _, candidate := range validProductOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product order %q", value)
}
