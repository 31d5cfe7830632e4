package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeMissingParam        = "MISSING_PARAM"
	ErrCodeEmptyOrder          = "EMPTY_ORDER"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeMaxItemsExceeded    = "MAX_ITEMS_EXCEEDED"
	ErrCodeOrderLimitReached   = "ORDER_LIMIT_REACHED"
	ErrCodeTooManyActiveOrders = "TOO_MANY_ACTIVE_ORDERS"
	ErrCodeMenuItemNotFound    = "MENU_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule rejection or lookup failure raised by the
// service layer and mapped to an HTTP status at the transport boundary.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyOrder          = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Item quantity must be greater than zero")
	ErrMaxItemsExceeded    = NewDomainError(ErrCodeMaxItemsExceeded, "Order exceeds maximum items limit")
	ErrOrderLimitReached   = NewDomainError(ErrCodeOrderLimitReached, "Customer has reached maximum order limit")
	ErrTooManyActiveOrders = NewDomainError(ErrCodeTooManyActiveOrders, "Customer has too many active orders")
	ErrMenuItemNotFound    = NewDomainError(ErrCodeMenuItemNotFound, "One or more menu items not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}
