package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinehub/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetRestaurantOrders(ctx context.Context, restaurantID string) ([]model.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetCustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, id, status string) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdatePaymentStatus(ctx context.Context, id, paymentStatus, paymentID string) (*model.Order, error) {
	args := m.Called(ctx, id, paymentStatus, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateDeliveryStatus(ctx context.Context, id, deliveryStatus, driverID string) (*model.Order, error) {
	args := m.Called(ctx, id, deliveryStatus, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockOrderService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid order",
			body: `{"customerId":"cust-1","restaurantId":"rest-1","items":[{"menuItemId":"item-1","price":"10.00","quantity":2}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
					Return(&model.Order{
						ID:         primitive.NewObjectID(),
						CustomerID: "cust-1",
						Total:      decimal.RequireFromString("26.60"),
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `{"customerId":`,
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeInvalidJSON,
		},
		{
			name: "empty order",
			body: `{"customerId":"cust-1","items":[]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
					Return(nil, model.ErrEmptyOrder)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeEmptyOrder,
		},
		{
			name: "order limit reached",
			body: `{"customerId":"cust-1","items":[{"menuItemId":"item-1","price":"10.00","quantity":1}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
					Return(nil, model.ErrOrderLimitReached)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeOrderLimitReached,
		},
		{
			name: "menu item not found",
			body: `{"customerId":"cust-1","items":[{"menuItemId":"missing","quantity":1}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
					Return(nil, model.ErrMenuItemNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeMenuItemNotFound,
		},
		{
			name: "internal error",
			body: `{"customerId":"cust-1","items":[{"menuItemId":"item-1","quantity":1}]}`,
			setupMock: func(m *MockOrderService) {
				m.On("CreateOrder", mock.Anything, mock.AnythingOfType("*model.Order")).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	orderID := primitive.NewObjectID()

	tests := []struct {
		name           string
		orderID        string
		setupMock      func(m *MockOrderService)
		expectedStatus int
	}{
		{
			name:    "found",
			orderID: orderID.Hex(),
			setupMock: func(m *MockOrderService) {
				m.On("GetOrder", mock.Anything, orderID.Hex()).
					Return(&model.Order{ID: orderID, CustomerID: "cust-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "not found",
			orderID: "unknown",
			setupMock: func(m *MockOrderService) {
				m.On("GetOrder", mock.Anything, "unknown").
					Return(nil, model.ErrOrderNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "store failure",
			orderID: orderID.Hex(),
			setupMock: func(m *MockOrderService) {
				m.On("GetOrder", mock.Anything, orderID.Hex()).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+tt.orderID, nil)
			req.SetPathValue("orderId", tt.orderID)
			rec := httptest.NewRecorder()

			h.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_GetByID_ResponseBody(t *testing.T) {
	logger := zerolog.Nop()
	orderID := primitive.NewObjectID()

	mockService := new(MockOrderService)
	mockService.On("GetOrder", mock.Anything, orderID.Hex()).
		Return(&model.Order{
			ID:         orderID,
			CustomerID: "cust-1",
			Total:      decimal.RequireFromString("32.54"),
		}, nil)

	h := NewOrderHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID.Hex(), nil)
	req.SetPathValue("orderId", orderID.Hex())
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, orderID.Hex(), body["id"])
	assert.Equal(t, "cust-1", body["customerId"])
	assert.Equal(t, "32.54", body["total"])
}

func TestOrderHandler_ListByRestaurant(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	mockService.On("GetRestaurantOrders", mock.Anything, "rest-1").
		Return([]model.Order{{RestaurantID: "rest-1"}, {RestaurantID: "rest-1"}}, nil)

	h := NewOrderHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/restaurant/rest-1", nil)
	req.SetPathValue("restaurantId", "rest-1")
	rec := httptest.NewRecorder()

	h.ListByRestaurant(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestOrderHandler_ListByCustomer_EmptyIsArray(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	mockService.On("GetCustomerOrders", mock.Anything, "cust-1").
		Return(nil, nil)

	h := NewOrderHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/customer/cust-1", nil)
	req.SetPathValue("customerId", "cust-1")
	rec := httptest.NewRecorder()

	h.ListByCustomer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	logger := zerolog.Nop()
	orderID := primitive.NewObjectID()

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *MockOrderService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:  "valid update",
			query: "?status=PREPARING",
			setupMock: func(m *MockOrderService) {
				m.On("UpdateOrderStatus", mock.Anything, orderID.Hex(), "PREPARING").
					Return(&model.Order{ID: orderID, Status: "PREPARING"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing status",
			query:          "",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeMissingParam,
		},
		{
			name:  "not found",
			query: "?status=PREPARING",
			setupMock: func(m *MockOrderService) {
				m.On("UpdateOrderStatus", mock.Anything, orderID.Hex(), "PREPARING").
					Return(nil, model.ErrOrderNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+orderID.Hex()+"/status"+tt.query, nil)
			req.SetPathValue("orderId", orderID.Hex())
			rec := httptest.NewRecorder()

			h.UpdateStatus(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_UpdatePayment(t *testing.T) {
	logger := zerolog.Nop()
	orderID := primitive.NewObjectID()

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *MockOrderService)
		expectedStatus int
	}{
		{
			name:  "valid update",
			query: "?paymentStatus=PAID&paymentId=pay-9",
			setupMock: func(m *MockOrderService) {
				m.On("UpdatePaymentStatus", mock.Anything, orderID.Hex(), "PAID", "pay-9").
					Return(&model.Order{ID: orderID, PaymentStatus: "PAID", PaymentID: "pay-9"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing paymentId",
			query:          "?paymentStatus=PAID",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing paymentStatus",
			query:          "?paymentId=pay-9",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+orderID.Hex()+"/payment"+tt.query, nil)
			req.SetPathValue("orderId", orderID.Hex())
			rec := httptest.NewRecorder()

			h.UpdatePayment(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_UpdateDelivery(t *testing.T) {
	logger := zerolog.Nop()
	orderID := primitive.NewObjectID()

	tests := []struct {
		name           string
		query          string
		setupMock      func(m *MockOrderService)
		expectedStatus int
	}{
		{
			name:  "valid update",
			query: "?deliveryStatus=EN_ROUTE&deliveryDriverId=drv-4",
			setupMock: func(m *MockOrderService) {
				m.On("UpdateDeliveryStatus", mock.Anything, orderID.Hex(), "EN_ROUTE", "drv-4").
					Return(&model.Order{ID: orderID, DeliveryStatus: "EN_ROUTE", DeliveryDriverID: "drv-4"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing deliveryDriverId",
			query:          "?deliveryStatus=EN_ROUTE",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/"+orderID.Hex()+"/delivery"+tt.query, nil)
			req.SetPathValue("orderId", orderID.Hex())
			rec := httptest.NewRecorder()

			h.UpdateDelivery(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}
