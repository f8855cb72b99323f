package queries

import (
	"context"
	"time"

	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnallocatedOrdersQueryHandler retrieves waiting orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUnallocatedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnallocatedOrdersQueryHandler creates a handler for unallocated order queries.
// Requires a GORM database connection for query execution.
func NewGetUnallocatedOrdersQueryHandler(db *gorm.DB) GetUnallocatedOrdersQueryHandler {
	return GetUnallocatedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the date's orders still in Pending
// status. Results are sorted by order ID for consistent output.
func (h GetUnallocatedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnallocatedOrdersQuery,
) ([]GetUnallocatedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnallocatedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.delivery_date,
			COUNT(l.id) AS lines_count
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.status = ? AND o.delivery_date = ?
		GROUP BY o.id, o.customer_id, o.delivery_date
		ORDER BY o.id
	`, order.Pending, query.Date()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnallocatedOrdersQueryResponse
		var id, customerID uuid.UUID
		var deliveryDate time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&deliveryDate,
			&orderResp.LinesCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = ownerID

		orderResp.DeliveryDate = kernel.DateOnly(deliveryDate)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
