package order

type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCanceled   Status = "canceled"
	StatusRefunded   Status = "refunded"
)

// Statuses lists every order state in lifecycle order.
var Statuses = []Status{
	StatusPending, StatusPaid, StatusProcessing, StatusShipped,
	StatusDelivered, StatusCanceled, StatusRefunded,
}
