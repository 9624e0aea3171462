package shared

// Asynq task types and queue names shared between the API (producers)
// and the worker (consumers).
const (
	TypeSendVerificationEmail = "email:verification"
	TypeExpirePromotions      = "promotion:expire"
)

const (
	QueueDefault = "default"
	QueueEmail   = "default"
	QueueSweeper = "low"
)
