package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// 请求上下文键
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"
	ContextKeyLocale    = "locale"
)

// 默认管理员
const (
	DefaultAdminEmail     = "admin@admin.com"
	DefaultAdminPassword  = "admin"
	DefaultAdminFirstName = "Администратор"
	DefaultAdminLastName  = "Системы"
)
