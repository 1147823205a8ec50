package service

import (
	"strings"

	"github.com/sneaker-store/internal/constants"
)

var orderStatusRank = map[string]int{
	constants.OrderStatusPending:   0,
	constants.OrderStatusConfirmed: 1,
	constants.OrderStatusShipped:   2,
	constants.OrderStatusDelivered: 3,
}

// NormalizeOrderStatus 统一订单状态大小写，未知状态返回空串
func NormalizeOrderStatus(status string) string {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if _, ok := orderStatusRank[normalized]; !ok {
		return ""
	}
	return normalized
}

// CanTransitionOrderStatus 订单状态只能前进，不能回退或原地跳转
func CanTransitionOrderStatus(from, to string) bool {
	fromStatus := NormalizeOrderStatus(from)
	toStatus := NormalizeOrderStatus(to)
	if fromStatus == "" || toStatus == "" {
		return false
	}
	return orderStatusRank[toStatus] > orderStatusRank[fromStatus]
}
