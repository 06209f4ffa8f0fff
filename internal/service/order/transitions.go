package order

import "storefront/internal/entities"

// statusSequence — линейный жизненный цикл заказа. Cancelled в
// последовательность не входит: это боковой выход из любого
// нетерминального статуса.
var statusSequence = []entities.OrderStatusType{
	entities.OrderPlaced,
	entities.OrderProcessing,
	entities.OrderShipped,
	entities.OrderDelivered,
}

func sequenceIndex(status entities.OrderStatusType) int {
	for i, s := range statusSequence {
		if s == status {
			return i
		}
	}
	return -1
}

// IsTerminal сообщает, допускает ли статус дальнейшие переходы.
func IsTerminal(status entities.OrderStatusType) bool {
	return status == entities.OrderDelivered || status == entities.OrderCancelled
}

// CanTransition решает, разрешен ли переход current -> target.
// Разрешены только шаг на следующий статус последовательности и отмена
// из нетерминального статуса. Назад, через шаг и сам в себя — нельзя.
func CanTransition(current, target entities.OrderStatusType) bool {
	if IsTerminal(current) {
		return false
	}

	if target == entities.OrderCancelled {
		return true
	}

	currentIdx := sequenceIndex(current)
	targetIdx := sequenceIndex(target)
	if currentIdx < 0 || targetIdx < 0 {
		return false
	}

	return targetIdx == currentIdx+1
}

// NextStatuses возвращает все статусы, доступные из current.
func NextStatuses(current entities.OrderStatusType) []entities.OrderStatusType {
	if IsTerminal(current) {
		return nil
	}

	next := make([]entities.OrderStatusType, 0, 2)
	if idx := sequenceIndex(current); idx >= 0 && idx+1 < len(statusSequence) {
		next = append(next, statusSequence[idx+1])
	}
	next = append(next, entities.OrderCancelled)
	return next
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPlaced,
		entities.OrderProcessing,
		entities.OrderShipped,
		entities.OrderDelivered,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}
