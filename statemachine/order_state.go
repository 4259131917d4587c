package statemachine

import (
	"errors"

	"khanabook-pos/models"
)

// orderTransitions is the authoritative order state machine definition:
// each state maps to the set of states it may move to. COMPLETED and
// CANCELLED are terminal. SERVED orders can no longer be cancelled.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:      {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:    {models.StatusInKitchen, models.StatusCancelled},
	models.StatusInKitchen:    {models.StatusReadyToServe, models.StatusCancelled},
	models.StatusReadyToServe: {models.StatusServed, models.StatusCancelled},
	models.StatusServed:       {models.StatusCompleted},
	models.StatusCompleted:    {},
	models.StatusCancelled:    {},
}

// OrderTransitionsFrom returns all valid next states from a given state
func OrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return orderTransitions[status]
}

// OrderCanTransition checks whether an order may move from one state to another
func OrderCanTransition(from, to models.OrderStatus) error {
	for _, next := range orderTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describe(orderStatusNames(orderTransitions[from])),
	)
}

func orderStatusNames(statuses []models.OrderStatus) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

func describe(names []string) string {
	if len(names) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, n := range names {
		if i > 0 {
			result += ", "
		}
		result += n
	}
	return result
}
