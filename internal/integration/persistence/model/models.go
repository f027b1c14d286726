package model

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CategoryModel{},
		&MovementModel{},
		&BudgetModel{},
		&EmailQueueModel{},
	}
}
