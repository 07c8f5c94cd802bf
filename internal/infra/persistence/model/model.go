// Package model holds the GORM table mappings of the persistence layer.
package model

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&StoreModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&DailyPlanModel{},
		&PlanVisitModel{},
		&AuditLogModel{},
	}
}
