package model

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&FarmModel{},
		&FieldModel{},
		&InvitationModel{},
		&NotificationModel{},
		&PlantingModel{},
		&HarvestingModel{},
		&SoilModel{},
		&WeatherModel{},
		&FertilizerModel{},
		&IrrigationModel{},
		&RevenueModel{},
		&ExpenseModel{},
		&HealthModel{},
		&BreedingModel{},
		&TaskModel{},
	}
}
