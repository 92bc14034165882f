package main

import (
	"hokhau/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.HouseholdModel{},
		model.CitizenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
