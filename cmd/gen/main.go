// Command gen regenerates the type-safe query builders under
// internal/infra/persistence/postgres/query from the persistence models.
package main

import (
	"taskman/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.TaskModel{},
		model.CommentModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(models...)

	g.Execute()
}
