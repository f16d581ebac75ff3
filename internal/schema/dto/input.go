package dto

import "github.com/altoshop/catalog-service/internal/model"

type CreateSchemaInput struct {
	Name   string           `json:"name" binding:"required"`
	Schema model.JSONObject `json:"schema" binding:"required"`
}

type UpdateSchemaInput struct {
	ID     string           `json:"-"`
	Name   string           `json:"name" binding:"required"`
	Schema model.JSONObject `json:"schema" binding:"required"`
}
