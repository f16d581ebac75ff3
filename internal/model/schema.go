package model

type AttributesSchema struct {
	BaseModel
	Name   string     `db:"name" json:"name"`
	Schema JSONObject `db:"schema" json:"schema"`
}
