package model

// MigrateAble is array of model instance, use for creating missing tables
var MigrateAble []interface{}

func init() {
	MigrateAble = append(
		MigrateAble,
		&JobApplication{},
	)
}
