package shared

import (
	"hotel/shared/dto"
	"math"
	"reflect"
)

// TransformFields converts the non-zero, db-tagged fields of a struct into a
// column map for Repository.Update. Pointer fields are dereferenced so a
// pointer to a zero value is still written.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := 0; index < val.NumField(); index++ {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByFields ANDs equality filters on table, in the order given.
func FilterByFields(table string, fields ...dto.Filter) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	for _, field := range fields {
		field.Operator = dto.FilterOperatorEq
		field.Table = table
		group.Filters = append(group.Filters, field)
	}

	return group
}

// Distance is the plain Euclidean distance between two coordinate pairs.
func Distance(lat1, long1, lat2, long2 float64) float64 {
	return math.Sqrt((lat1-lat2)*(lat1-lat2) + (long1-long2)*(long1-long2))
}

// Truncate returns at most limit leading elements of items.
func Truncate[T any](items []T, limit int) []T {
	if limit < 0 || len(items) <= limit {
		return items
	}

	return items[:limit]
}
