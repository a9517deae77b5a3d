package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `validate:"omitempty,gte=0"`
	Limit   int    `validate:"omitempty,gte=0"`
	SortBy  string `validate:"omitempty"`
	SortDir string `validate:"omitempty,oneof=ASC DESC"`
}

// Latest returns params selecting the newest limit rows ordered by column.
func Latest(column string, limit int) QueryParams {
	return QueryParams{
		Limit:   limit,
		SortBy:  column,
		SortDir: SortDirDesc,
	}
}
