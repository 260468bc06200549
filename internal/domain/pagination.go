package domain

type PaginationParams struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

func DefaultPagination() PaginationParams {
	return PaginationParams{
		Limit:  10,
		Offset: 0,
	}
}

func (p *PaginationParams) Validate() {
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
