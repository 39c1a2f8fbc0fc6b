package types

const (
	DefaultPage    int = 1
	DefaultPerPage int = 15
	MaxPerPage     int = 100
)

type PageQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}
