package domain

type MoviePage struct {
	Movies     []*Movie
	PrevPage   *string
	NextPage   *string
	TotalPages int
	TotalItems int
}
