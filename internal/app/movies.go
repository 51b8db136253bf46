package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-catalog-api/api"
	"github.com/metinatakli/movie-catalog-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := toPagination(params)

	moviePage, err := app.movieService.ListPage(r.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, ErrMoviesNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.MovieListResponse{
		Movies:     toMovieDetails(moviePage.Movies),
		PrevPage:   moviePage.PrevPage,
		NextPage:   moviePage.NextPage,
		TotalPages: moviePage.TotalPages,
		TotalItems: moviePage.TotalItems,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := app.movieService.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, ErrMovieNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieDetail(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPagination(params api.GetMoviesParams) domain.Pagination {
	pagination := domain.NewPagination(DefaultPage, DefaultPerPage)

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PerPage != nil {
		pagination.PageSize = *params.PerPage
	}

	return pagination
}

func toMovieDetails(movies []*domain.Movie) []api.MovieDetail {
	details := make([]api.MovieDetail, len(movies))

	for i, movie := range movies {
		details[i] = toMovieDetail(movie)
	}

	return details
}

func toMovieDetail(movie *domain.Movie) api.MovieDetail {
	if movie == nil {
		return api.MovieDetail{}
	}

	return api.MovieDetail{
		Id:        movie.ID,
		Name:      movie.Name,
		Date:      types.Date{Time: movie.ReleaseDate},
		Score:     movie.Score,
		Genre:     movie.Genre,
		Overview:  movie.Overview,
		Crew:      movie.Crew,
		OrigTitle: movie.OriginalTitle,
		Status:    movie.Status,
		OrigLang:  movie.OriginalLanguage,
		Budget:    movie.Budget.InexactFloat64(),
		Revenue:   movie.Revenue,
		Country:   movie.Country,
	}
}
