package integration_test

const (
	MoviesURL        = "/api/v1/theater/movies/"
	SeededMovieCount = 25

	TestMovieId       = 1
	TestMovieName     = "Movie 1"
	TestMovieDate     = "2020-01-01"
	TestMovieScore    = 51.0
	TestMovieGenre    = "Drama"
	TestMovieOverview = "Overview 1"
	TestMovieCrew     = "Director 1"
	TestMovieOrigName = "Original 1"
	TestMovieStatus   = "Released"
	TestMovieLang     = "English"
	TestMovieBudget   = 1000000.5
	TestMovieRevenue  = 5000000
	TestMovieCountry  = "US"
)
