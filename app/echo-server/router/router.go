package router

import (
	"mediaMatcher/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")

	reco.POST("/movies", handler.RecommendMovie)
	reco.POST("/tv", handler.RecommendTV)
	reco.POST("/books", handler.RecommendBook)
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler) {
	search := api.Group("/search")
	search.GET("/movies", handler.SearchMovies)
	search.GET("/tv", handler.SearchTV)
	search.GET("/books", handler.SearchBooks)

	suggest := api.Group("/suggestions")
	suggest.GET("/movies", handler.SuggestMovies)
	suggest.GET("/tv", handler.SuggestTV)
	suggest.GET("/books", handler.SuggestBooks)
}

func SetupWatchlistRoutes(api *echo.Group, handler *rest.WatchlistHandler) {
	wl := api.Group("/watchlist")

	wl.GET("", handler.List)
	wl.POST("", handler.Add)
	wl.POST("/remove", handler.Remove)
	wl.GET("/export", handler.ExportCSV)
}
