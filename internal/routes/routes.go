package routes

import (
	"movie-catalog/internal/auth"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Catalog  *handlers.CatalogHandler
	Like     *handlers.LikeHandler
	Review   *handlers.ReviewHandler
	Playlist *handlers.PlaylistHandler
	Upload   *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers, tokens *auth.TokenManager, users repository.UserRepository) {
	requireAuth := auth.RequireAuth(tokens, users)
	optionalAuth := auth.OptionalAuth(tokens, users)

	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Auth routes - registration and login
	authGroup := v1.Group("/auth")
	{
		authGroup.Post("/register", h.Auth.Register)
		authGroup.Post("/login", h.Auth.Login)
		authGroup.Get("/me", requireAuth, h.Auth.Me)
	}

	// Catalog routes - provider-backed browse and detail
	movies := v1.Group("/movies")
	{
		movies.Get("/top-rated", h.Catalog.GetTopRated)
		movies.Get("/popular", h.Catalog.GetPopular)
		movies.Get("/now-playing", h.Catalog.GetNowPlaying)
		movies.Get("/genres", optionalAuth, h.Catalog.GetGenreDiscovery)
		movies.Get("/:movieId", requireAuth, h.Catalog.GetMovieDetail)

		// Review routes - scoped to one movie
		movies.Get("/:movieId/reviews", h.Review.ListReviews)
		movies.Post("/:movieId/reviews", requireAuth, h.Review.CreateReview)
		movies.Put("/:movieId/reviews/:reviewId", requireAuth, h.Review.UpdateReview)
		movies.Delete("/:movieId/reviews/:reviewId", requireAuth, h.Review.DeleteReview)
		movies.Post("/:movieId/reviews/:reviewId/like", requireAuth, h.Review.LikeReview)
	}

	actors := v1.Group("/actors")
	{
		actors.Get("/:actorId", h.Catalog.GetActorDetail)
	}

	directors := v1.Group("/directors")
	{
		directors.Get("/:directorId", h.Catalog.GetDirectorDetail)
	}

	// Like routes - per-entity toggles
	likes := v1.Group("/likes", requireAuth)
	{
		likes.Post("/movies", h.Like.LikeMovie)
		likes.Delete("/movies", h.Like.UnlikeMovie)
		likes.Post("/actors", h.Like.LikeActor)
		likes.Delete("/actors", h.Like.UnlikeActor)
		likes.Post("/directors", h.Like.LikeDirector)
		likes.Delete("/directors", h.Like.UnlikeDirector)
		likes.Post("/genres", h.Like.LikeGenres)
		likes.Delete("/genres", h.Like.UnlikeGenre)
	}

	// Personal feeds built from the caller's likes
	me := v1.Group("/users/me", requireAuth)
	{
		me.Get("/movies", h.Like.GetLikedMovies)
		me.Get("/actors", h.Like.GetLikedActorSuggestions)
		me.Get("/directors", h.Like.GetLikedDirectorSuggestions)
		me.Get("/genres", h.Like.GetLikedGenreSuggestions)
	}

	// Playlist routes - owner scoped CRUD
	playlists := v1.Group("/playlists", requireAuth)
	{
		playlists.Get("/", h.Playlist.ListPlaylists)
		playlists.Post("/", h.Playlist.CreatePlaylist)
		playlists.Put("/:playlistId", h.Playlist.UpdatePlaylist)
		playlists.Delete("/:playlistId", h.Playlist.DeletePlaylist)
		playlists.Get("/:playlistId/movies", h.Playlist.GetPlaylistMovies)
		playlists.Post("/:playlistId/movies", h.Playlist.AddPlaylistMovies)
		playlists.Delete("/:playlistId/movies", h.Playlist.RemovePlaylistMovies)
	}

	upload := v1.Group("/upload", requireAuth)
	{
		upload.Get("/presign", h.Upload.GetPresignedURL)
	}
}
