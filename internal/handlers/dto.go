package handlers

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GenreLikesRequest struct {
	Genres []GenreLikeRequest `json:"genres"`
}

type GenreLikeRequest struct {
	GenreID int    `json:"genre_id"`
	Name    string `json:"name"`
}

type GenreUnlikeRequest struct {
	GenreID int `json:"genre_id"`
}

type ReviewRequest struct {
	Content    string `json:"content"`
	PosterPath string `json:"poster_path"`
}

type PlaylistRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverURL    string  `json:"cover_url"`
	Movies      []int64 `json:"movies"`
}

// PlaylistUpdateRequest uses pointers so absent fields are left untouched.
type PlaylistUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

type PlaylistMoviesRequest struct {
	Movies []int64 `json:"movies"`
}
