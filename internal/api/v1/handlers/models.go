package handlers

// LocationRequest is what the page posts after asking the browser for its
// position. Exactly one of the coordinates, Error or Unsupported is set.
type LocationRequest struct {
	Latitude    *float64              `json:"latitude,omitempty"`
	Longitude   *float64              `json:"longitude,omitempty"`
	Error       *PositionErrorRequest `json:"error,omitempty"`
	Unsupported bool                  `json:"unsupported,omitempty"`
}

type PositionErrorRequest struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
