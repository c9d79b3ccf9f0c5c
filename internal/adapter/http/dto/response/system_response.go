package response

type GreetingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Service string `json:"service"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Env     string `json:"env"`
	Service string `json:"service"`
}

type NotFoundResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Path  string `json:"path"`
}
