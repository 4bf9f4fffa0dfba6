package gateway

type RendererResponse struct {
	Udn  string `json:"udn"`
	Name string `json:"name"`
}

type CommandResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
