package health

// reported by the health check while the process is serving
const StatusOK = "OK"

// Response represents the health check response
type Response struct {
	Status string `json:"status"`
}
