package root

// greeting served at the API root
const Greeting = "Hello from AWIBI MEDTECH API"

// Response represents the root greeting
type Response struct {
	Message string `json:"message"`
}
