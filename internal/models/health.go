package models

// HealthStatus is the health-check payload. It always rides an HTTP 200;
// backend trouble is reported through the DB field only.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
	DB        string `json:"db"`
}
