package entity

const StatusHealthy = "healthy"

type Health struct {
	Status         string `json:"status"`
	EngineCompiled bool   `json:"engine_compiled"`
	Cache          string `json:"cache"`
}
