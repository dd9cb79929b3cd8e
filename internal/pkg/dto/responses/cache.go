package responses

// RegenerationResult aggregates one bulk regeneration pass. Failures are data,
// not errors: a batch always completes and reports what happened.
type RegenerationResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

type CacheStatus struct {
	LastUpdate   string `json:"lastUpdate"`
	CacheEnabled bool   `json:"cacheEnabled"`
	CronSchedule string `json:"cronSchedule"`
}
