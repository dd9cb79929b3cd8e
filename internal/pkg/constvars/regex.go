package constvars

const (
	RegexOutageGroup = `^\d+\.\d+$`
)
